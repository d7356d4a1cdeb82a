package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "meetspace/internal/delivery/http/helpers"
	"meetspace/internal/domain"
	"meetspace/internal/services"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "X-API-Key"

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context carrying the authenticated identity. Used by auth middleware.
func SetIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated identity from the context, if present.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*domain.Identity)
	return id, ok && id != nil
}

// RequireAPIKey returns a wrapper that authenticates the X-API-Key header and sets the identity in the request context.
// If the key is missing or matches no active identity, it responds with 401 and does not call next.
func RequireAPIKey(creds domain.CredentialService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if key == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeMissingAPIKey, "missing "+APIKeyHeader+" header")
				return
			}
			identity, err := creds.Authenticate(r.Context(), key)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeInvalidAPIKey, "invalid api key")
					return
				}
				h.WriteServiceError(w, r, logger, err)
				return
			}
			next(w, r.WithContext(SetIdentity(r.Context(), identity)))
		}
	}
}

// RequireTier returns a wrapper that lets the request through only when the
// authenticated identity holds one of tiers. It must run after RequireAPIKey.
func RequireTier(logger *slog.Logger, tiers ...domain.Tier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, _ := IdentityFromContext(r.Context())
			if _, err := services.Authorize(identity, tiers...); err != nil {
				h.WriteServiceError(w, r, logger, err)
				return
			}
			next(w, r)
		}
	}
}
