package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	h "meetspace/internal/delivery/http/helpers"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the response body for GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

type HealthController struct {
	Logger *slog.Logger
	// Store is nil for the in-memory backend.
	Store Pinger
}

func NewHealthController(logger *slog.Logger, store Pinger) *HealthController {
	return &HealthController{Logger: logger, Store: store}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=HealthResponse}
// @Failure 503 {object} helpers.APIResponse "error.code: internal_error"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if c.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := c.Store.PingContext(ctx); err != nil {
			c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
			h.WriteJSONError(w, http.StatusServiceUnavailable, h.ErrCodeInternalError, "database unreachable")
			return
		}
	}
	h.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
