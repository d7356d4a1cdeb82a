package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"meetspace/internal/clock"
	"meetspace/internal/domain"
)

// MaxAgentNameLen bounds the agent_name supplied at registration.
const MaxAgentNameLen = 200

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type credentialService struct {
	repo   domain.IdentityRepository
	hasher domain.CredentialHasher
	keys   domain.KeyGenerator
	emails domain.EmailService
	clock  clock.Clock
	logger *slog.Logger
}

// NewCredentialService creates a CredentialService. emails may be nil, in which
// case no registration notice is sent.
func NewCredentialService(
	repo domain.IdentityRepository,
	hasher domain.CredentialHasher,
	keys domain.KeyGenerator,
	emails domain.EmailService,
	clk clock.Clock,
	logger *slog.Logger,
) domain.CredentialService {
	return &credentialService{
		repo:   repo,
		hasher: hasher,
		keys:   keys,
		emails: emails,
		clock:  clk,
		logger: logger,
	}
}

func validateRegistration(email, agentName string) []string {
	var problems []string
	if email == "" {
		problems = append(problems, "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil || !emailRegexp.MatchString(email) {
		problems = append(problems, "email must be a valid email address")
	}
	if n := len([]rune(agentName)); n == 0 {
		problems = append(problems, "agent_name is required")
	} else if n > MaxAgentNameLen {
		problems = append(problems, fmt.Sprintf("agent_name must be at most %d characters", MaxAgentNameLen))
	}
	return problems
}

func (s *credentialService) Register(ctx context.Context, email, agentName string) (*domain.IssuedKey, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	agentName = strings.TrimSpace(agentName)
	if err := domain.NewValidationError(validateRegistration(email, agentName)); err != nil {
		return nil, err
	}

	key, prefix, err := s.keys.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}
	hash, err := s.hasher.Hash(key)
	if err != nil {
		return nil, fmt.Errorf("failed to hash api key: %w", err)
	}

	identity := domain.NewIdentity(email, agentName, hash, prefix, s.clock.Now())
	identity.ID = uuid.NewString()
	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	if s.emails != nil {
		notice := &domain.RegistrationEmailData{
			Email:     identity.Email,
			AgentName: identity.AgentName,
			KeyPrefix: identity.KeyPrefix,
			Tier:      identity.Tier,
			RateLimit: identity.RateLimit,
		}
		if err := s.emails.SendRegistrationNotice(ctx, notice); err != nil {
			s.logger.WarnContext(ctx, "registration notice not sent", "identity_id", identity.ID, "err", err)
		}
	}

	return &domain.IssuedKey{Key: key, Identity: identity}, nil
}

func (s *credentialService) Verify(ctx context.Context, key string) (*domain.Identity, error) {
	prefix, ok := s.keys.Prefix(key)
	if !ok {
		return nil, nil
	}
	candidates, err := s.repo.ListActiveByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities by prefix: %w", err)
	}
	// Prefixes may collide; the hash decides.
	for _, c := range candidates {
		err := s.hasher.Compare(c.KeyHash, key)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, domain.ErrHashMismatch) {
			s.logger.WarnContext(ctx, "unreadable key hash", "identity_id", c.ID, "err", err)
		}
	}
	return nil, nil
}

func (s *credentialService) Touch(ctx context.Context, identity *domain.Identity) error {
	now := s.clock.Now()
	if err := s.repo.TouchLastUsed(ctx, identity.ID, now); err != nil {
		return fmt.Errorf("failed to touch identity %s: %w", identity.ID, err)
	}
	identity.LastUsedAt = &now
	return nil
}

func (s *credentialService) Authenticate(ctx context.Context, key string) (*domain.Identity, error) {
	identity, err := s.Verify(ctx, key)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.Touch(ctx, identity); err != nil {
		s.logger.WarnContext(ctx, "last_used_at not updated", "identity_id", identity.ID, "err", err)
	}
	return identity, nil
}
