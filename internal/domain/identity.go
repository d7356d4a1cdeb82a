package domain

import (
	"context"
	"time"
)

// Tier is the capability level attached to an identity.
type Tier string

const (
	TierRead      Tier = "read"
	TierReadWrite Tier = "readwrite"
	TierAdmin     Tier = "admin"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierRead, TierReadWrite, TierAdmin:
		return true
	}
	return false
}

// Registration defaults. New identities are always issued at readwrite.
const (
	DefaultTier      = TierReadWrite
	DefaultRateLimit = 50
)

// Identity is a registered agent and its API key metadata.
// The plaintext key is never part of this record.
// swagger:model Identity
type Identity struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	AgentName  string     `json:"agent_name"`
	KeyHash    string     `json:"-"`
	KeyPrefix  string     `json:"key_prefix"`
	Tier       Tier       `json:"tier"`
	RateLimit  int        `json:"rate_limit"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// NewIdentity returns an active Identity with the registration defaults applied.
// ID is typically set by the repository on create.
func NewIdentity(email, agentName, keyHash, keyPrefix string, createdAt time.Time) *Identity {
	return &Identity{
		Email:     email,
		AgentName: agentName,
		KeyHash:   keyHash,
		KeyPrefix: keyPrefix,
		Tier:      DefaultTier,
		RateLimit: DefaultRateLimit,
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

// IssuedKey is the result of a registration. Key is the only copy of the
// plaintext secret and must be handed to the caller exactly once.
type IssuedKey struct {
	Key      string
	Identity *Identity
}

// CredentialHasher derives and checks one-way hashes of API keys.
// Implementations may use argon2, bcrypt, etc.
type CredentialHasher interface {
	Hash(secret string) (string, error)
	// Compare returns nil when secret matches hash, ErrHashMismatch when it
	// does not, and any other error when hash cannot be parsed.
	Compare(hash, secret string) error
}

// KeyGenerator produces new API keys and derives their lookup prefix.
type KeyGenerator interface {
	Generate() (key, prefix string, err error)
	// Prefix returns the lookup prefix of key, or false if key is too short
	// to carry one.
	Prefix(key string) (string, bool)
}

// IdentityRepository defines the interface for identity storage.
type IdentityRepository interface {
	Create(ctx context.Context, identity *Identity) error
	// ListActiveByPrefix returns every active identity whose key_prefix equals prefix.
	ListActiveByPrefix(ctx context.Context, prefix string) ([]*Identity, error)
	TouchLastUsed(ctx context.Context, id string, at time.Time) error
}

// CredentialService defines credential issuance and verification.
type CredentialService interface {
	Register(ctx context.Context, email, agentName string) (*IssuedKey, error)
	// Verify returns the identity owning key, or (nil, nil) when no active
	// identity matches.
	Verify(ctx context.Context, key string) (*Identity, error)
	Touch(ctx context.Context, identity *Identity) error
	// Authenticate verifies key and records the usage. It returns
	// ErrUnauthenticated when key does not match an active identity.
	Authenticate(ctx context.Context, key string) (*Identity, error)
}
