package services

import (
	"slices"

	"meetspace/internal/domain"
)

// Authorize checks that identity holds one of the required tiers.
// A nil identity is unauthenticated, which is distinct from holding the wrong tier.
func Authorize(identity *domain.Identity, required ...domain.Tier) (*domain.Identity, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !slices.Contains(required, identity.Tier) {
		return nil, domain.ErrInsufficientTier
	}
	return identity, nil
}
