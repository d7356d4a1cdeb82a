// Package memory holds process-local implementations of the repositories.
// They satisfy the same contracts as the Postgres repositories and are used
// for STORAGE_BACKEND=memory and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"meetspace/internal/domain"
)

// IdentityStore is a thread-safe in-memory domain.IdentityRepository.
type IdentityStore struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Identity
	byPrefix map[string][]string
}

// NewIdentityStore returns an empty store.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		byID:     make(map[string]*domain.Identity),
		byPrefix: make(map[string][]string),
	}
}

func (s *IdentityStore) Create(_ context.Context, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity.ID == "" {
		identity.ID = uuid.NewString()
	}
	if _, exists := s.byID[identity.ID]; exists {
		return fmt.Errorf("identity %s already exists", identity.ID)
	}
	cp := *identity
	s.byID[cp.ID] = &cp
	s.byPrefix[cp.KeyPrefix] = append(s.byPrefix[cp.KeyPrefix], cp.ID)
	return nil
}

func (s *IdentityStore) ListActiveByPrefix(_ context.Context, prefix string) ([]*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Identity
	for _, id := range s.byPrefix[prefix] {
		stored := s.byID[id]
		if !stored.IsActive {
			continue
		}
		cp := *stored
		out = append(out, &cp)
	}
	return out, nil
}

func (s *IdentityStore) TouchLastUsed(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	stored.LastUsedAt = &at
	return nil
}

// SetActive flips the is_active flag of an identity.
func (s *IdentityStore) SetActive(id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	stored.IsActive = active
	return nil
}

// Get returns a copy of the identity with id.
func (s *IdentityStore) Get(id string) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}
