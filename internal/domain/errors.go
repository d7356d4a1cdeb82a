package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services and delivery.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInsufficientTier = errors.New("insufficient tier")
	ErrHashMismatch     = errors.New("hash mismatch")
)

// ValidationError carries one message per failed input rule.
type ValidationError struct {
	Problems []string
}

// NewValidationError returns a ValidationError for problems, or nil if there are none.
func NewValidationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}
