package usecase

import (
	"errors"
	"fmt"

	"usuarios-api/internal/data/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrDuplicateValue  = errors.New("duplicate value")
	ErrUserDisabled    = errors.New("user is disabled")
	ErrRoleDisabled    = errors.New("role is disabled")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnknown         = errors.New("unknown error")

	// ErrRoleNotFound is an ErrNotFound raised for the referenced role rather than the target row.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)
)

// fromRepository maps repository errors onto the service taxonomy. Raw storage
// faults collapse into ErrUnknown.
func fromRepository(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %s", ErrDuplicateValue, what)
	case errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("%w: %s", ErrRoleNotFound, what)
	default:
		return fmt.Errorf("%w: %s", ErrUnknown, what)
	}
}
