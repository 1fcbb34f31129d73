package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error classes. Concrete errors wrap exactly one of these so callers can
// branch with errors.Is on either the class or the concrete value.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

var (
	ErrPackageNotFound = fmt.Errorf("package %w", ErrNotFound)
	ErrLodgingNotFound = fmt.Errorf("lodging %w", ErrNotFound)
	ErrEventNotFound   = fmt.Errorf("event %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrAgentNotFound   = fmt.Errorf("agent %w", ErrNotFound)
)

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// lookupError turns a failed read into notFound when the row is absent.
func lookupError(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storageError(err)
}

// storageError classifies constraint failures reported by the database.
func storageError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %w", ErrIntegrityViolation, err)
	}
	return err
}
