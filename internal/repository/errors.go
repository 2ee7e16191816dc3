package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a row lookup by id matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrConstraint wraps UNIQUE and CHECK violations.
	ErrConstraint = errors.New("constraint violation")

	// ErrForeignKeyViolation is returned when a row points at a missing parent.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "CHECK constraint failed")
}

// wrapWriteErr annotates a failed write, tagging constraint violations so
// callers can match them with errors.Is while keeping the driver message.
func wrapWriteErr(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrForeignKeyViolation, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConstraint, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
