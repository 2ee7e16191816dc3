package domain

import "errors"

var (
	// ErrInvalidInput is returned when a field fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStatus is returned for a status outside the entity's closed set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidTransition is returned when the transition table forbids a move.
	ErrInvalidTransition = errors.New("invalid status transition")
)
