// Package common defines shared sentinel errors used across moodlog layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. A mutating call that returns one of these has
	// left the store untouched.
	ErrSleepOutOfRange     = errors.New("sleep must be between 0 and 24 hours")
	ErrNegativeWeight      = errors.New("weight cannot be negative")
	ErrEmptyMedicationName = errors.New("medication name cannot be empty")
	ErrInvalidReminderTime = errors.New("reminder time must be zero-padded HH:MM")
)
