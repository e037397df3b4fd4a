package service

import (
	"errors"
	"fmt"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusActive    = "active"
	SessionStatusPaused    = "paused"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

var ErrInvalidSessionTransition = errors.New("exam session: invalid status transition")

// sessionTransitions lists the allowed next states per state. Completed
// and cancelled are terminal.
var sessionTransitions = map[string][]string{
	SessionStatusScheduled: {SessionStatusActive, SessionStatusCancelled},
	SessionStatusActive:    {SessionStatusPaused, SessionStatusCompleted, SessionStatusCancelled},
	SessionStatusPaused:    {SessionStatusActive, SessionStatusCompleted, SessionStatusCancelled},
	SessionStatusCompleted: {},
	SessionStatusCancelled: {},
}

// ValidateSessionTransition returns ErrInvalidSessionTransition (wrapped
// with both states) when moving from `from` to `to` is not allowed.
func ValidateSessionTransition(from, to string) error {
	for _, next := range sessionTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s to %s", ErrInvalidSessionTransition, from, to)
}
