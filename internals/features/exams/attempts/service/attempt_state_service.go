package service

import (
	"errors"
	"fmt"

	"academylms_backend/internals/features/exams/attempts/model"
)

var ErrInvalidAttemptTransition = errors.New("exam attempt: invalid status transition")

// attemptTransitions: in_progress is the only non-terminal state.
var attemptTransitions = map[string][]string{
	model.AttemptStatusInProgress: {
		model.AttemptStatusSubmitted,
		model.AttemptStatusAutoSubmitted,
		model.AttemptStatusAbandoned,
	},
	model.AttemptStatusSubmitted:     {},
	model.AttemptStatusAutoSubmitted: {},
	model.AttemptStatusAbandoned:     {},
}

// ValidateAttemptTransition returns ErrInvalidAttemptTransition (wrapped
// with both states) when moving from `from` to `to` is not allowed.
func ValidateAttemptTransition(from, to string) error {
	for _, next := range attemptTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s to %s", ErrInvalidAttemptTransition, from, to)
}
