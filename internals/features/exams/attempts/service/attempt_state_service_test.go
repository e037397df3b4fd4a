package service

import (
	"errors"
	"testing"

	"academylms_backend/internals/features/exams/attempts/model"
)

func TestAttemptTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{model.AttemptStatusInProgress, model.AttemptStatusSubmitted, true},
		{model.AttemptStatusInProgress, model.AttemptStatusAutoSubmitted, true},
		{model.AttemptStatusInProgress, model.AttemptStatusAbandoned, true},
		{model.AttemptStatusSubmitted, model.AttemptStatusInProgress, false},
		{model.AttemptStatusSubmitted, model.AttemptStatusAbandoned, false},
		{model.AttemptStatusAutoSubmitted, model.AttemptStatusSubmitted, false},
		{model.AttemptStatusAbandoned, model.AttemptStatusInProgress, false},
	}
	for _, tc := range cases {
		err := ValidateAttemptTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidAttemptTransition) {
			t.Fatalf("%s -> %s: err = %v, want ErrInvalidAttemptTransition", tc.from, tc.to, err)
		}
	}
}
