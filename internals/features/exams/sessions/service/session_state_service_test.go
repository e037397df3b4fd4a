package service

import (
	"errors"
	"testing"
)

func TestSessionTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{SessionStatusScheduled, SessionStatusActive, true},
		{SessionStatusScheduled, SessionStatusCancelled, true},
		{SessionStatusScheduled, SessionStatusCompleted, false},
		{SessionStatusScheduled, SessionStatusPaused, false},
		{SessionStatusActive, SessionStatusPaused, true},
		{SessionStatusActive, SessionStatusCompleted, true},
		{SessionStatusActive, SessionStatusCancelled, true},
		{SessionStatusPaused, SessionStatusActive, true},
		{SessionStatusPaused, SessionStatusCompleted, true},
		{SessionStatusCompleted, SessionStatusActive, false},
		{SessionStatusCancelled, SessionStatusScheduled, false},
	}
	for _, tc := range cases {
		err := ValidateSessionTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidSessionTransition) {
			t.Fatalf("%s -> %s: err = %v, want ErrInvalidSessionTransition", tc.from, tc.to, err)
		}
	}
}
