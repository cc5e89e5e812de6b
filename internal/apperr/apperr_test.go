package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestHelpersWrapSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{NotFoundf("quiz %s", "q1"), ErrNotFound},
		{Forbiddenf("quiz %s", "q1"), ErrForbidden},
		{Conflictf("quiz %s", "q1"), ErrConflict},
		{InvalidInputf("count %d", 42), ErrInvalidInput},
		{Upstream("load quiz", errors.New("timeout")), ErrUpstreamUnavailable},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Errorf("%v does not wrap %v", tc.err, tc.sentinel)
		}
	}
}

func TestWrappedMessageKeepsContext(t *testing.T) {
	err := NotFoundf("quiz %s", "q1")
	want := "quiz q1: not found"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	rewrapped := fmt.Errorf("submitting: %w", err)
	if !errors.Is(rewrapped, ErrNotFound) {
		t.Error("rewrapping lost the sentinel")
	}
}
