package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core quiz flow. Services wrap these with context via
// fmt.Errorf("...: %w", ...) and controllers map them to HTTP status codes
// using errors.Is.
var (
	// ErrNotFound signals an absent quiz, user or topic record.
	ErrNotFound = errors.New("not found")

	// ErrForbidden signals an ownership mismatch between caller and resource.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict signals a double submission or an already-completed quiz.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput signals an out-of-bounds count or unknown enum value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData signals that no attempts exist in the requested
	// window. Distinct from a real 0% accuracy.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUpstreamUnavailable signals a failed or timed-out store call.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// Upstream wraps a store or question-bank failure so callers can treat it as
// transient without inspecting driver-specific errors.
func Upstream(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrUpstreamUnavailable)
}
