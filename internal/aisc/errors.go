package aisc

import "errors"

var (
	// ErrNotImplemented marks a limit state the checker deliberately does not
	// compute. It is never replaced by an approximation.
	ErrNotImplemented = errors.New("limit state not implemented")

	// ErrNoApplicableLimitState is returned when every candidate strength of a
	// loading type is inapplicable.
	ErrNoApplicableLimitState = errors.New("no applicable limit state")

	// ErrMissingProperty is returned when a section property can neither be
	// read nor back-derived.
	ErrMissingProperty = errors.New("missing section property")
)
