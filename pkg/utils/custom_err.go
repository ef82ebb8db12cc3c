package utils

import (
	"errors"
	"fmt"
)

var (
	ErrTripTemplateNotFound     = errors.New("trip template not found")
	ErrInvalidStartDate         = errors.New("invalid start date format")
	ErrStartDateInPast          = errors.New("start date cannot be in the past")
	ErrQueryTooShort            = errors.New("query must be at least 2 characters long")
	ErrAIServiceUnavailable     = errors.New("generation service unavailable")
	ErrPlacesServiceUnavailable = errors.New("places service unavailable")
)

// ValidationError carries the first offending field of a trip request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Message)
}

const (
	SynthesisUnparseableOutput = "unparseable model output"
	SynthesisContractViolation = "structural contract violation"
)

// SynthesisError is raised when the generative model output cannot be used.
// RawOutput preserves the original model text so callers can inspect it.
type SynthesisError struct {
	Kind      string
	Message   string
	RawOutput string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
