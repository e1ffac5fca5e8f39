package summarize

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation = errors.New("invalid request")
	ErrNotReady   = errors.New("summarization model is not ready")
	ErrGeneration = errors.New("summary generation failed")
)

// Error is a failure of one request. Detail is safe to show to the caller.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func validationError(err error) *Error {
	return &Error{Kind: ErrValidation, Detail: err.Error()}
}

func notReadyError() *Error {
	return &Error{Kind: ErrNotReady, Detail: "Summarization model is not available"}
}

func generationError(err error) *Error {
	return &Error{Kind: ErrGeneration, Detail: "Failed to generate summary. Please try again.", Err: err}
}
