package types

import (
	"errors"
	"fmt"
)

// ValidationError rejects bad input before any I/O happens: an empty
// file set at ingestion time or a blank question at ask time.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ExtractionError reports a single file whose byte stream could not be
// parsed as a PDF.
type ExtractionError struct {
	File string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.File, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IngestionError wraps the first extraction failure of a batch. The
// batch is all-or-nothing, so one of these means no corpus was kept.
type IngestionError struct {
	Err error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed: %v", e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// AnswerError covers everything that can go wrong with a single answer
// call: network failure, service error, or a response that violates the
// output schema. It aborts only the in-flight turn.
type AnswerError struct {
	Reason string
	Err    error
}

func (e *AnswerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *AnswerError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAnswerError reports whether err is an AnswerError.
func IsAnswerError(err error) bool {
	var ae *AnswerError
	return errors.As(err, &ae)
}
