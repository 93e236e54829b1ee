package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
)

// Code is a stable, machine-readable error identifier exposed to callers.
type Code string

const (
	CodeEmptyContent           Code = "EMPTY_CONTENT"
	CodeInsufficientReferences Code = "INSUFFICIENT_REFERENCES"
	CodeInvalidReference       Code = "INVALID_REFERENCE"
	CodeMissingTerm            Code = "MISSING_TERM"
	CodeMissingDefinition      Code = "MISSING_DEFINITION"
	CodeInvalidArgument        Code = "INVALID_ARGUMENT"

	CodeDebateNotFound      Code = "DEBATE_NOT_FOUND"
	CodeDefinitionNotFound  Code = "DEFINITION_NOT_FOUND"
	CodeArgumentNotFound    Code = "ARGUMENT_NOT_FOUND"
	CodeParticipantNotFound Code = "PARTICIPANT_NOT_FOUND"

	CodeDebateNotInProgress Code = "DEBATE_NOT_IN_PROGRESS"
	CodeDebateNotActive     Code = "DEBATE_NOT_ACTIVE"
	CodeNotYourTurn         Code = "NOT_YOUR_TURN"
	CodeAlreadySubmitted    Code = "ALREADY_SUBMITTED"
	CodeNotParticipant      Code = "NOT_PARTICIPANT"
	CodeInvalidState        Code = "INVALID_STATE"

	CodeConcurrentModification Code = "CONCURRENT_MODIFICATION"

	// Generic codes for errors that carry only a sentinel kind.
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	CodeValidation    Code = "VALIDATION"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeConflict      Code = "CONFLICT"
	CodeInternal      Code = "INTERNAL"
)

// Error is a coded domain error. It unwraps to its sentinel kind and,
// when present, to the error that caused it, so both errors.Is(err, ErrNotFound)
// and errors.Is(err, ErrDebateNotFound) hold for a wrapped ErrDebateNotFound.
type Error struct {
	Code    Code
	Message string

	kind  error
	cause error
}

func newError(kind error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, kind: kind}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the sentinel kind and the optional cause.
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Kind returns the sentinel category of the error.
func (e *Error) Kind() error { return e.kind }

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	c := *e
	c.Message = fmt.Sprintf(format, args...)
	return &c
}

// Coded errors. Validation errors are caller-correctable; state errors mean the
// caller acted on a stale view; concurrency errors may be retried after a refetch.
var (
	ErrEmptyContent           = newError(ErrValidation, CodeEmptyContent, "content is empty or too short")
	ErrInsufficientReferences = newError(ErrValidation, CodeInsufficientReferences, "not enough references")
	ErrInvalidReference       = newError(ErrValidation, CodeInvalidReference, "invalid reference")
	ErrMissingTerm            = newError(ErrValidation, CodeMissingTerm, "term is required")
	ErrMissingDefinition      = newError(ErrValidation, CodeMissingDefinition, "definition is required")
	ErrInvalidArgument        = newError(ErrValidation, CodeInvalidArgument, "invalid argument")

	ErrDebateNotFound      = newError(ErrNotFound, CodeDebateNotFound, "debate not found")
	ErrDefinitionNotFound  = newError(ErrNotFound, CodeDefinitionNotFound, "definition not found")
	ErrArgumentNotFound    = newError(ErrNotFound, CodeArgumentNotFound, "argument not found")
	ErrParticipantNotFound = newError(ErrNotFound, CodeParticipantNotFound, "participant not found")

	ErrDebateNotInProgress = newError(ErrInvalidState, CodeDebateNotInProgress, "debate is not in progress")
	ErrDebateNotActive     = newError(ErrInvalidState, CodeDebateNotActive, "debate is not active")
	ErrNotYourTurn         = newError(ErrInvalidState, CodeNotYourTurn, "it is not your side's turn")
	ErrAlreadySubmitted    = newError(ErrAlreadyExists, CodeAlreadySubmitted, "arguments already submitted for this turn")
	ErrNotParticipant      = newError(ErrForbidden, CodeNotParticipant, "caller is not an active participant")
	ErrInvalidTransition   = newError(ErrInvalidState, CodeInvalidState, "operation not allowed in the current state")

	ErrConcurrentModification = newError(ErrConflict, CodeConcurrentModification, "debate was modified concurrently")
)

// CodeOf returns the stable code for err. Errors without an explicit code are
// classified by their sentinel kind; anything unrecognised is CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrConflict):
		return CodeConflict
	}
	return CodeInternal
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
