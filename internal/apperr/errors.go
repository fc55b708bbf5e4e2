// Package apperr defines the domain error taxonomy. Services produce
// these; the HTTP layer maps them to status codes with errors.As.
// Anything that is not one of these types is treated as an
// infrastructure failure and never shown to clients verbatim.
package apperr

// ValidationError reports malformed or missing input. Field names the
// first offending field so the client can correct it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Reason }

// Required is the standard error for a required field that is missing
// or empty after trimming.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required and cannot be empty"}
}

// NotFoundError means no visible record matched. It covers both true
// absence and out-of-scope access so existence is never disclosed.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) *NotFoundError { return &NotFoundError{Resource: resource} }

// ForbiddenError means the caller is authenticated but not allowed to
// perform this specific action.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func Forbidden(reason string) *ForbiddenError { return &ForbiddenError{Reason: reason} }
