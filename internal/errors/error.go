package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryInput     Category = "input"     // malformed vnode data
	CategoryDOM       Category = "dom"       // DOM assignment failures
	CategoryComponent Category = "component" // user render function failures
	CategoryEvent     Category = "event"     // event bridge misuse
	CategoryTick      Category = "tick"      // tick handler misuse
	CategoryRender    Category = "render"    // render entry point errors
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
)

// ArborError is a structured error with an error code, suggestions, and
// documentation links.
type ArborError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (input, dom, tick, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ArborError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ArborError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ArborError) WithSuggestion(s string) *ArborError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ArborError) WithDetail(d string) *ArborError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *ArborError) Wrap(err error) *ArborError {
	e.Wrapped = err
	return e
}

// New creates an ArborError from a registered error code.
func New(code string) *ArborError {
	template, ok := registry[code]
	if !ok {
		return &ArborError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ArborError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new ArborError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ArborError {
	return &ArborError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an ArborError.
func FromError(err error, code string) *ArborError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*ArborError); ok {
		return ae
	}
	return New(code).Wrap(err)
}
