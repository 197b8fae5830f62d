// Package errors defines the typed errors returned when theme or content
// data cannot be loaded and when a deck cannot be written.
package errors

import (
	"fmt"
)

// ParseError represents a YAML decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a theme or content field that failed a rule.
// Field is a dotted path such as "features[3].tag".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OutputError is a failure to persist a generated file.
type OutputError struct {
	Path string
	Err  error
}

// NewOutputError constructs an OutputError for path.
func NewOutputError(path string, err error) error {
	return &OutputError{Path: path, Err: err}
}

func (e *OutputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("output error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *OutputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
