package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrDegenerateRange is wrapped by every RangeError.
var ErrDegenerateRange = stdErrors.New("min progress must be less than max progress")

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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

// RangeError reports a progress range that cannot be mapped onto pixels.
type RangeError struct {
	Min int
	Max int
}

// NewRangeError constructs a RangeError for the rejected bounds.
func NewRangeError(min, max int) error {
	return &RangeError{Min: min, Max: max}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("range error: [%d, %d]: %s", e.Min, e.Max, ErrDegenerateRange.Error())
}

// Unwrap exposes ErrDegenerateRange so callers can match with errors.Is.
func (e *RangeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrDegenerateRange
}

// RenderError indicates a failure while producing output for a widget.
type RenderError struct {
	Target string
	Err    error
}

// NewRenderError constructs a RenderError for the given output target.
func NewRenderError(target string, err error) error {
	return &RenderError{Target: target, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
