package errors

import (
	"fmt"
)

// ParseError represents a YAML or JSON decoding failure with optional line metadata.
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

// ValidationError captures schema malformation and value conformance issues.
// Field is a dotted path such as "Grid.propSchema.properties.justify".
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

// RegistrationError indicates a failure while aggregating component registrations.
type RegistrationError struct {
	Type    string
	Message string
	Err     error
}

// NewRegistrationError constructs a RegistrationError for the given component type.
func NewRegistrationError(componentType string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistrationError{Type: componentType, Message: message, Err: err}
}

func (e *RegistrationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Type != "" {
		return fmt.Sprintf("registration error [%s]: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("registration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistrationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownTypeError is returned when an instance tree references a type that
// no registration provides.
type UnknownTypeError struct {
	Type string
	Path string
}

// NewUnknownTypeError constructs an UnknownTypeError.
func NewUnknownTypeError(componentType, path string) error {
	return &UnknownTypeError{Type: componentType, Path: path}
}

func (e *UnknownTypeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("unknown component type %q at %s", e.Type, e.Path)
	}
	return fmt.Sprintf("unknown component type %q", e.Type)
}
