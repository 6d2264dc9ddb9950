package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrInvalidXML      = errors.New("invalid XML document")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrUnknownFormat   = errors.New("unknown output format")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput          ErrorType = "input"
	ErrorTypeRange          ErrorType = "range"
	ErrorTypeRepresentation ErrorType = "representation"
	ErrorTypeUnsupported    ErrorType = "unsupported"
	ErrorTypeWire           ErrorType = "wire"
	ErrorTypeDate           ErrorType = "date"
	ErrorTypeOutput         ErrorType = "output"
	ErrorTypeUnknown        ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewRangeError creates a new error for integers outside the accepted range
func NewRangeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRange,
		Message: message,
		Err:     err,
	}
}

// NewRepresentationError creates a new error for doubles with no wire
// representation (NaN and the infinities)
func NewRepresentationError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRepresentation,
		Message: message,
		Err:     err,
	}
}

// NewUnsupportedError creates a new error for values or wire nodes with no
// codec rule
func NewUnsupportedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeUnsupported,
		Message: message,
		Err:     err,
	}
}

// NewWireError creates a new error for wire trees that do not match the
// value grammar
func NewWireError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeWire,
		Message: message,
		Err:     err,
	}
}

// NewDateError creates a new error for date text that does not match the
// fixed wire layout
func NewDateError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDate,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeRange:
			return fmt.Sprintf("Integer range error: %s", appErr.Message)
		case ErrorTypeRepresentation:
			return fmt.Sprintf("Unrepresentable value: %s", appErr.Message)
		case ErrorTypeUnsupported:
			return fmt.Sprintf("Unsupported value: %s", appErr.Message)
		case ErrorTypeWire:
			return fmt.Sprintf("Malformed wire data: %s", appErr.Message)
		case ErrorTypeDate:
			return fmt.Sprintf("Malformed date: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide an XML-RPC value document or JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrInvalidXML) {
		return "Error: The input is not a well-formed XML document."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON value."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with content to convert."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrUnknownFormat) {
		return "Error: Unknown output format. Valid formats are json, xml, yaml, cbor and debug."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
