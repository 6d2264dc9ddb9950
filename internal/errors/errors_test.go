package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeWire,
				Message: "member missing a name node",
				Err:     nil,
			},
			expected: "wire: member missing a name node",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name: "same type",
			appError: &AppError{
				Type:    ErrorTypeRange,
				Message: "test message",
			},
			target: &AppError{
				Type:    ErrorTypeRange,
				Message: "different message",
				Err:     errors.New("some error"),
			},
			expected: true,
		},
		{
			name: "different type",
			appError: &AppError{
				Type:    ErrorTypeRange,
				Message: "test message",
			},
			target: &AppError{
				Type:    ErrorTypeDate,
				Message: "test message",
			},
			expected: false,
		},
		{
			name: "not an AppError",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "test message",
			},
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Is(tt.target)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected ErrorType
	}{
		{"input", NewInputError("m", nil), ErrorTypeInput},
		{"range", NewRangeError("m", nil), ErrorTypeRange},
		{"representation", NewRepresentationError("m", nil), ErrorTypeRepresentation},
		{"unsupported", NewUnsupportedError("m", nil), ErrorTypeUnsupported},
		{"wire", NewWireError("m", nil), ErrorTypeWire},
		{"date", NewDateError("m", nil), ErrorTypeDate},
		{"output", NewOutputError("m", nil), ErrorTypeOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Type)
		})
	}
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("failed to read file", nil),
			expected: "Input error: failed to read file",
		},
		{
			name:     "range error",
			err:      NewRangeError("integer 5000000000 outside the accepted range", nil),
			expected: "Integer range error: integer 5000000000 outside the accepted range",
		},
		{
			name:     "representation error",
			err:      NewRepresentationError("double NaN has no wire representation", nil),
			expected: "Unrepresentable value: double NaN has no wire representation",
		},
		{
			name:     "unsupported error",
			err:      NewUnsupportedError("no decoding rule for <nickname> node", nil),
			expected: "Unsupported value: no decoding rule for <nickname> node",
		},
		{
			name:     "wire error",
			err:      NewWireError("member missing a name node", nil),
			expected: "Malformed wire data: member missing a name node",
		},
		{
			name:     "date error",
			err:      NewDateError("date text does not match the wire layout", nil),
			expected: "Malformed date: date text does not match the wire layout",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide an XML-RPC value document or JSON data.",
		},
		{
			name:     "standard error - invalid XML",
			err:      ErrInvalidXML,
			expected: "Error: The input is not a well-formed XML document.",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserFriendlyError(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
