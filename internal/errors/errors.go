package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput       = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON      = errors.New("invalid JSON format")
	ErrMultipleJSON     = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound     = errors.New("file not found")
	ErrFileEmpty        = errors.New("file is empty")
	ErrNoInput          = errors.New("no input provided: pass two document paths, or '-' to read one side from stdin")
	ErrInvalidFilePath  = errors.New("invalid file path")
	ErrInvalidRootType  = errors.New("document root is not a JSON object")
	ErrMaxDepthExceeded = errors.New("document exceeds the maximum nesting depth")
	ErrSelectNoMatch    = errors.New("selector matched nothing in the document")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeCompare ErrorType = "compare"
	ErrorTypeFormat  ErrorType = "format"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
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

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewCompareError creates a new error related to document comparison
func NewCompareError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeCompare,
		Message: message,
		Err:     err,
	}
}

// NewFormatError creates a new error related to report formatting
func NewFormatError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeFormat,
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

// UserFriendlyError returns a user-friendly error message. An AppError
// contributes its category and contextual message; a recognized sentinel in
// the chain appends its guidance text.
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		prefix := typePrefix(appErr.Type)
		if hint := sentinelHint(appErr.Err); hint != "" {
			return fmt.Sprintf("%s: %s. %s", prefix, appErr.Message, hint)
		}
		return fmt.Sprintf("%s: %s", prefix, appErr.Message)
	}

	if hint := sentinelHint(err); hint != "" {
		return fmt.Sprintf("Error: %s", hint)
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}

func typePrefix(t ErrorType) string {
	switch t {
	case ErrorTypeInput:
		return "Input error"
	case ErrorTypeParsing:
		return "JSON parsing error"
	case ErrorTypeCompare:
		return "Comparison error"
	case ErrorTypeFormat:
		return "Report formatting error"
	case ErrorTypeOutput:
		return "Output error"
	default:
		return "Error"
	}
}

// sentinelHint returns the guidance text for a recognized sentinel anywhere
// in the chain, or "" when there is none.
func sentinelHint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "The input is empty. Please provide valid JSON data."
	case errors.Is(err, ErrInvalidJSON):
		return "The input contains invalid JSON. Please check your JSON syntax."
	case errors.Is(err, ErrMultipleJSON):
		return "Multiple JSON values found. Please provide a single JSON object per document."
	case errors.Is(err, ErrFileNotFound):
		return "The specified file could not be found. Please check the file path."
	case errors.Is(err, ErrFileEmpty):
		return "The specified file is empty. Please provide a file with valid JSON content."
	case errors.Is(err, ErrNoInput):
		return "No input provided. Pass two document paths, or '-' to read one side from stdin."
	case errors.Is(err, ErrInvalidFilePath):
		return "Invalid file path. Please provide a valid file path."
	case errors.Is(err, ErrInvalidRootType):
		return "Both documents must be JSON objects at the top level."
	case errors.Is(err, ErrMaxDepthExceeded):
		return "The document is nested too deeply to compare."
	case errors.Is(err, ErrSelectNoMatch):
		return "The --select path matched nothing. Please check the selector."
	}
	return ""
}
