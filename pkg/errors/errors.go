package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Extractor errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrCSVRead      ErrorCode = "CSV_READ"
	ErrCSVSchema    ErrorCode = "CSV_SCHEMA"

	// Mapping errors
	ErrMappingBuild     ErrorCode = "MAPPING_BUILD"
	ErrMappingInvalid   ErrorCode = "MAPPING_INVALID"
	ErrMappingDuplicate ErrorCode = "MAPPING_DUPLICATE"

	// Transformer errors
	ErrRowFieldMissing ErrorCode = "ROW_FIELD_MISSING"

	// Grouper errors
	ErrRequiredFieldMissing ErrorCode = "REQUIRED_FIELD_MISSING"

	// Loader errors
	ErrEncode ErrorCode = "ENCODE"
)

// defaultMessages holds the message used when an error is raised without one
var defaultMessages = map[ErrorCode]string{
	ErrUnknown:              "An unknown error occurred.",
	ErrInternal:             "Internal error",
	ErrInvalidInput:         "Invalid input",
	ErrConfigLoad:           "Failed to load configuration",
	ErrConfigParse:          "Failed to parse configuration",
	ErrConfigValid:          "Invalid configuration",
	ErrFileNotFound:         "File not found",
	ErrCSVRead:              "CSV reader error",
	ErrCSVSchema:            "Invalid csv schema",
	ErrMappingBuild:         "Mapping build error",
	ErrMappingInvalid:       "Mapping error",
	ErrMappingDuplicate:     "Duplicate mapping rule",
	ErrRowFieldMissing:      "Row does not contain field",
	ErrRequiredFieldMissing: "Required field missing",
	ErrEncode:               "Encoding error",
}

// DefaultMessage returns the default message registered for code
func DefaultMessage(code ErrorCode) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return defaultMessages[ErrUnknown]
}

// PricatError represents a structured error with code and details
type PricatError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PricatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PricatError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PricatError) Is(target error) bool {
	var targetErr *PricatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PricatError with the given code and message.
// An empty message falls back to the code's default message.
func New(code ErrorCode, message string) *PricatError {
	if message == "" {
		message = DefaultMessage(code)
	}
	return &PricatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PricatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PricatError {
	return &PricatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PricatError
func Wrap(err error, code ErrorCode, message string) *PricatError {
	if err == nil {
		return nil
	}
	if message == "" {
		message = DefaultMessage(code)
	}
	return &PricatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PricatError {
	if err == nil {
		return nil
	}
	return &PricatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PricatError) WithDetail(key string, value interface{}) *PricatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PricatError) WithDetails(details map[string]interface{}) *PricatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pricatErr *PricatError
	if errors.As(err, &pricatErr) {
		return pricatErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PricatError
func GetErrorCode(err error) ErrorCode {
	var pricatErr *PricatError
	if errors.As(err, &pricatErr) {
		return pricatErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PricatError
func GetErrorDetails(err error) map[string]interface{} {
	var pricatErr *PricatError
	if errors.As(err, &pricatErr) {
		return pricatErr.Details
	}
	return nil
}
