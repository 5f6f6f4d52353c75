package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified passgen error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// InvalidConfiguration creates an error for a rejected configuration field.
func InvalidConfiguration(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidConfiguration,
		Message: fmt.Sprintf("Invalid configuration: %s", reason),
		Details: details,
	}
}

// InvalidArgument creates an error for an argument outside its valid domain.
func InvalidArgument(name string, value any, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("Invalid argument %s: %s", name, reason),
		Details: map[string]any{"argument": name, "value": value},
	}
}

// LengthTooShort creates an error for a length below the generator minimum.
func LengthTooShort(length, minimum int) *AppError {
	return &AppError{
		Code:    ErrCodeLengthTooShort,
		Message: fmt.Sprintf("Password length should be at least %d characters.", minimum),
		Details: map[string]any{"length": length, "minimum_length": minimum},
	}
}

// GenerationExhausted creates an error for a retry bound reached without an accepted candidate.
func GenerationExhausted(length, attempts int) *AppError {
	return &AppError{
		Code:    ErrCodeGenerationExhausted,
		Message: fmt.Sprintf("Failed to generate a valid password after %d attempts.", attempts),
		Details: map[string]any{"length": length, "attempts": attempts},
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
