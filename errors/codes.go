package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeInvalidConfiguration indicates malformed generator or policy settings.
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
	// ErrCodeInvalidArgument indicates an out-of-range argument to a pure computation.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Generation errors
const (
	// ErrCodeLengthTooShort indicates the requested length is below the configured minimum.
	ErrCodeLengthTooShort ErrorCode = "LENGTH_TOO_SHORT"
	// ErrCodeGenerationExhausted indicates no candidate satisfied the policies within the retry bound.
	ErrCodeGenerationExhausted ErrorCode = "GENERATION_EXHAUSTED"
)

// Sentinels for use with errors.Is. They match any AppError with the same code.
var (
	ErrInvalidConfiguration = &AppError{Code: ErrCodeInvalidConfiguration}
	ErrInvalidArgument      = &AppError{Code: ErrCodeInvalidArgument}
	ErrLengthTooShort       = &AppError{Code: ErrCodeLengthTooShort}
	ErrGenerationExhausted  = &AppError{Code: ErrCodeGenerationExhausted}
)
