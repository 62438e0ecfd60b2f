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
	ErrNoCopyPolicy  ErrorCode = "NO_COPY_POLICY"
	ErrAbsolutePath  ErrorCode = "ABSOLUTE_PATH"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Environment errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Filesystem sync errors
	ErrReadDir    ErrorCode = "READ_DIR"
	ErrItemRemove ErrorCode = "ITEM_REMOVE"
	ErrItemCopy   ErrorCode = "ITEM_COPY"

	// Subprocess errors
	ErrProcessStart ErrorCode = "PROCESS_START"
	ErrProcessExit  ErrorCode = "PROCESS_EXIT"
)

// Kind groups error codes by the stage of a build that produced them.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindConfiguration Kind = "configuration"
	KindEnvironment   Kind = "environment"
	KindFilesystem    Kind = "filesystem"
	KindSubprocess    Kind = "subprocess"
)

var codeKinds = map[ErrorCode]Kind{
	ErrNoCopyPolicy:  KindConfiguration,
	ErrAbsolutePath:  KindConfiguration,
	ErrConfigLoad:    KindConfiguration,
	ErrConfigParse:   KindConfiguration,
	ErrConfigInvalid: KindConfiguration,
	ErrInvalidInput:  KindConfiguration,
	ErrToolNotFound:  KindEnvironment,
	ErrDirCreate:     KindEnvironment,
	ErrReadDir:       KindFilesystem,
	ErrItemRemove:    KindFilesystem,
	ErrItemCopy:      KindFilesystem,
	ErrProcessStart:  KindSubprocess,
	ErrProcessExit:   KindSubprocess,
}

// Kind returns the category the code belongs to
func (c ErrorCode) Kind() Kind {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return KindUnknown
}

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error.
// Callers must not return the result as an error interface when err may be nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
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
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// KindOf returns the kind of the first Error in err's chain
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	return GetErrorCode(err).Kind()
}
