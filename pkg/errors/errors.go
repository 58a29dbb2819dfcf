package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable machine-checkable error category. Tests assert
// on codes, never on message text.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors (entry-scoped unless the whole document is gone)
	ErrManifestMissing    ErrorCode = "MANIFEST_MISSING"
	ErrManifestParse      ErrorCode = "MANIFEST_PARSE"
	ErrMissingTarget      ErrorCode = "MISSING_TARGET"
	ErrInvalidRequirement ErrorCode = "INVALID_REQUIREMENT"
	ErrInvalidEntry       ErrorCode = "INVALID_ENTRY"
	ErrDuplicateTarget    ErrorCode = "DUPLICATE_TARGET"
	ErrUnknownGroup       ErrorCode = "UNKNOWN_GROUP"

	// Filesystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"

	// Git / external command errors
	ErrGitCommand    ErrorCode = "GIT_COMMAND"
	ErrDirtyWorktree ErrorCode = "DIRTY_WORKTREE"
	ErrCommandRun    ErrorCode = "COMMAND_RUN"
)

// HomelinkError is a structured error carrying a stable code, a
// message, optional details, and an optional wrapped cause.
type HomelinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *HomelinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *HomelinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches two HomelinkErrors by code.
func (e *HomelinkError) Is(target error) bool {
	var targetErr *HomelinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a HomelinkError with the given code and message.
func New(code ErrorCode, message string) *HomelinkError {
	return &HomelinkError{Code: code, Message: message}
}

// Newf creates a HomelinkError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *HomelinkError {
	return &HomelinkError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *HomelinkError {
	if err == nil {
		return nil
	}
	return &HomelinkError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HomelinkError {
	if err == nil {
		return nil
	}
	return &HomelinkError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// WithDetail attaches a key/value detail and returns the error for
// chaining.
func (e *HomelinkError) WithDetail(key string, value interface{}) *HomelinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var herr *HomelinkError
	if errors.As(err, &herr) {
		return herr.Code == code
	}
	return false
}

// GetErrorCode extracts the code from err, or ErrUnknown for foreign
// errors.
func GetErrorCode(err error) ErrorCode {
	var herr *HomelinkError
	if errors.As(err, &herr) {
		return herr.Code
	}
	return ErrUnknown
}
