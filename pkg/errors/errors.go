// Package errors defines the structured error type and the stable error
// codes used across the lantern CLI. Codes are matchable in tests and
// scripts; messages are for humans.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string value
type ErrorCode string

const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrNoDeployTarget ErrorCode = "NO_DEPLOY_TARGET"
	ErrInvalidSlug    ErrorCode = "INVALID_SLUG"
	ErrMissingTitle   ErrorCode = "MISSING_TITLE"
	ErrMissingMessage ErrorCode = "MISSING_MESSAGE"

	// Authentication and remote-state errors
	ErrAuthRequired      ErrorCode = "AUTH_REQUIRED"
	ErrWorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"
	ErrProjectMissing    ErrorCode = "PROJECT_MISSING"
	ErrMisconfigured     ErrorCode = "MISCONFIGURED"

	// Build input errors
	ErrBuildMissing ErrorCode = "BUILD_MISSING"
)

// LanternError is a structured error with a stable code
type LanternError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *LanternError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LanternError) Unwrap() error {
	return e.Wrapped
}

// Is matches two LanternErrors by code
func (e *LanternError) Is(target error) bool {
	var targetErr *LanternError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LanternError with the given code and message
func New(code ErrorCode, message string) *LanternError {
	return &LanternError{Code: code, Message: message}
}

// Newf creates a new LanternError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LanternError {
	return &LanternError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a LanternError
func Wrap(err error, code ErrorCode, message string) *LanternError {
	if err == nil {
		return nil
	}
	return &LanternError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LanternError {
	if err == nil {
		return nil
	}
	return &LanternError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lanternErr *LanternError
	if errors.As(err, &lanternErr) {
		return lanternErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LanternError
func GetErrorCode(err error) ErrorCode {
	var lanternErr *LanternError
	if errors.As(err, &lanternErr) {
		return lanternErr.Code
	}
	return ErrUnknown
}
