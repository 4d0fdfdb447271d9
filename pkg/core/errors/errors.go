// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     errors
// Description: Coded errors shared by the tree loader, codec service and CLI
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Code classifies an error for exit handling and logging
type Code string

const (
	CodeUnknown     Code = "UNKNOWN"
	CodeUsage       Code = "USAGE"
	CodeInvalidTree Code = "INVALID_TREE"
	CodeConfigError Code = "CONFIG_ERROR"
	CodeIO          Code = "IO_ERROR"
	CodeAudio       Code = "AUDIO_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeUsage, CodeInvalidTree, CodeConfigError, CodeIO, CodeAudio:
		return true
	default:
		return false
	}
}

// Error is a structured error with a code, an optional cause and details
type Error struct {
	message string
	cause   error
	code    Code
	details map[string]interface{}
}

// New creates a new Error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		message: message,
		code:    code,
		details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a message. The code of a wrapped *Error is kept,
// any other cause gets CodeUnknown until WithCode is applied.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}

	var coded *Error
	if stderrors.As(err, &coded) {
		wrapped.code = coded.code
		for k, v := range coded.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a multi-line description used in debug logs
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message": e.message,
		"code":    e.code,
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode reports whether any error in err's chain carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		if coded, ok := err.(*Error); ok && coded.code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or CodeUnknown
func GetCode(err error) Code {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.code
	}
	return CodeUnknown
}
