// SPDX-License-Identifier: Apache-2.0
// Package errors provides the typed failure envelope for Hermes.
// Every failure a caller can observe carries one of exactly three codes.
package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode classifies Hermes failures for callers and monitoring.
type ErrorCode string

const (
	// CodeUnknownOperation indicates the requested operation is not registered.
	CodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"

	// CodeInvalidArguments indicates one or more fields failed schema or
	// cross-field validation.
	CodeInvalidArguments ErrorCode = "INVALID_ARGUMENTS"

	// CodeExecutionError indicates a handler ran but could not complete.
	CodeExecutionError ErrorCode = "EXECUTION_ERROR"
)

// HermesError is a typed error with context for observability.
// It implements the error interface and can be unwrapped with errors.As().
type HermesError struct {
	Code       ErrorCode
	Message    string
	Err        error
	Context    map[string]interface{}
	StatusCode int // For HTTP-shaped transports
}

// Error implements the error interface.
func (e *HermesError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap for error chain traversal.
func (e *HermesError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements json.Marshaler for structured logging.
func (e *HermesError) MarshalJSON() ([]byte, error) {
	type Alias HermesError
	return json.Marshal(&struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Err     string `json:"error,omitempty"`
		*Alias
	}{
		Message: e.Error(),
		Code:    string(e.Code),
		Err:     fmt.Sprintf("%v", e.Err),
		Alias:   (*Alias)(e),
	})
}

// New creates a new HermesError with the given code, message, and cause.
func New(code ErrorCode, msg string, cause error) *HermesError {
	return &HermesError{
		Code:       code,
		Message:    msg,
		Err:        cause,
		Context:    make(map[string]interface{}),
		StatusCode: codeToStatusCode(code),
	}
}

// WithContext adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *HermesError) WithContext(key string, value interface{}) *HermesError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// AsHermesError attempts to convert an error to a HermesError.
// Returns the error unchanged if it already carries a code, or wraps it
// as an execution error otherwise. This is the single choke point for the
// pass-through rule: typed failures cross boundaries intact.
func AsHermesError(err error) *HermesError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HermesError); ok {
		return he
	}
	return New(CodeExecutionError, "wrapped error", err)
}

// Code returns the error's code, or CodeExecutionError for untyped errors.
// Returns the empty code for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if he, ok := err.(*HermesError); ok {
		return he.Code
	}
	return CodeExecutionError
}

// codeToStatusCode maps error codes to HTTP-style status codes.
func codeToStatusCode(code ErrorCode) int {
	switch code {
	case CodeUnknownOperation:
		return 404 // NOT_FOUND
	case CodeInvalidArguments:
		return 400 // INVALID_ARGUMENT
	default:
		return 500 // INTERNAL
	}
}
