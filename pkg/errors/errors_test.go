// SPDX-License-Identifier: Apache-2.0
package errors

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	cause := errors.New("unknown time zone Not/AZone")
	he := New(CodeExecutionError, "datetime failed", cause)

	if he.Code != CodeExecutionError {
		t.Errorf("expected CodeExecutionError, got %v", he.Code)
	}
	if he.Message != "datetime failed" {
		t.Errorf("expected message 'datetime failed', got %q", he.Message)
	}
	if he.Err != cause {
		t.Errorf("expected cause to be preserved")
	}
	if !errors.Is(he, cause) {
		t.Errorf("expected errors.Is to work with wrapped error")
	}
}

func TestWithContext(t *testing.T) {
	he := New(CodeInvalidArguments, "validation failed", nil)
	he.WithContext("operation", "calculate").
		WithContext("violations", []string{"b: must not be zero"})

	if he.Context["operation"] != "calculate" {
		t.Errorf("expected context operation to be 'calculate'")
	}
	if he.Context["violations"] == nil {
		t.Errorf("expected context violations to be set")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		he       *HermesError
		expected string
	}{
		{
			name:     "with cause",
			he:       New(CodeExecutionError, "operation calculate failed", errors.New("division by zero")),
			expected: "[EXECUTION_ERROR] operation calculate failed: division by zero",
		},
		{
			name:     "without cause",
			he:       New(CodeUnknownOperation, "operation not registered", nil),
			expected: "[UNKNOWN_OPERATION] operation not registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.he.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAsHermesError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "already HermesError",
			err:      New(CodeInvalidArguments, "bad input", nil),
			expected: CodeInvalidArguments,
		},
		{
			name:     "generic error",
			err:      errors.New("generic error"),
			expected: CodeExecutionError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := AsHermesError(tt.err)
			if tt.expected == "" {
				if he != nil {
					t.Errorf("expected nil for nil error")
				}
			} else {
				if he == nil {
					t.Errorf("expected non-nil HermesError")
				} else if he.Code != tt.expected {
					t.Errorf("expected %v, got %v", tt.expected, he.Code)
				}
			}
		})
	}
}

func TestCode(t *testing.T) {
	if got := Code(nil); got != "" {
		t.Errorf("expected empty code for nil, got %v", got)
	}
	if got := Code(New(CodeUnknownOperation, "missing", nil)); got != CodeUnknownOperation {
		t.Errorf("expected CodeUnknownOperation, got %v", got)
	}
	if got := Code(errors.New("plain")); got != CodeExecutionError {
		t.Errorf("expected CodeExecutionError for untyped error, got %v", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	he := New(CodeExecutionError, "datetime failed", errors.New("unknown time zone"))
	he.WithContext("operation", "datetime")

	data, err := json.Marshal(he)
	if err != nil {
		t.Fatalf("unexpected error marshaling: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("unexpected error unmarshaling: %v", err)
	}

	if result["code"] != "EXECUTION_ERROR" {
		t.Errorf("expected code 'EXECUTION_ERROR', got %v", result["code"])
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{CodeUnknownOperation, 404},
		{CodeInvalidArguments, 400},
		{CodeExecutionError, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			he := New(tt.code, "test", nil)
			if he.StatusCode != tt.expected {
				t.Errorf("expected status %d, got %d", tt.expected, he.StatusCode)
			}
		})
	}
}
