// File: error_test.go
// Title: Unit Tests for Core Error Implementation
// Description: Tests for the structured Error type covering construction,
//              wrapping, chain depth limiting, code and severity handling,
//              and JSON serialization.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %q; want %q", err.Error(), "something went wrong")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap standard error", func(t *testing.T) {
		cause := errors.New("root cause")
		err := Wrap(cause, "operation failed")

		if err.Error() != "operation failed: root cause" {
			t.Errorf("Error() = %q; want %q", err.Error(), "operation failed: root cause")
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error should match cause via errors.Is")
		}
	})

	t.Run("wrap nil returns nil", func(t *testing.T) {
		if err := Wrap(nil, "should be nil"); err != nil {
			t.Errorf("Wrap(nil, ...) = %v; want nil", err)
		}
	})

	t.Run("wrap preserves code and severity", func(t *testing.T) {
		inner := New("inner").WithCode(CodeParseFailed).WithSeverity(SeverityHigh)
		outer := Wrap(inner, "outer")

		if outer.Code() != CodeParseFailed {
			t.Errorf("Code() = %v; want %v", outer.Code(), CodeParseFailed)
		}
		if outer.Severity() != SeverityHigh {
			t.Errorf("Severity() = %v; want %v", outer.Severity(), SeverityHigh)
		}
	})

	t.Run("wrap preserves details", func(t *testing.T) {
		inner := New("inner").WithDetail("input", "abc")
		outer := Wrap(inner, "outer")

		if outer.Details()["input"] != "abc" {
			t.Errorf("Details()[input] = %v; want abc", outer.Details()["input"])
		}
	})

	t.Run("deep chains are truncated", func(t *testing.T) {
		var err error = New("bottom")
		for i := 0; i < MaxErrorChainDepth+5; i++ {
			err = Wrap(err, fmt.Sprintf("layer %d", i))
		}

		toolErr := err.(*Error)
		if !strings.Contains(toolErr.Error(), "chain truncated") {
			t.Errorf("expected truncated chain marker, got %q", toolErr.Error())
		}
		if toolErr.Details()["truncated"] != true {
			t.Error("truncated chains should record a truncated detail")
		}
	})
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		name             string
		code             Code
		expectedSeverity Severity
	}{
		{"validation code derives low", CodeValidationFailed, SeverityLow},
		{"decoding code derives high", CodeDecodingFailed, SeverityHigh},
		{"internal code derives critical", CodeInternal, SeverityCritical},
		{"parse code derives medium", CodeParseFailed, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test").WithCode(tt.code)
			if err.Severity() != tt.expectedSeverity {
				t.Errorf("Severity() = %v; want %v", err.Severity(), tt.expectedSeverity)
			}
		})
	}
}

func TestExplicitSeverityNotOverridden(t *testing.T) {
	err := New("test").WithSeverity(SeverityCritical).WithCode(CodeValidationFailed)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityCritical)
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("the real problem")
	err := Wrap(Wrap(root, "middle"), "top")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v; want %v", err.RootCause(), root)
	}
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("test").WithDetail("key", "value")
	details := err.Details()
	details["key"] = "mutated"

	if err.Details()["key"] != "value" {
		t.Error("mutating the returned details map must not affect the error")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("test").WithCode(CodeNotFound)

	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode should match the set code")
	}
	if HasCode(err, CodeParseFailed) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Error("HasCode should be false for foreign errors")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode should return CodeUnknown for foreign errors")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("boom").
		WithCode(CodeParseFailed).
		WithOperation("parse_int").
		WithDetail("input", "12x")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("Marshal failed: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}

	if decoded["message"] != "boom" {
		t.Errorf("message = %v; want boom", decoded["message"])
	}
	if decoded["code"] != string(CodeParseFailed) {
		t.Errorf("code = %v; want %v", decoded["code"], CodeParseFailed)
	}
	if decoded["operation"] != "parse_int" {
		t.Errorf("operation = %v; want parse_int", decoded["operation"])
	}
}

func TestCodeHelpers(t *testing.T) {
	if !CodeParseFailed.IsValid() {
		t.Error("CodeParseFailed should be valid")
	}
	if Code("MADE_UP").IsValid() {
		t.Error("unknown codes should not be valid")
	}
	if CodeValidationFailed.Category() != "validation" {
		t.Errorf("Category() = %q; want validation", CodeValidationFailed.Category())
	}
	if CodeDecodingFailed.Category() != "conversion" {
		t.Errorf("Category() = %q; want conversion", CodeDecodingFailed.Category())
	}
	if CodeUnknown.Category() != "generic" {
		t.Errorf("Category() = %q; want generic", CodeUnknown.Category())
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %q; want %q", tt.severity.Level(), got, tt.expected)
		}
	}
}
