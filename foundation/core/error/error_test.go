// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, details and code lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Lookups through fmt-wrapped errors

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("StackTrace()[0].Function = %q, want caller TestNew", trace[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("bad digit").WithCode(CodeMalformedDateTime),
			message: "conversion failed",
			wantMsg: "conversion failed: bad digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is(wrapped, original) should be true")
			}

			if mdwErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != mdwErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), mdwErr.Code())
				}
				if wrapped.Severity() != mdwErr.Severity() {
					t.Errorf("Severity() = %v, want %v", wrapped.Severity(), mdwErr.Severity())
				}
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	err := New("host failed").WithCode(CodeHostNormalization)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}

	explicit := New("host failed").WithSeverity(SeverityCritical).WithCode(CodeHostNormalization)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", explicit.Severity(), SeverityCritical)
	}

	medium := New("host failed").WithSeverity(SeverityMedium).WithCode(CodeInternal)
	if medium.Severity() != SeverityMedium {
		t.Errorf("explicit medium Severity() = %v, want %v", medium.Severity(), SeverityMedium)
	}

	low := New("bad digit").WithCode(CodeMalformedDateTime)
	rewrapped := Wrap(low, "conversion broke").WithCode(CodeInternal)
	if rewrapped.Severity() != SeverityCritical {
		t.Errorf("Wrap(low).WithCode(CodeInternal).Severity() = %v, want %v", rewrapped.Severity(), SeverityCritical)
	}

	pinned := Wrap(New("bad digit").WithSeverity(SeverityLow), "conversion broke").WithCode(CodeInternal)
	if pinned.Severity() != SeverityLow {
		t.Errorf("Wrap(explicit low).WithCode(CodeInternal).Severity() = %v, want %v", pinned.Severity(), SeverityLow)
	}
}

func TestDetails(t *testing.T) {
	err := New("expected digit").
		WithDetail("position", 5).
		WithDetail("expected", "digit").
		WithOperation("timex.Parse")

	if v, ok := err.Detail("position"); !ok || v != 5 {
		t.Errorf("Detail(position) = %v, %v, want 5, true", v, ok)
	}

	details := err.Details()
	details["position"] = 99
	if v, _ := err.Detail("position"); v != 5 {
		t.Error("Details() should return a copy")
	}

	if err.Operation() != "timex.Parse" {
		t.Errorf("Operation() = %q, want timex.Parse", err.Operation())
	}

	s := err.String()
	for _, want := range []string{"Error: expected digit", "Operation: timex.Parse", "expected=digit, position=5"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	base := New("empty input").WithCode(CodeNullInput)
	wrapped := fmt.Errorf("parse %q: %w", "", base)

	if !HasCode(wrapped, CodeNullInput) {
		t.Error("HasCode() should see through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, CodeMalformedDateTime) {
		t.Error("HasCode() matched the wrong code")
	}
	if GetCode(wrapped) != CodeNullInput {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), CodeNullInput)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
	if HasCode(nil, CodeNullInput) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("out of range"), "normalization failed").
		WithCode(CodeHostNormalization).
		WithOperation("timex.Normalize").
		WithDetail("year", 2100)

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}

	if decoded["code"] != "HOST_NORMALIZATION" {
		t.Errorf("code = %v, want HOST_NORMALIZATION", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["cause"] != "out of range" {
		t.Errorf("cause = %v, want out of range", decoded["cause"])
	}
	if decoded["operation"] != "timex.Normalize" {
		t.Errorf("operation = %v, want timex.Normalize", decoded["operation"])
	}
}
