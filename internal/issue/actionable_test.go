// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "parse png",
			},
			expected: "failed to parse png",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "parse png",
				Resource:  "./photo.png",
			},
			expected: "failed to parse png: ./photo.png",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "remove chunk",
				Cause:     errors.New("no chunk with requested type: ruSt"),
			},
			expected: "failed to remove chunk: no chunk with requested type: ruSt",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "parse png",
				Resource:  "./photo.png",
				Cause:     errors.New("bad png signature"),
			},
			expected: "failed to parse png: ./photo.png: bad png signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	// Test that Unwrap returns the cause (use errors.Is for proper comparison)
	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap() should return the cause error")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation: "decode message",
		Resource:  "./photo.png",
		Suggestions: []string{
			"List chunks with 'pngstash print ./photo.png'",
			"Check the type code's case",
		},
		Cause: errors.New("no chunk with requested type: ruSt"),
	}

	out := err.Format(false)
	if !strings.Contains(out, "failed to decode message") {
		t.Error("Format() should contain the main message")
	}
	if !strings.Contains(out, "• List chunks") {
		t.Error("Format() should list suggestions with bullets")
	}
	if strings.Contains(out, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}
}

func TestActionableError_FormatVerbose(t *testing.T) {
	inner := errors.New("inner")
	err := &ActionableError{
		Operation: "encode message",
		Cause:     WrapWithOperation(inner, "write file"),
	}

	out := err.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Error("Format(true) should include the error chain")
	}
	if !strings.Contains(out, "inner") {
		t.Error("Format(true) should walk down to the innermost error")
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	with := &ActionableError{Operation: "x", Suggestions: []string{"a"}}
	without := &ActionableError{Operation: "x"}

	if !with.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
	if without.HasSuggestions() {
		t.Error("HasSuggestions() = true, want false")
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("chunk crc mismatch")
	err := NewErrorContext().
		WithOperation("verify png").
		WithResource("./photo.png").
		WithSuggestion("Restore the file from a backup").
		WithSuggestions("Re-download the file", "Check the transfer mode").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with operation set")
	}
	if err.Operation != "verify png" {
		t.Errorf("Operation = %q, want %q", err.Operation, "verify png")
	}
	if err.Resource != "./photo.png" {
		t.Errorf("Resource = %q, want %q", err.Resource, "./photo.png")
	}
	if len(err.Suggestions) != 3 {
		t.Errorf("len(Suggestions) = %d, want 3", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("Build() should wrap the cause")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() = %v, want nil without an operation", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() = %v, want nil without an operation", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "open file")
	if err == nil {
		t.Fatal("WrapWithOperation() returned nil")
	}
	if err.Error() != "failed to open file: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapWithContext(t *testing.T) {
	if got := WrapWithContext(nil, "op", "res"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	err := WrapWithContext(cause, "open file", "./photo.png")
	if err.Error() != "failed to open file: ./photo.png: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
