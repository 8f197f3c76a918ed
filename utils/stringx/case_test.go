// File: case_test.go
// Title: Unit Tests for Case Conversion Utilities
// Description: Tests for the naming-convention conversions and the
//              capitalization helpers.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"pascal case", "MyVariableName", "my_variable_name"},
		{"camel case", "myVariableName", "my_variable_name"},
		{"kebab case", "my-variable-name", "my_variable_name"},
		{"spaces", "my variable name", "my_variable_name"},
		{"already snake", "my_variable_name", "my_variable_name"},
		{"empty", "", ""},
		{"single word", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.expected {
				t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"pascal case", "MyVariableName", "my-variable-name"},
		{"snake case", "my_variable_name", "my-variable-name"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToKebabCase(tt.input); got != tt.expected {
				t.Errorf("ToKebabCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"snake case", "my_variable_name", "myVariableName"},
		{"kebab case", "my-variable-name", "myVariableName"},
		{"pascal case", "MyVariableName", "myVariableName"},
		{"spaces", "my variable name", "myVariableName"},
		{"empty", "", ""},
		{"single word", "Hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCamelCase(tt.input); got != tt.expected {
				t.Errorf("ToCamelCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"snake case", "my_variable_name", "MyVariableName"},
		{"camel case", "myVariableName", "MyVariableName"},
		{"kebab case", "my-variable-name", "MyVariableName"},
		{"empty", "", ""},
		{"single word", "hello", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPascalCase(tt.input); got != tt.expected {
				t.Errorf("ToPascalCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("hello"); got != "Hello" {
		t.Errorf("Capitalize = %q; want Hello", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Capitalize(\"\") = %q; want empty", got)
	}
	if got := Uncapitalize("Hello"); got != "hello" {
		t.Errorf("Uncapitalize = %q; want hello", got)
	}
}

func TestSwapCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed", "Hello World", "hELLO wORLD"},
		{"digits untouched", "abc123DEF", "ABC123def"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SwapCase(tt.input); got != tt.expected {
				t.Errorf("SwapCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSwapCaseInvolution(t *testing.T) {
	inputs := []string{"Hello World", "abcDEF", "123"}
	for _, s := range inputs {
		if got := SwapCase(SwapCase(s)); got != s {
			t.Errorf("SwapCase(SwapCase(%q)) = %q; want original", s, got)
		}
	}
}
