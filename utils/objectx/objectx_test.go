// File: objectx_test.go
// Title: Unit Tests for Object Inspection
// Description: Tests for nil awareness, structural equality, and deep
//              cloning of the objectx package.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test implementation

package objectx

import (
	"testing"
)

type address struct {
	City string
	Zip  string
}

type person struct {
	Name    string
	Age     int
	Address *address
	Tags    []string
}

func TestIsNil(t *testing.T) {
	var nilPointer *person
	var nilSlice []int
	var nilMap map[string]int
	var nilFunc func()

	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", nilPointer, true},
		{"nil slice", nilSlice, true},
		{"nil map", nilMap, true},
		{"nil func", nilFunc, true},
		{"non-nil pointer", &person{}, false},
		{"empty slice", []int{}, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"false", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.value); got != tt.expected {
				t.Errorf("IsNil(%v) = %v; want %v", tt.value, got, tt.expected)
			}
			if got := IsNotNil(tt.value); got == tt.expected {
				t.Errorf("IsNotNil(%v) = %v; want %v", tt.value, got, !tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := person{Name: "Ana", Age: 30, Address: &address{City: "Bern", Zip: "3000"}, Tags: []string{"admin"}}
	b := person{Name: "Ana", Age: 30, Address: &address{City: "Bern", Zip: "3000"}, Tags: []string{"admin"}}
	c := person{Name: "Ana", Age: 31, Address: &address{City: "Bern", Zip: "3000"}, Tags: []string{"admin"}}

	if !Equal(a, b) {
		t.Error("structurally identical values should be equal")
	}
	if Equal(a, c) {
		t.Error("values differing in one field should not be equal")
	}
	if !Equal(nil, nil) {
		t.Error("two nils should be equal")
	}
	if Equal(a, nil) {
		t.Error("value and nil should not be equal")
	}
}

type counter struct {
	Label string
	hits  int
}

func TestEqualUnexportedFields(t *testing.T) {
	a := counter{Label: "requests", hits: 3}
	b := counter{Label: "requests", hits: 3}
	c := counter{Label: "requests", hits: 4}

	if !Equal(a, b) {
		t.Error("values with matching unexported state should be equal")
	}
	if Equal(a, c) {
		t.Error("values differing only in unexported state should not be equal")
	}
	if diff := Diff(a, c); diff == "" {
		t.Error("Diff should report the unexported difference")
	}
}

func TestDiff(t *testing.T) {
	a := person{Name: "Ana", Age: 30}
	b := person{Name: "Ana", Age: 31}

	if diff := Diff(a, a); diff != "" {
		t.Errorf("Diff of equal values = %q; want empty", diff)
	}
	if diff := Diff(a, b); diff == "" {
		t.Error("Diff of differing values should be non-empty")
	}
}

func TestDeepCloneJSON(t *testing.T) {
	source := person{
		Name:    "Ana",
		Age:     30,
		Address: &address{City: "Bern", Zip: "3000"},
		Tags:    []string{"admin", "ops"},
	}

	var clone person
	if err := DeepCloneJSON(source, &clone); err != nil {
		t.Fatalf("DeepCloneJSON failed: %v", err)
	}
	if !Equal(source, clone) {
		t.Errorf("clone differs from source:\n%s", Diff(source, clone))
	}

	// the clone must not share pointer or slice backing with the source
	clone.Address.City = "Basel"
	clone.Tags[0] = "guest"
	if source.Address.City != "Bern" || source.Tags[0] != "admin" {
		t.Error("mutating the clone must not affect the source")
	}
}

func TestDeepCloneJSONNilTarget(t *testing.T) {
	if err := DeepCloneJSON(person{}, nil); err == nil {
		t.Error("DeepCloneJSON with nil target should fail")
	}

	var nilTarget *person
	if err := DeepCloneJSON(person{}, nilTarget); err == nil {
		t.Error("DeepCloneJSON with typed nil target should fail")
	}
}
