// File: objectx.go
// Title: Generic Object Inspection Functions
// Description: Implements nil-awareness, structural equality, difference
//              reporting, and deep cloning for arbitrary values.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package objectx

import (
	"encoding/json"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/icapri/utilities-sub001/core/errors"
)

// ===============================
// Nil Awareness
// ===============================

// IsNil checks whether value is nil, including typed nils hiding
// inside an interface (nil pointers, slices, maps, channels, funcs)
func IsNil(value interface{}) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// IsNotNil checks whether value is neither nil nor a typed nil
func IsNotNil(value interface{}) bool {
	return !IsNil(value)
}

// ===============================
// Structural Equality
// ===============================

// Equal checks deep structural equality of two values.
// Unexported fields are compared too, so values of types with hidden
// state still come out equal only when that state matches.
func Equal(a, b interface{}) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// Diff returns a human-readable description of the differences between
// two values, or the empty string when they are structurally equal
func Diff(a, b interface{}) string {
	return cmp.Diff(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// ===============================
// Deep Cloning
// ===============================

// DeepCloneJSON deep-copies source into target by round-tripping
// through JSON. Target must be a non-nil pointer. Fields invisible to
// JSON (unexported, json:"-") are not carried over.
func DeepCloneJSON(source, target interface{}) error {
	if IsNil(target) {
		return errors.InvalidInput(errors.ModuleObjectx, "DeepCloneJSON", target, "non-nil pointer target")
	}

	data, err := json.Marshal(source)
	if err != nil {
		return errors.OperationFailed(errors.ModuleObjectx, "DeepCloneJSON", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.OperationFailed(errors.ModuleObjectx, "DeepCloneJSON", err)
	}
	return nil
}
