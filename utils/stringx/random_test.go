// File: random_test.go
// Title: Unit Tests for Random String Generation
// Description: Tests for charset-based random generation and UUID
//              identifiers, verifying lengths, charset membership, and
//              degenerate inputs.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test implementation

package stringx

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Run("length and charset membership", func(t *testing.T) {
		got, err := RandomString(32, Letters)
		if err != nil {
			t.Fatalf("RandomString failed: %v", err)
		}
		if len(got) != 32 {
			t.Errorf("len = %d; want 32", len(got))
		}
		for _, c := range got {
			if !strings.ContainsRune(Letters, c) {
				t.Errorf("character %q not in charset", c)
			}
		}
	})

	t.Run("zero length", func(t *testing.T) {
		got, err := RandomString(0, Letters)
		if err != nil || got != "" {
			t.Errorf("RandomString(0) = (%q, %v); want (\"\", nil)", got, err)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		got, err := RandomString(-3, Letters)
		if err != nil || got != "" {
			t.Errorf("RandomString(-3) = (%q, %v); want (\"\", nil)", got, err)
		}
	})

	t.Run("empty charset defaults to alphanumeric", func(t *testing.T) {
		got, err := RandomString(16, "")
		if err != nil {
			t.Fatalf("RandomString failed: %v", err)
		}
		for _, c := range got {
			if !strings.ContainsRune(Alphanumeric, c) {
				t.Errorf("character %q not alphanumeric", c)
			}
		}
	})
}

func TestRandomHex(t *testing.T) {
	got, err := RandomHex(20)
	if err != nil {
		t.Fatalf("RandomHex failed: %v", err)
	}
	if len(got) != 20 {
		t.Errorf("len = %d; want 20", len(got))
	}
	for _, c := range got {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("character %q not hex", c)
		}
	}
}

func TestRandomURLSafe(t *testing.T) {
	got, err := RandomURLSafe(24)
	if err != nil {
		t.Fatalf("RandomURLSafe failed: %v", err)
	}
	for _, c := range got {
		if !strings.ContainsRune(URLSafe, c) {
			t.Errorf("character %q not URL-safe", c)
		}
	}
}

func TestRandomUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := RandomUUID()
		if err != nil {
			t.Fatalf("RandomUUID failed: %v", err)
		}
		if len(id) != 36 {
			t.Errorf("len = %d; want 36", len(id))
		}
		if strings.Count(id, "-") != 4 {
			t.Errorf("uuid %q should contain 4 hyphens", id)
		}
		if seen[id] {
			t.Errorf("uuid %q generated twice", id)
		}
		seen[id] = true
	}
}
