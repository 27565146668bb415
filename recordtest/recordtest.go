// Package recordtest provides helpers for tests that exercise record
// types: a deterministic clock for computed fields and unwrappers that
// fail the test on the wrong value kind.
package recordtest

import (
	"testing"
	"time"

	"dossier/record"
)

// FixedNow returns a clock pinned to noon UTC, July 1 of the given
// year. Age computations read only the year, so tests and examples
// stay deterministic.
func FixedNow(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC)
	}
}

// MustBuild finalizes the type or fails the test.
func MustBuild(t *testing.T, b *record.Builder) *record.Type {
	t.Helper()
	typ, err := b.Build()
	if err != nil {
		t.Fatalf("build record type: %v", err)
	}
	return typ
}

// MustCall invokes a method or fails the test.
func MustCall(t *testing.T, r *record.Record, name string, args ...record.Value) record.Value {
	t.Helper()
	v, err := r.Call(name, args...)
	if err != nil {
		t.Fatalf("call %s: %v", name, err)
	}
	return v
}

// Text unwraps a string value or fails the test.
func Text(t *testing.T, v record.Value) string {
	t.Helper()
	if v == nil {
		t.Fatalf("expected text value, got nothing")
	}
	s, ok := record.AsText(v)
	if !ok {
		t.Fatalf("expected text value, got %s (%s)", v.Kind(), v.Inspect())
	}
	return s
}

// Number unwraps an integer value or fails the test.
func Number(t *testing.T, v record.Value) int64 {
	t.Helper()
	if v == nil {
		t.Fatalf("expected number value, got nothing")
	}
	n, ok := record.AsNumber(v)
	if !ok {
		t.Fatalf("expected number value, got %s (%s)", v.Kind(), v.Inspect())
	}
	return n
}
