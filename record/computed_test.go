package record

import (
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
)

// ageType binds age to yearOfBirth against a fixed current year, the
// way a calendar-backed model would against a real clock.
func ageType(t *testing.T, currentYear int64) *Type {
	t.Helper()
	return mustBuild(t, NewBuilder("person").
		Number("yearOfBirth").
		Computed(Computed{
			Name:    "age",
			Kind:    KindNumber,
			Backing: "yearOfBirth",
			Derive: func(v Value) (Value, error) {
				yob, _ := AsNumber(v)
				return NumberOf(currentYear - yob), nil
			},
			Revert: func(v Value) (Value, error) {
				age, _ := AsNumber(v)
				return NumberOf(currentYear - age), nil
			},
		}))
}

func TestComputedDerivesOnRead(t *testing.T) {
	typ := ageType(t, 2026)
	r := typ.New()

	mustCall(t, r, "setYearOfBirth", NumberOf(1975))
	if got, _ := AsNumber(mustCall(t, r, "getAge")); got != 51 {
		t.Errorf("age: got %d, want 51", got)
	}
}

func TestComputedRevertsOnWrite(t *testing.T) {
	typ := ageType(t, 2026)
	r := typ.New()

	mustCall(t, r, "setAge", NumberOf(40))
	if got, _ := AsNumber(mustCall(t, r, "getYearOfBirth")); got != 1986 {
		t.Errorf("yearOfBirth: got %d, want 1986", got)
	}
	if got, _ := AsNumber(mustCall(t, r, "getAge")); got != 40 {
		t.Errorf("age after setAge: got %d, want 40", got)
	}
}

func TestComputedFieldIsNeverStored(t *testing.T) {
	typ := ageType(t, 2026)
	r := typ.New()

	mustCall(t, r, "setYearOfBirth", NumberOf(1975))
	mustCall(t, r, "setAge", NumberOf(20))
	if _, ok := r.store["age"]; ok {
		t.Fatalf("computed field landed in the store")
	}
	if _, ok := r.store["yearOfBirth"]; !ok {
		t.Fatalf("backing field missing from the store")
	}
}

func TestComputedNeverStale(t *testing.T) {
	typ := ageType(t, 2026)
	r := typ.New()

	mustCall(t, r, "setYearOfBirth", NumberOf(1975))
	if got, _ := AsNumber(mustCall(t, r, "getAge")); got != 51 {
		t.Fatalf("age: got %d, want 51", got)
	}

	// Overwriting the backing field must be reflected on the very
	// next read; there is no cache to invalidate.
	mustCall(t, r, "setYearOfBirth", NumberOf(2000))
	if got, _ := AsNumber(mustCall(t, r, "getAge")); got != 26 {
		t.Errorf("age after backing change: got %d, want 26", got)
	}
}

func TestComputedDeriveError(t *testing.T) {
	typ := mustBuild(t, NewBuilder("person").
		Number("yearOfBirth").
		Computed(Computed{
			Name:    "age",
			Kind:    KindNumber,
			Backing: "yearOfBirth",
			Derive: func(v Value) (Value, error) {
				yob, _ := AsNumber(v)
				if yob == 0 {
					return nil, errors.New("yearOfBirth not assigned")
				}
				return NumberOf(2026 - yob), nil
			},
			Revert: func(v Value) (Value, error) {
				age, _ := AsNumber(v)
				return NumberOf(2026 - age), nil
			},
		}))
	r := typ.New()

	_, err := r.Call("getAge")
	if err == nil {
		t.Fatalf("expected the derive error to surface")
	}
	if !strings.Contains(err.Error(), `derive "age"`) {
		t.Errorf("message: got %q", err.Error())
	}

	mustCall(t, r, "setYearOfBirth", NumberOf(1975))
	if got, _ := AsNumber(mustCall(t, r, "getAge")); got != 51 {
		t.Errorf("age after assignment: got %d, want 51", got)
	}
}

func TestComputedRevertError(t *testing.T) {
	typ := mustBuild(t, NewBuilder("person").
		Number("yearOfBirth").
		Computed(Computed{
			Name:    "age",
			Kind:    KindNumber,
			Backing: "yearOfBirth",
			Derive: func(v Value) (Value, error) {
				yob, _ := AsNumber(v)
				return NumberOf(2026 - yob), nil
			},
			Revert: func(v Value) (Value, error) {
				age, _ := AsNumber(v)
				if age < 0 {
					return nil, errors.New("age must not be negative")
				}
				return NumberOf(2026 - age), nil
			},
		}))
	r := typ.New()
	mustCall(t, r, "setYearOfBirth", NumberOf(1975))

	_, err := r.Call("setAge", NumberOf(-3))
	if err == nil {
		t.Fatalf("expected the revert error to surface")
	}
	if !strings.Contains(err.Error(), `revert "age"`) {
		t.Errorf("message: got %q", err.Error())
	}
	// A failed write leaves the backing field untouched.
	if got, _ := AsNumber(mustCall(t, r, "getYearOfBirth")); got != 1975 {
		t.Errorf("yearOfBirth after failed setAge: got %d, want 1975", got)
	}
}

func TestComputedKindEnforced(t *testing.T) {
	typ := ageType(t, 2026)
	r := typ.New()

	_, err := r.Call("setAge", TextOf("forty"))
	if err == nil || !errdefs.IsInvalidArgument(err) {
		t.Errorf("text assigned to a number field: got %v", err)
	}

	badDerive := mustBuild(t, NewBuilder("person").
		Number("yearOfBirth").
		Computed(Computed{
			Name:    "age",
			Kind:    KindNumber,
			Backing: "yearOfBirth",
			Derive: func(v Value) (Value, error) {
				return TextOf("not a number"), nil
			},
			Revert: func(v Value) (Value, error) {
				return NumberOf(0), nil
			},
		}))
	_, err = badDerive.New().Call("getAge")
	if err == nil || !errdefs.IsInvalidArgument(err) {
		t.Errorf("derive producing the wrong kind: got %v", err)
	}
}

func TestDirectAssignmentOfComputedField(t *testing.T) {
	typ := ageType(t, 2026)
	r := typ.New()

	// The store has no "age" slot, so even internal writes are
	// refused; the setter is the only write path.
	err := r.set("age", NumberOf(10))
	if err == nil {
		t.Fatalf("expected direct assignment to fail")
	}
	if !errdefs.IsInvalidArgument(err) {
		t.Errorf("got %v, want invalid argument", err)
	}
}
