package record

import (
	"fmt"

	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
)

// MethodNotFoundError reports a Call against a name that is absent
// from a record type's method table. The table is sealed when the type
// is built, so the error is definitive: no later registration can make
// the name reachable.
type MethodNotFoundError struct {
	Type   string
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("record type %q has no method %q", e.Type, e.Method)
}

// Unwrap classifies the error under errdefs.ErrNotFound.
func (e *MethodNotFoundError) Unwrap() error { return errdefs.ErrNotFound }

// MissingReferenceError reports a delegated accessor call routed
// through a reference field that has no sub-record assigned. Delegation
// fails fast; it never initializes the missing sub-record.
type MissingReferenceError struct {
	Type  string
	Field string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("record type %q has no %q record assigned", e.Type, e.Field)
}

// Unwrap classifies the error under errdefs.ErrFailedPrecondition.
func (e *MissingReferenceError) Unwrap() error { return errdefs.ErrFailedPrecondition }

// IsMethodNotFound reports whether err is a MethodNotFoundError.
func IsMethodNotFound(err error) bool {
	var e *MethodNotFoundError
	return errors.As(err, &e)
}

// IsMissingReference reports whether err is a MissingReferenceError.
func IsMissingReference(err error) bool {
	var e *MissingReferenceError
	return errors.As(err, &e)
}

func checkKind(want Kind, v Value) error {
	if v == nil {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "expected %s, got nothing", want)
	}
	if v.Kind() != want {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "expected %s, got %s", want, v.Kind())
	}
	return nil
}
