// Package record provides record types: named, fixed-shape aggregates
// of typed fields whose instances are read and mutated only through a
// published accessor interface.
//
// A type is declared with a Builder, which unifies generated field
// accessors, computed fields, delegated (composed) accessors, and
// ad-hoc methods into one method table in a single finalization step.
// Instances minted from a finalized type are mutable reference
// objects: a setter call is observable through every handle to the
// same instance.
package record

import "strconv"

// Kind identifies the semantic type of a field or value.
type Kind string

const (
	KindText   Kind = "TEXT"
	KindNumber Kind = "NUMBER"
	KindRecord Kind = "RECORD"
)

// Value is a field value. Text and Number are immutable; *Record is
// the mutable reference object of the package and doubles as the value
// of composed sub-record fields.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Text is a string field value.
type Text struct{ Value string }

func (*Text) Kind() Kind        { return KindText }
func (t *Text) Inspect() string { return strconv.Quote(t.Value) }

// Number is an integer field value.
type Number struct{ Value int64 }

func (*Number) Kind() Kind        { return KindNumber }
func (n *Number) Inspect() string { return strconv.FormatInt(n.Value, 10) }

// TextOf wraps a string.
func TextOf(s string) *Text { return &Text{Value: s} }

// NumberOf wraps an integer.
func NumberOf(v int64) *Number { return &Number{Value: v} }

// AsText unwraps v when it is a *Text.
func AsText(v Value) (string, bool) {
	t, ok := v.(*Text)
	if !ok {
		return "", false
	}
	return t.Value, true
}

// AsNumber unwraps v when it is a *Number.
func AsNumber(v Value) (int64, bool) {
	n, ok := v.(*Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

// AsRecord unwraps v when it has record kind. The returned *Record is
// nil for an unset reference, so callers must check it before use.
func AsRecord(v Value) (*Record, bool) {
	r, ok := v.(*Record)
	if !ok {
		return nil, false
	}
	return r, true
}

// ZeroOf returns the default-empty value of a kind: "" for text, 0 for
// number, and an unset reference for record kinds. Freshly minted
// instances hold these until a setter runs.
func ZeroOf(k Kind) Value {
	switch k {
	case KindText:
		return &Text{}
	case KindNumber:
		return &Number{}
	case KindRecord:
		return (*Record)(nil)
	}
	return nil
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case *Text:
		bv, ok := b.(*Text)
		return ok && av.Value == bv.Value
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Record:
		bv, ok := b.(*Record)
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			return av == bv
		}
		return av.SameValueAs(bv)
	}
	return false
}
