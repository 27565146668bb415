package record

import (
	"github.com/containerd/errdefs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Record is one mutable instance of a record type. It is a reference
// object: every copy of the pointer aliases the same storage, so a
// setter call is observable through every handle to the instance,
// while independently minted instances never share state.
//
// Field storage is private. Reads and writes go through the type's
// method table via Call; that table is the record's whole public
// surface.
type Record struct {
	rtype *Type
	id    uuid.UUID
	store map[string]Value

	// owner is the container this record is composed into, if any.
	// A record belongs to at most one container at a time.
	owner *Record
}

// Kind makes records usable as field values (composition).
func (*Record) Kind() Kind { return KindRecord }

// Type returns the record's finalized type, nil for an unset
// reference.
func (r *Record) Type() *Type {
	if r == nil {
		return nil
	}
	return r.rtype
}

// ID returns the instance identity handle. Aliases of one instance
// share it; Clone mints a fresh one.
func (r *Record) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// SameInstance reports whether o aliases this record.
func (r *Record) SameInstance(o *Record) bool {
	return r != nil && r == o
}

// Call invokes a method from the type's sealed table by name. Unknown
// names fail with MethodNotFoundError no matter what was attempted
// during declaration.
func (r *Record) Call(name string, args ...Value) (Value, error) {
	if r == nil {
		return nil, errors.Wrapf(errdefs.ErrFailedPrecondition, "call %q on an unset record reference", name)
	}
	m, ok := r.rtype.method(name)
	if !ok {
		return nil, &MethodNotFoundError{Type: r.rtype.name, Method: name}
	}
	return m.fn(r, args...)
}

// get reads a stored field.
func (r *Record) get(field string) (Value, error) {
	v, ok := r.store[field]
	if !ok {
		return nil, errors.Wrapf(errdefs.ErrNotFound, "record type %q has no stored field %q", r.rtype.name, field)
	}
	return v, nil
}

// set writes a stored field after kind, sub-record type, ownership,
// and check-hook validation.
func (r *Record) set(field string, v Value) error {
	f, ok := r.rtype.stored[field]
	if !ok {
		if g, found := r.rtype.byName[field]; found && g.Computed() {
			return errors.Wrapf(errdefs.ErrInvalidArgument, "field %q is computed; assign through its setter", field)
		}
		return errors.Wrapf(errdefs.ErrNotFound, "record type %q has no stored field %q", r.rtype.name, field)
	}
	if err := checkKind(f.Kind, v); err != nil {
		return errors.Wrapf(err, "field %q", field)
	}
	if f.Kind == KindRecord {
		sub, _ := AsRecord(v)
		if sub != nil {
			if sub.rtype != f.Elem {
				return errors.Wrapf(errdefs.ErrInvalidArgument, "field %q holds %q records, got %q", field, f.Elem.name, sub.rtype.name)
			}
			if sub.owner != nil && sub.owner != r {
				return errors.Wrapf(errdefs.ErrConflict, "field %q: %q record is already composed into another record", field, sub.rtype.name)
			}
		}
	}
	if f.Check != nil {
		if err := f.Check(v); err != nil {
			return errors.Wrapf(err, "field %q", field)
		}
	}
	if f.Kind == KindRecord {
		if old, _ := AsRecord(r.store[field]); old != nil {
			old.owner = nil
		}
		if sub, _ := AsRecord(v); sub != nil {
			sub.owner = r
		}
	}
	r.store[field] = v
	return nil
}

// release clears the ownership this record's reference fields claimed
// over their sub-records.
func (r *Record) release() {
	for _, v := range r.store {
		if sub, _ := AsRecord(v); sub != nil && sub.owner == r {
			sub.owner = nil
		}
	}
}

// Clone deep-copies the record: fresh identity, fresh storage, and
// recursively cloned sub-records, so the copy and the original evolve
// independently. This is the value-copy counterpart to the aliasing
// reference semantics of the pointer itself.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := r.rtype.mint()
	for name, v := range r.store {
		switch val := v.(type) {
		case *Text:
			c.store[name] = &Text{Value: val.Value}
		case *Number:
			c.store[name] = &Number{Value: val.Value}
		case *Record:
			sub := val.Clone()
			if sub != nil {
				sub.owner = c
			}
			c.store[name] = sub
		}
	}
	r.rtype.population.Add(1)
	return c
}

// SameValueAs reports field-by-field equality with o, ignoring
// instance identity. Sub-records compare recursively. Only stored
// fields take part: computed fields derive from them.
func (r *Record) SameValueAs(o *Record) bool {
	if r == nil || o == nil {
		return r == nil && o == nil
	}
	if r.rtype != o.rtype {
		return false
	}
	for name, v := range r.store {
		if !valueEqual(v, o.store[name]) {
			return false
		}
	}
	return true
}
