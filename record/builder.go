package record

import (
	"github.com/containerd/errdefs"
	"github.com/pkg/errors"

	"dossier/internal/naming"
)

// Builder declares a record type. Declarations chain; the first
// invalid declaration is remembered and surfaced by Build, so a whole
// type reads as one expression.
//
// Build is the single finalization step: generated field accessors,
// computed accessors, delegated accessors, and ad-hoc methods are
// installed into one unified method table together, and the table is
// sealed with the type. Registering two methods under one name is a
// loud Build error — a later registration can never shadow or drop an
// earlier one.
type Builder struct {
	name      string
	reg       *Registry
	fields    []*Field
	methods   []pendingMethod
	delegates []string
	err       error
	done      bool
}

type pendingMethod struct {
	name string
	fn   MethodFunc
}

// NewBuilder starts declaring a record type that is not attached to
// any registry. Use Registry.Define to register the built type.
func NewBuilder(name string) *Builder {
	b := &Builder{name: name}
	if err := naming.Validate(name); err != nil {
		b.fail(errors.Wrap(err, "record type"))
	}
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Text declares a string field.
func (b *Builder) Text(name string) *Builder {
	return b.declare(&Field{Name: name, Kind: KindText})
}

// TextChecked declares a string field whose setter runs check before
// storing a value.
func (b *Builder) TextChecked(name string, check func(string) error) *Builder {
	f := &Field{Name: name, Kind: KindText}
	if check != nil {
		f.Check = func(v Value) error {
			s, _ := AsText(v) // kind is checked before the hook runs
			return check(s)
		}
	}
	return b.declare(f)
}

// Number declares an integer field.
func (b *Builder) Number(name string) *Builder {
	return b.declare(&Field{Name: name, Kind: KindNumber})
}

// NumberChecked declares an integer field whose setter runs check
// before storing a value.
func (b *Builder) NumberChecked(name string, check func(int64) error) *Builder {
	f := &Field{Name: name, Kind: KindNumber}
	if check != nil {
		f.Check = func(v Value) error {
			n, _ := AsNumber(v)
			return check(n)
		}
	}
	return b.declare(f)
}

// Reference declares a field holding a sub-record of the given type,
// owned by this record (composition, not a shared reference).
func (b *Builder) Reference(name string, elem *Type) *Builder {
	if b.err != nil {
		return b
	}
	if elem == nil {
		b.fail(errors.Wrapf(errdefs.ErrInvalidArgument, "reference field %q needs a record type", name))
		return b
	}
	return b.declare(&Field{Name: name, Kind: KindRecord, Elem: elem})
}

// Computed declares a derived field. Its getter re-derives from the
// backing stored field on every read; its setter back-computes and
// overwrites the backing field. The derived value itself is never
// stored.
func (b *Builder) Computed(c Computed) *Builder {
	if b.err != nil {
		return b
	}
	if c.Backing == "" {
		b.fail(errors.Wrapf(errdefs.ErrInvalidArgument, "computed field %q needs a backing field", c.Name))
		return b
	}
	if c.Derive == nil || c.Revert == nil {
		b.fail(errors.Wrapf(errdefs.ErrInvalidArgument, "computed field %q needs derive and revert functions", c.Name))
		return b
	}
	return b.declare(&Field{
		Name:    c.Name,
		Kind:    c.Kind,
		Backing: c.Backing,
		Derive:  c.Derive,
		Revert:  c.Revert,
	})
}

func (b *Builder) declare(f *Field) *Builder {
	if b.err != nil {
		return b
	}
	if err := naming.Validate(f.Name); err != nil {
		b.fail(errors.Wrap(err, "field"))
		return b
	}
	switch f.Kind {
	case KindText, KindNumber, KindRecord:
	default:
		b.fail(errors.Wrapf(errdefs.ErrInvalidArgument, "field %q has unknown kind %q", f.Name, f.Kind))
		return b
	}
	for _, g := range b.fields {
		if g.Name == f.Name {
			b.fail(errors.Wrapf(errdefs.ErrAlreadyExists, "field %q declared twice", f.Name))
			return b
		}
	}
	b.fields = append(b.fields, f)
	return b
}

// Method registers an ad-hoc method. It lands in the same table as the
// generated accessors when Build runs, so it can neither be lost nor
// shadow an accessor: a name collision fails the build.
func (b *Builder) Method(name string, fn MethodFunc) *Builder {
	if b.err != nil {
		return b
	}
	if err := naming.Validate(name); err != nil {
		b.fail(errors.Wrap(err, "method"))
		return b
	}
	if fn == nil {
		b.fail(errors.Wrapf(errdefs.ErrInvalidArgument, "method %q has no body", name))
		return b
	}
	b.methods = append(b.methods, pendingMethod{name: name, fn: fn})
	return b
}

// Delegate exposes the accessor surface of the sub-record type behind
// the named reference field on this type. Each delegated accessor
// forwards its call to the assigned sub-record; forwarding without an
// assigned sub-record fails with MissingReferenceError.
func (b *Builder) Delegate(field string) *Builder {
	if b.err != nil {
		return b
	}
	b.delegates = append(b.delegates, field)
	return b
}

// Build finalizes the type. Every declared field gets its accessor
// pair, computed and delegated accessors are installed, ad-hoc methods
// are merged, and the whole table is sealed. Collisions and unresolved
// references are errors here, never silent drops. Build succeeds at
// most once per builder.
func (b *Builder) Build() (*Type, error) {
	if b.err != nil {
		return nil, errors.Wrapf(b.err, "build %q", b.name)
	}
	if b.done {
		return nil, errors.Wrapf(errdefs.ErrFailedPrecondition, "record type %q already finalized", b.name)
	}

	t := &Type{
		name:    b.name,
		fields:  b.fields,
		byName:  make(map[string]*Field, len(b.fields)),
		stored:  map[string]*Field{},
		methods: map[string]*method{},
	}
	for _, f := range b.fields {
		t.byName[f.Name] = f
		if !f.Computed() {
			t.stored[f.Name] = f
		}
	}

	for _, f := range b.fields {
		if f.Computed() {
			backing, ok := t.stored[f.Backing]
			if !ok {
				return nil, errors.Wrapf(errdefs.ErrNotFound,
					"build %q: computed field %q: backing field %q", b.name, f.Name, f.Backing)
			}
			if backing.Kind == KindRecord {
				return nil, errors.Wrapf(errdefs.ErrInvalidArgument,
					"build %q: computed field %q: backing field %q is a reference", b.name, f.Name, f.Backing)
			}
		}
	}

	for _, f := range b.fields {
		var getter, setter *method
		if f.Computed() {
			getter, setter = computedAccessors(f)
		} else {
			getter, setter = storedAccessors(f)
		}
		if err := t.install(getter); err != nil {
			return nil, errors.Wrapf(err, "build %q", b.name)
		}
		if err := t.install(setter); err != nil {
			return nil, errors.Wrapf(err, "build %q", b.name)
		}
	}

	for _, field := range b.delegates {
		if err := installDelegates(t, field); err != nil {
			return nil, errors.Wrapf(err, "build %q", b.name)
		}
	}

	for _, pm := range b.methods {
		m := &method{name: pm.name, fn: pm.fn, role: roleMethod}
		if err := t.install(m); err != nil {
			return nil, errors.Wrapf(err, "build %q", b.name)
		}
	}

	b.done = true
	if b.reg != nil {
		if err := b.reg.register(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// storedAccessors generates the getter/setter pair of a plain or
// reference field. The closures are built once here; dispatch is a map
// hit plus a call, no reflection.
func storedAccessors(f *Field) (*method, *method) {
	getName := naming.Getter(f.Name)
	setName := naming.Setter(f.Name)
	getter := &method{
		name:  getName,
		role:  roleGetter,
		field: f.Name,
		fn: func(r *Record, args ...Value) (Value, error) {
			if len(args) != 0 {
				return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "%s: expected 0 arguments, got %d", getName, len(args))
			}
			return r.get(f.Name)
		},
	}
	setter := &method{
		name:  setName,
		role:  roleSetter,
		field: f.Name,
		fn: func(r *Record, args ...Value) (Value, error) {
			if len(args) != 1 {
				return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "%s: expected 1 argument, got %d", setName, len(args))
			}
			if err := r.set(f.Name, args[0]); err != nil {
				return nil, err
			}
			return r, nil
		},
	}
	return getter, setter
}

// computedAccessors generates the accessor pair of a computed field.
// Reads derive from the backing field every time; writes revert into
// it. Nothing is cached.
func computedAccessors(f *Field) (*method, *method) {
	getName := naming.Getter(f.Name)
	setName := naming.Setter(f.Name)
	getter := &method{
		name:  getName,
		role:  roleGetter,
		field: f.Name,
		fn: func(r *Record, args ...Value) (Value, error) {
			if len(args) != 0 {
				return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "%s: expected 0 arguments, got %d", getName, len(args))
			}
			backing, err := r.get(f.Backing)
			if err != nil {
				return nil, err
			}
			v, err := f.Derive(backing)
			if err != nil {
				return nil, errors.Wrapf(err, "derive %q", f.Name)
			}
			if err := checkKind(f.Kind, v); err != nil {
				return nil, errors.Wrapf(err, "derive %q", f.Name)
			}
			return v, nil
		},
	}
	setter := &method{
		name:  setName,
		role:  roleSetter,
		field: f.Name,
		fn: func(r *Record, args ...Value) (Value, error) {
			if len(args) != 1 {
				return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "%s: expected 1 argument, got %d", setName, len(args))
			}
			if err := checkKind(f.Kind, args[0]); err != nil {
				return nil, errors.Wrapf(err, "field %q", f.Name)
			}
			backing, err := f.Revert(args[0])
			if err != nil {
				return nil, errors.Wrapf(err, "revert %q", f.Name)
			}
			if err := r.set(f.Backing, backing); err != nil {
				return nil, err
			}
			return r, nil
		},
	}
	return getter, setter
}

// installDelegates forwards the accessor surface of the sub-record
// type behind field onto t. The forwarded set includes the sub-type's
// computed and delegated accessors, so delegation composes.
func installDelegates(t *Type, field string) error {
	f, ok := t.stored[field]
	if !ok {
		return errors.Wrapf(errdefs.ErrNotFound, "delegate %q: no such field", field)
	}
	if f.Kind != KindRecord {
		return errors.Wrapf(errdefs.ErrInvalidArgument, "delegate %q: not a reference field", field)
	}
	for _, sub := range f.Elem.accessors() {
		name := sub.name
		fwd := &method{
			name:  name,
			role:  sub.role,
			field: field,
			fn: func(r *Record, args ...Value) (Value, error) {
				v, err := r.get(field)
				if err != nil {
					return nil, err
				}
				rec, _ := AsRecord(v)
				if rec == nil {
					return nil, &MissingReferenceError{Type: t.name, Field: field}
				}
				return rec.Call(name, args...)
			},
		}
		if err := t.install(fwd); err != nil {
			return errors.Wrapf(err, "delegate %q", field)
		}
	}
	return nil
}
