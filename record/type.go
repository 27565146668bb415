package record

import (
	"sort"
	"sync/atomic"

	"github.com/containerd/errdefs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MethodFunc is the signature shared by every entry in a record type's
// method table: generated accessors, computed accessors, delegated
// accessors, and ad-hoc methods alike.
type MethodFunc func(r *Record, args ...Value) (Value, error)

type methodRole int

const (
	roleMethod methodRole = iota
	roleGetter
	roleSetter
)

type method struct {
	name  string
	fn    MethodFunc
	role  methodRole
	field string // field the accessor touches on this type; "" for ad-hoc methods
}

// Type is a finalized record type: a name, a fixed shape of typed
// fields, and one sealed method table. Instances are minted with New
// or NewWith. There is no way to attach a method to a finalized type;
// late registrations are impossible rather than silently lost.
type Type struct {
	name        string
	fields      []*Field
	byName      map[string]*Field
	stored      map[string]*Field
	methods     map[string]*method
	methodOrder []string
	population  atomic.Int64
}

// Name returns the record type's name.
func (t *Type) Name() string { return t.name }

// Fields returns the declared fields in declaration order, computed
// fields included.
func (t *Type) Fields() []Field {
	out := make([]Field, 0, len(t.fields))
	for _, f := range t.fields {
		out = append(out, *f)
	}
	return out
}

// Methods returns every name in the method table, sorted.
func (t *Type) Methods() []string {
	out := make([]string, len(t.methodOrder))
	copy(out, t.methodOrder)
	sort.Strings(out)
	return out
}

// HasMethod reports whether name is in the method table.
func (t *Type) HasMethod(name string) bool {
	_, ok := t.methods[name]
	return ok
}

// Population returns how many instances have been minted from this
// type, clones included.
func (t *Type) Population() int64 { return t.population.Load() }

// New mints an instance with every stored field default-empty.
func (t *Type) New() *Record {
	r := t.mint()
	t.population.Add(1)
	return r
}

// NewWith mints an instance and assigns the given stored fields in one
// step, running the same checks as the generated setters. Computed
// fields cannot be assigned here; set them through their setter.
func (t *Type) NewWith(values map[string]Value) (*Record, error) {
	r := t.mint()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.set(name, values[name]); err != nil {
			// The mint is discarded; free any sub-records it already
			// claimed so they stay composable elsewhere.
			r.release()
			return nil, errors.Wrapf(err, "new %q", t.name)
		}
	}
	t.population.Add(1)
	return r, nil
}

func (t *Type) mint() *Record {
	r := &Record{
		rtype: t,
		id:    uuid.New(),
		store: make(map[string]Value, len(t.stored)),
	}
	for name, f := range t.stored {
		r.store[name] = ZeroOf(f.Kind)
	}
	return r
}

func (t *Type) method(name string) (*method, bool) {
	m, ok := t.methods[name]
	return m, ok
}

// install adds a method during Build. Collisions are fatal: the table
// is unified on purpose, nothing may shadow anything.
func (t *Type) install(m *method) error {
	if _, ok := t.methods[m.name]; ok {
		return errors.Wrapf(errdefs.ErrAlreadyExists, "method %q", m.name)
	}
	t.methods[m.name] = m
	t.methodOrder = append(t.methodOrder, m.name)
	return nil
}

// accessors yields getter and setter methods in install order, which
// follows field declaration order. Ad-hoc methods are excluded: only
// the accessor surface is delegatable.
func (t *Type) accessors() []*method {
	out := make([]*method, 0, len(t.methodOrder))
	for _, name := range t.methodOrder {
		m := t.methods[name]
		if m.role == roleGetter || m.role == roleSetter {
			out = append(out, m)
		}
	}
	return out
}
