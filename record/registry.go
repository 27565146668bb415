package record

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
)

// Registry holds record types by name. Types built through Define are
// registered as part of Build, so a registered type is always a
// finalized one. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]*Type
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry events. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		types:  map[string]*Type{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define starts declaring a record type that Build will register here.
func (rg *Registry) Define(name string) *Builder {
	b := NewBuilder(name)
	b.reg = rg
	return b
}

// Lookup resolves a registered type by name.
func (rg *Registry) Lookup(name string) (*Type, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	t, ok := rg.types[name]
	if !ok {
		rg.logger.Debug("record type lookup missed", "type", name)
		return nil, errors.Wrapf(errdefs.ErrNotFound, "record type %q", name)
	}
	return t, nil
}

// TypeNames lists the registered type names, sorted.
func (rg *Registry) TypeNames() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	names := make([]string, 0, len(rg.types))
	for name := range rg.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (rg *Registry) register(t *Type) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if _, ok := rg.types[t.name]; ok {
		return errors.Wrapf(errdefs.ErrAlreadyExists, "record type %q", t.name)
	}
	rg.types[t.name] = t
	rg.logger.Debug("record type defined",
		"type", t.name,
		"fields", len(t.fields),
		"methods", len(t.methods))
	return nil
}
