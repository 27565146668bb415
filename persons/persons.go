// Package persons assembles the classic person/address model out of
// record types: a person whose age is computed from the year of birth,
// an address, and a person composed with a postal address that answers
// address questions itself. Typed wrappers route every read and write
// through the record method tables.
package persons

import (
	"log/slog"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/pkg/errors"

	"dossier/record"
)

// Record type names registered by NewModel.
const (
	PersonType            = "person"
	AddressType           = "address"
	PersonWithAddressType = "personWithAddress"
)

// Model holds the registry and the three record types.
type Model struct {
	Registry          *record.Registry
	Person            *record.Type
	Address           *record.Type
	PersonWithAddress *record.Type

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithNow injects the clock behind the age field. The default is
// time.Now; tests pin it for deterministic ages.
func WithNow(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger forwards a logger to the model's registry.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// NewModel defines the address, person, and personWithAddress types in
// a fresh registry. personWithAddress shares the person field surface
// and delegates the address accessors to its composed postalAddress.
func NewModel(opts ...Option) (*Model, error) {
	m := &Model{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	var regOpts []record.Option
	if m.logger != nil {
		regOpts = append(regOpts, record.WithLogger(m.logger))
	}
	m.Registry = record.NewRegistry(regOpts...)

	address, err := m.Registry.Define(AddressType).
		Text("streetName").
		Text("cityName").
		Text("postalCode").
		Text("countryName").
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "define address")
	}
	m.Address = address

	person, err := personFields(m.Registry.Define(PersonType), m.now).Build()
	if err != nil {
		return nil, errors.Wrap(err, "define person")
	}
	m.Person = person

	composed, err := personFields(m.Registry.Define(PersonWithAddressType), m.now).
		Reference("postalAddress", address).
		Delegate("postalAddress").
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "define personWithAddress")
	}
	m.PersonWithAddress = composed

	return m, nil
}

// MustModel is NewModel that panics on error, for wiring in mains and
// examples where the model is statically known to be well-formed.
func MustModel(opts ...Option) *Model {
	m, err := NewModel(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// personFields declares the field surface shared by person and
// personWithAddress.
func personFields(b *record.Builder, now func() time.Time) *record.Builder {
	return b.
		Text("givenName").
		Text("familyName").
		Text("emailAddress").
		Number("yearOfBirth").
		Computed(ageOf("yearOfBirth", now)).
		Method("fullName", fullName)
}

// ageOf binds an age field to a year-of-birth field. Reading derives
// the age from the current year; assigning an age overwrites the year
// of birth. Only the backing field is ever stored, so the two can
// never disagree.
func ageOf(backing string, now func() time.Time) record.Computed {
	return record.Computed{
		Name:    "age",
		Kind:    record.KindNumber,
		Backing: backing,
		Derive: func(v record.Value) (record.Value, error) {
			yob, _ := record.AsNumber(v)
			return record.NumberOf(int64(now().Year()) - yob), nil
		},
		Revert: func(v record.Value) (record.Value, error) {
			age, _ := record.AsNumber(v)
			return record.NumberOf(int64(now().Year()) - age), nil
		},
	}
}

func fullName(r *record.Record, args ...record.Value) (record.Value, error) {
	if len(args) != 0 {
		return nil, errors.Wrapf(errdefs.ErrInvalidArgument, "fullName: expected 0 arguments, got %d", len(args))
	}
	given, err := callText(r, "getGivenName")
	if err != nil {
		return nil, err
	}
	family, err := callText(r, "getFamilyName")
	if err != nil {
		return nil, err
	}
	return record.TextOf(strings.TrimSpace(given + " " + family)), nil
}
