package persons

import "dossier/record"

// personAccess is the person accessor surface over an underlying
// record. Person and PersonWithAddress both embed it; every method
// routes through the record's method table rather than touching the
// store.
type personAccess struct {
	rec *record.Record
}

// Record exposes the underlying record. The record is a mutable
// reference object, so handing it out shares the instance: a mutation
// through any handle is visible through all of them.
func (p personAccess) Record() *record.Record { return p.rec }

func (p personAccess) GivenName() (string, error) { return callText(p.rec, "getGivenName") }
func (p personAccess) SetGivenName(v string) error {
	return callSet(p.rec, "setGivenName", record.TextOf(v))
}

func (p personAccess) FamilyName() (string, error) { return callText(p.rec, "getFamilyName") }
func (p personAccess) SetFamilyName(v string) error {
	return callSet(p.rec, "setFamilyName", record.TextOf(v))
}

func (p personAccess) EmailAddress() (string, error) { return callText(p.rec, "getEmailAddress") }
func (p personAccess) SetEmailAddress(v string) error {
	return callSet(p.rec, "setEmailAddress", record.TextOf(v))
}

func (p personAccess) YearOfBirth() (int64, error) { return callNumber(p.rec, "getYearOfBirth") }
func (p personAccess) SetYearOfBirth(v int64) error {
	return callSet(p.rec, "setYearOfBirth", record.NumberOf(v))
}

// Age derives from the stored year of birth on every read.
func (p personAccess) Age() (int64, error) { return callNumber(p.rec, "getAge") }

// SetAge back-computes and stores the year of birth.
func (p personAccess) SetAge(v int64) error { return callSet(p.rec, "setAge", record.NumberOf(v)) }

func (p personAccess) FullName() (string, error) { return callText(p.rec, "fullName") }

// Describe reports every field, computed age included, one labeled
// line each.
func (p personAccess) Describe() string { return p.rec.Describe() }

// Person wraps a person record.
type Person struct {
	personAccess
}

// NewPerson mints a person with every field default-empty.
func (m *Model) NewPerson() *Person {
	return &Person{personAccess{rec: m.Person.New()}}
}

// NewPersonWith mints a person with all stored fields assigned at
// once.
func (m *Model) NewPersonWith(given, family, email string, yearOfBirth int64) (*Person, error) {
	rec, err := m.Person.NewWith(map[string]record.Value{
		"givenName":    record.TextOf(given),
		"familyName":   record.TextOf(family),
		"emailAddress": record.TextOf(email),
		"yearOfBirth":  record.NumberOf(yearOfBirth),
	})
	if err != nil {
		return nil, err
	}
	return &Person{personAccess{rec: rec}}, nil
}
