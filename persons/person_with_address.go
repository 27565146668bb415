package persons

import "dossier/record"

// PersonWithAddress wraps a personWithAddress record: the full person
// surface plus address accessors delegated to the composed
// postalAddress sub-record.
type PersonWithAddress struct {
	personAccess
}

// NewPersonWithAddress mints a personWithAddress with every field
// default-empty. The postal address starts unset; delegated accessors
// fail with MissingReferenceError until one is assigned.
func (m *Model) NewPersonWithAddress() *PersonWithAddress {
	return &PersonWithAddress{personAccess{rec: m.PersonWithAddress.New()}}
}

// PostalAddress answers the composed address, nil when unset. The
// returned wrapper shares the sub-record instance.
func (p *PersonWithAddress) PostalAddress() (*Address, error) {
	v, err := p.rec.Call("getPostalAddress")
	if err != nil {
		return nil, err
	}
	rec, _ := record.AsRecord(v)
	if rec == nil {
		return nil, nil
	}
	return &Address{rec: rec}, nil
}

// SetPostalAddress composes a into this person, which then owns it: a
// second record cannot compose the same address. Passing nil clears
// the reference.
func (p *PersonWithAddress) SetPostalAddress(a *Address) error {
	var v record.Value
	if a == nil {
		v = record.ZeroOf(record.KindRecord)
	} else {
		v = a.rec
	}
	return callSet(p.rec, "setPostalAddress", v)
}

// Delegated accessors. Each forwards through the personWithAddress
// method table to the composed address.

func (p *PersonWithAddress) StreetName() (string, error) { return callText(p.rec, "getStreetName") }
func (p *PersonWithAddress) SetStreetName(v string) error {
	return callSet(p.rec, "setStreetName", record.TextOf(v))
}

func (p *PersonWithAddress) CityName() (string, error) { return callText(p.rec, "getCityName") }
func (p *PersonWithAddress) SetCityName(v string) error {
	return callSet(p.rec, "setCityName", record.TextOf(v))
}

func (p *PersonWithAddress) PostalCode() (string, error) { return callText(p.rec, "getPostalCode") }
func (p *PersonWithAddress) SetPostalCode(v string) error {
	return callSet(p.rec, "setPostalCode", record.TextOf(v))
}

func (p *PersonWithAddress) CountryName() (string, error) { return callText(p.rec, "getCountryName") }
func (p *PersonWithAddress) SetCountryName(v string) error {
	return callSet(p.rec, "setCountryName", record.TextOf(v))
}
