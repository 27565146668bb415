package persons

import "dossier/record"

// Address wraps an address record.
type Address struct {
	rec *record.Record
}

// Record exposes the underlying record.
func (a *Address) Record() *record.Record { return a.rec }

func (a *Address) StreetName() (string, error) { return callText(a.rec, "getStreetName") }
func (a *Address) SetStreetName(v string) error {
	return callSet(a.rec, "setStreetName", record.TextOf(v))
}

func (a *Address) CityName() (string, error) { return callText(a.rec, "getCityName") }
func (a *Address) SetCityName(v string) error {
	return callSet(a.rec, "setCityName", record.TextOf(v))
}

func (a *Address) PostalCode() (string, error) { return callText(a.rec, "getPostalCode") }
func (a *Address) SetPostalCode(v string) error {
	return callSet(a.rec, "setPostalCode", record.TextOf(v))
}

func (a *Address) CountryName() (string, error) { return callText(a.rec, "getCountryName") }
func (a *Address) SetCountryName(v string) error {
	return callSet(a.rec, "setCountryName", record.TextOf(v))
}

func (a *Address) Describe() string { return a.rec.Describe() }

// NewAddress mints an address with every field default-empty.
func (m *Model) NewAddress() *Address {
	return &Address{rec: m.Address.New()}
}

// NewAddressWith mints an address with all fields assigned at once.
func (m *Model) NewAddressWith(street, city, postal, country string) (*Address, error) {
	rec, err := m.Address.NewWith(map[string]record.Value{
		"streetName":  record.TextOf(street),
		"cityName":    record.TextOf(city),
		"postalCode":  record.TextOf(postal),
		"countryName": record.TextOf(country),
	})
	if err != nil {
		return nil, err
	}
	return &Address{rec: rec}, nil
}
