package persons_test

import (
	"fmt"

	"dossier/persons"
	"dossier/record"
	"dossier/recordtest"
)

func Example() {
	model := persons.MustModel(persons.WithNow(recordtest.FixedNow(2026)))
	alice, err := model.NewPersonWith("Alice", "Wonder", "alice@wonderland.com", 1975)
	if err != nil {
		fmt.Println(err)
		return
	}

	family, _ := alice.FamilyName()
	fmt.Println(family)

	alice.SetFamilyName("Magic")
	family, _ = alice.FamilyName()
	fmt.Println(family)
	// Output:
	// Wonder
	// Magic
}

func ExamplePerson_Describe() {
	model := persons.MustModel(persons.WithNow(recordtest.FixedNow(2026)))
	alice, err := model.NewPersonWith("Alice", "Wonder", "alice@wonderland.com", 1975)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(alice.Describe())
	// Output:
	// person {
	//   givenName: "Alice"
	//   familyName: "Wonder"
	//   emailAddress: "alice@wonderland.com"
	//   yearOfBirth: 1975
	//   age: 51
	// }
}

func ExamplePersonWithAddress() {
	model := persons.MustModel(persons.WithNow(recordtest.FixedNow(2026)))
	traveler := model.NewPersonWithAddress()

	// Asking for the street before composing an address fails fast.
	if _, err := traveler.StreetName(); err != nil {
		fmt.Println(err)
	}

	home, err := model.NewAddressWith("Main St", "Wonderland", "12345", "Oz")
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := traveler.SetPostalAddress(home); err != nil {
		fmt.Println(err)
		return
	}

	street, _ := traveler.StreetName()
	fmt.Println(street)
	// Output:
	// record type "personWithAddress" has no "postalAddress" record assigned
	// Main St
}

func ExamplePersonWithAddress_Describe() {
	model := persons.MustModel(persons.WithNow(recordtest.FixedNow(2026)))
	traveler := model.NewPersonWithAddress()
	traveler.SetGivenName("Alice")
	traveler.SetFamilyName("Wonder")
	traveler.SetEmailAddress("alice@wonderland.com")
	traveler.SetYearOfBirth(1975)

	home, err := model.NewAddressWith("Main St", "Wonderland", "12345", "Oz")
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := traveler.SetPostalAddress(home); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(traveler.Describe())
	// Output:
	// personWithAddress {
	//   givenName: "Alice"
	//   familyName: "Wonder"
	//   emailAddress: "alice@wonderland.com"
	//   yearOfBirth: 1975
	//   age: 51
	//   postalAddress: address {
	//     streetName: "Main St"
	//     cityName: "Wonderland"
	//     postalCode: "12345"
	//     countryName: "Oz"
	//   }
	// }
}

func ExampleModel_unknownMethod() {
	model := persons.MustModel(persons.WithNow(recordtest.FixedNow(2026)))
	alice := model.NewPerson()

	_, err := alice.Record().Call("getNickname")
	if record.IsMethodNotFound(err) {
		fmt.Println(err)
	}
	// Output:
	// record type "person" has no method "getNickname"
}
