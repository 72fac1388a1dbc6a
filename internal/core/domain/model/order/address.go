package order

import (
	"opsconsole/internal/pkg/errs"
	"opsconsole/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress")

// Address is an immutable postal address value object.
// All five components are required.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address, requiring every component to be non-empty.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	switch {
	case street == "":
		return Address{}, errs.NewValueIsRequiredError("street")
	case city == "":
		return Address{}, errs.NewValueIsRequiredError("city")
	case state == "":
		return Address{}, errs.NewValueIsRequiredError("state")
	case zipCode == "":
		return Address{}, errs.NewValueIsRequiredError("zipCode")
	case country == "":
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or province.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code.
func (a Address) ZipCode() string { return a.zipCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipCode == other.zipCode &&
		a.country == other.country
}
