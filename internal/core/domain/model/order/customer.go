package order

import (
	"strings"

	"opsconsole/internal/pkg/errs"
	"opsconsole/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through NewCustomer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"Customer must be created via NewCustomer")

// Customer is the denormalized customer snapshot on an order: name, email and
// an optional phone, copied at creation time and independent of any user
// account in the system.
type Customer struct {
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer snapshot. Name and a plausible email are
// required; phone may be empty.
func NewCustomer(name, email, phone string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerName")
	}
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerEmail")
	}
	if !strings.Contains(email, "@") {
		return Customer{}, errs.NewValueIsInvalidError("customerEmail")
	}

	return Customer{
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer snapshot was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's full name.
func (c Customer) Name() string { return c.name }

// Email returns the customer's email address.
func (c Customer) Email() string { return c.email }

// Phone returns the customer's phone number, possibly empty.
func (c Customer) Phone() string { return c.phone }
