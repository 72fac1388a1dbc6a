package queries

import (
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and full financial
// breakdown. A non-owner non-admin caller gets a forbidden error, distinct
// from not-found: the order exists but is off limits.
type GetOrderQuery struct {
	caller  services.Caller
	orderID kernel.TokenID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a detail query for the caller.
func NewGetOrderQuery(caller services.Caller, orderID kernel.TokenID) (GetOrderQuery, error) {
	if err := errors.Join(
		caller.ID.Validate(),
		caller.Role.Validate(),
		orderID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Caller returns the authenticated user reading the order.
func (q GetOrderQuery) Caller() services.Caller { return q.caller }

// OrderID returns the identifier of the order to read.
func (q GetOrderQuery) OrderID() kernel.TokenID { return q.orderID }

// AddressResponse is a postal address in a detail response.
type AddressResponse struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// OrderItemResponse is one line item in a detail response.
type OrderItemResponse struct {
	ID        string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// GetOrderQueryResponse is the full order detail: customer snapshot,
// addresses, items and the financial breakdown computed at creation.
type GetOrderQueryResponse struct {
	ID              string
	OrderNumber     string
	OwnerID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress AddressResponse
	BillingAddress  AddressResponse
	Items           []OrderItemResponse
	Subtotal        float64
	Discount        float64
	Tax             float64
	ShippingFee     float64
	Total           float64
	Status          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
