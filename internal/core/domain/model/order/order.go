package order

import (
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errors.New("order requires at least one line item")
)

// Order is the central aggregate of the operations console. It manages the
// order lifecycle from creation through processing and shipping to delivery
// or cancellation.
//
// Order maintains these invariants:
//   - Every order is created in Pending status; status changes only along the
//     edges of the transition table in Status
//   - ownerID is set at creation and never changes
//   - Financial totals are computed exactly once at creation and are never
//     recomputed by later edits
//   - Line items are immutable once the order exists
//   - The billing address defaults to the shipping address when omitted
//
// Order uses private fields to ensure encapsulation; construct instances only
// through NewOrder (fresh orders) or RestoreOrder (from persistence).
type Order struct {
	id          kernel.TokenID
	orderNumber string
	ownerID     kernel.UUID

	customer        Customer
	shippingAddress Address
	billingAddress  Address

	items  []Item
	totals Totals

	status Status
	notes  string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Pending status and computes its financial
// totals from the line items using the supplied pricing configuration. This
// is the only place totals are ever calculated.
//
// Parameters:
//   - id: opaque order identifier (ord_ prefix)
//   - orderNumber: human-facing number in ORD-<year>-<4-digit> format
//   - ownerID: the creating user; immutable afterwards
//   - customer: denormalized customer snapshot
//   - shipping: required shipping address
//   - billing: optional billing address; nil means "same as shipping"
//   - items: at least one validated line item
//   - notes: optional free text
//   - pricing: tax rate and flat shipping fee to apply
//
// Returns a validation error if any component is invalid.
func NewOrder(
	id kernel.TokenID,
	orderNumber string,
	ownerID kernel.UUID,
	customer Customer,
	shipping Address,
	billing *Address,
	items []Item,
	notes string,
	pricing PricingConfig,
) (*Order, error) {
	now := time.Now().UTC()

	billingAddress := shipping
	if billing != nil {
		billingAddress = *billing
	}

	return RestoreOrder(
		id, orderNumber, ownerID,
		customer, shipping, billingAddress,
		items, CalculateTotals(items, pricing),
		Pending, notes, now, now,
	)
}

// RestoreOrder reconstructs an order from persistence without recomputing
// totals. All invariants except "status is Pending" are revalidated, since a
// persisted order may legitimately be anywhere in its lifecycle.
func RestoreOrder(
	id kernel.TokenID,
	orderNumber string,
	ownerID kernel.UUID,
	customer Customer,
	shipping Address,
	billing Address,
	items []Item,
	totals Totals,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	if err := errors.Join(
		id.Validate(),
		ValidateOrderNumber(orderNumber),
		ownerID.Validate(),
		customer.Validate(),
		shipping.Validate(),
		billing.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		orderNumber:     orderNumber,
		ownerID:         ownerID,
		customer:        customer,
		shippingAddress: shipping,
		billingAddress:  billing,
		items:           items,
		totals:          totals,
		status:          status,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's opaque identifier.
func (o *Order) ID() kernel.TokenID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// OwnerID returns the id of the user who created the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Customer returns the customer snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// ShippingAddress returns the shipping address.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the billing address.
func (o *Order) BillingAddress() Address {
	return o.billingAddress
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the financials computed at creation time.
func (o *Order) Totals() Totals {
	return o.totals
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp. Immutable.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DetailsUpdate carries an order content edit. Nil fields are left unchanged.
// Status, financials, items, the order number and the owner are not part of a
// content edit and cannot be touched through it.
type DetailsUpdate struct {
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	ShippingAddress *Address
	Notes           *string
}

// UpdateDetails applies a content edit to the order.
//
// Business rules:
//   - Only Pending and Processing orders may be edited; otherwise an
//     OrderStateError naming the current status is returned
//   - Only the customer snapshot, the shipping address and the notes change;
//     totals stay exactly as computed at creation
//
// Bumps updatedAt on success.
func (o *Order) UpdateDetails(update DetailsUpdate) error {
	if !o.status.AllowsContentEdit() {
		return errs.NewOrderStateError("modify", o.status.String())
	}

	name := o.customer.Name()
	email := o.customer.Email()
	phone := o.customer.Phone()
	if update.CustomerName != nil {
		name = *update.CustomerName
	}
	if update.CustomerEmail != nil {
		email = *update.CustomerEmail
	}
	if update.CustomerPhone != nil {
		phone = *update.CustomerPhone
	}

	customer, err := NewCustomer(name, email, phone)
	if err != nil {
		return err
	}

	if update.ShippingAddress != nil {
		if err = update.ShippingAddress.Validate(); err != nil {
			return err
		}
		o.shippingAddress = *update.ShippingAddress
	}
	if update.Notes != nil {
		o.notes = *update.Notes
	}

	o.customer = customer
	o.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus transitions the order to the requested status.
//
// The transition must exist in the adjacency table; otherwise an
// InvalidOrderTransitionError naming both states is returned. On success only
// the status field and updatedAt change; financials and items are untouched.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// EnsureDeletable checks that the order may be removed.
// Only Pending orders can be deleted; any other status yields an
// OrderStateError naming the current status.
func (o *Order) EnsureDeletable() error {
	if !o.status.AllowsDeletion() {
		return errs.NewOrderStateError("delete", o.status.String())
	}
	return nil
}
