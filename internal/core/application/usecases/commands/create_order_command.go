package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one line item is required")
)

// CreateOrderCommand represents a request to create a new order for the
// calling user. It carries the validated customer snapshot, addresses and
// line items; the order number and the financial totals are produced by the
// handler.
//
// Example:
//
//	orderID := kernel.NewTokenID(kernel.OrderPrefix)
//	cmd, err := NewCreateOrderCommand(orderID, ownerID, customer, shipping, nil, items, "leave at door")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.TokenID
	ownerID  kernel.UUID
	customer order.Customer
	shipping order.Address
	billing  *order.Address
	items    []order.Item
	notes    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// billing may be nil, meaning "same as shipping". Returns an error if the
// identifier, customer, addresses or items fail validation.
func NewCreateOrderCommand(
	orderID kernel.TokenID,
	ownerID kernel.UUID,
	customer order.Customer,
	shipping order.Address,
	billing *order.Address,
	items []order.Item,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setCustomer(customer),
		cmd.setShipping(shipping),
		cmd.setBilling(billing),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.TokenID {
	return c.orderID
}

// OwnerID returns the identifier of the creating user.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Customer returns the customer snapshot for the order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Shipping returns the shipping address.
func (c CreateOrderCommand) Shipping() order.Address {
	return c.shipping
}

// Billing returns the billing address, or nil for "same as shipping".
func (c CreateOrderCommand) Billing() *order.Address {
	return c.billing
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.TokenID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setShipping(shipping order.Address) error {
	if err := shipping.Validate(); err != nil {
		return err
	}

	c.shipping = shipping
	return nil
}

func (c *CreateOrderCommand) setBilling(billing *order.Address) error {
	if billing == nil {
		return nil
	}
	if err := billing.Validate(); err != nil {
		return err
	}

	c.billing = billing
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
