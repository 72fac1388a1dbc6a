package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to edit an order's content: the
// customer snapshot, the shipping address and the notes. Nil update fields
// are left unchanged. Status, items and totals cannot be touched through it.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	caller  services.Caller
	orderID kernel.TokenID
	update  order.DetailsUpdate

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order's content on
// behalf of caller.
func NewUpdateOrderCommand(
	caller services.Caller,
	orderID kernel.TokenID,
	update order.DetailsUpdate,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard:  guard.NewConstructorGuard(),
		update: update,
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Caller returns the authenticated user issuing the edit.
func (c UpdateOrderCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.TokenID {
	return c.orderID
}

// Update returns the partial content edit to apply.
func (c UpdateOrderCommand) Update() order.DetailsUpdate {
	return c.update
}

func (c *UpdateOrderCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.TokenID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
