package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove a pending order and its
// line items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	caller  services.Caller
	orderID kernel.TokenID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order on behalf of
// caller.
func NewDeleteOrderCommand(caller services.Caller, orderID kernel.TokenID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Caller returns the authenticated user requesting the deletion.
func (c DeleteOrderCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.TokenID {
	return c.orderID
}

func (c *DeleteOrderCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.TokenID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
