package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order along its
// lifecycle: pending to processing, processing to shipped, and so on.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	caller  services.Caller
	orderID kernel.TokenID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order to
// target on behalf of caller.
func NewChangeOrderStatusCommand(
	caller services.Caller,
	orderID kernel.TokenID,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Caller returns the authenticated user requesting the transition.
func (c ChangeOrderStatusCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.TokenID {
	return c.orderID
}

// Target returns the requested lifecycle status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.TokenID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
