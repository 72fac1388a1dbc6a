package commands

import (
	"context"

	"opsconsole/internal/core/domain/services"
)

// DeleteOrderCommandHandler handles order deletion.
//
// Business rules:
//   - Only the order's owner or an admin may delete it
//   - Only pending orders can be deleted
//   - The order row and its item rows are removed in the same transaction;
//     a deletion never leaves orphaned items behind
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanModifyOrder(cmd.Caller(), aggregate.OwnerID()); err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	// DeletePending re-checks the status inside the delete statement, so a
	// concurrent transition between Get and here cannot slip through.
	if err = orderRepo.DeletePending(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
