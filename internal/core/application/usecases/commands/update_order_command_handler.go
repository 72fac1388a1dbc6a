package commands

import (
	"context"

	"opsconsole/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles content edits on orders.
//
// Business rules:
//   - Only the order's owner or an admin may edit it
//   - Only pending and processing orders accept edits; the aggregate rejects
//     everything else
//   - Persistence is guarded on the status the edit was computed against, so
//     a concurrent transition surfaces as a state conflict instead of a
//     silent overwrite
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order content edits.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order edit command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	observedStatus := aggregate.Status()
	if err = aggregate.UpdateDetails(cmd.Update()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, observedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
