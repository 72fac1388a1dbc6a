package commands

import (
	"context"

	"opsconsole/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
//
// Business rules:
//   - Only admins may drive transitions
//   - The transition must be an edge of the lifecycle graph; the aggregate
//     rejects anything else, including transitions out of terminal states
//   - The update is guarded on the status the transition started from, so
//     two concurrent transitions cannot both win
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status transition command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanTransitionStatus(cmd.Caller()); err != nil {
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

	observedStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, observedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
