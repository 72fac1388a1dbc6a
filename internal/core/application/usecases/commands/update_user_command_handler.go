package commands

import (
	"context"

	"opsconsole/internal/core/domain/services"
)

// UpdateUserCommandHandler handles profile edits on user accounts.
// Only admins may edit accounts; role and status changes included.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateUserCommandHandler creates a handler for account profile edits.
func NewUpdateUserCommandHandler(
	uowFactory UserUoWFactory,
	policy services.AccessPolicy,
) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the profile edit command.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageUsers(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProfile(cmd.Update()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
