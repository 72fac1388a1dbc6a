package commands

import (
	"context"

	"opsconsole/internal/core/domain/services"
)

// DeleteUserCommandHandler handles user account deletion.
//
// Business rules:
//   - Only admins may delete accounts
//   - An admin cannot delete the account they are signed in with
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteUserCommandHandler creates a handler for account deletion.
func NewDeleteUserCommandHandler(
	uowFactory UserUoWFactory,
	policy services.AccessPolicy,
) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the account deletion command.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageUsers(cmd.Caller()); err != nil {
		return err
	}

	if cmd.Caller().ID.IsEqual(cmd.UserID()) {
		return ErrCannotDeleteOwnAccount
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
