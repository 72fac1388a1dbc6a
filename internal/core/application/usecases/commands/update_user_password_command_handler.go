package commands

import (
	"context"

	"opsconsole/internal/core/ports"
	"opsconsole/internal/pkg/errs"
)

// UpdateUserPasswordCommandHandler handles password changes.
// Users may change their own password; admins may reset anyone's.
type UpdateUserPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewUpdateUserPasswordCommandHandler creates a handler for password changes.
func NewUpdateUserPasswordCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) UpdateUserPasswordCommandHandler {
	return UpdateUserPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the password change command.
func (h *UpdateUserPasswordCommandHandler) Handle(ctx context.Context, cmd UpdateUserPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().Role.IsAdmin() && !cmd.Caller().ID.IsEqual(cmd.UserID()) {
		return errs.NewAccessForbiddenError("change password")
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.ChangePasswordHash(passwordHash); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
