package commands

import (
	"context"

	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/core/ports"
)

// CreateUserCommandHandler handles user account creation.
//
// Business rules:
//   - Only admins may create accounts
//   - Email addresses are unique; the repository surfaces a conflict when
//     the address is taken
//   - The password is hashed before the aggregate ever sees it
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
	hasher     ports.PasswordHasher
}

// NewCreateUserCommandHandler creates a handler for account creation.
func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	policy services.AccessPolicy,
	hasher ports.PasswordHasher,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		hasher:     hasher,
	}
}

// Handle processes the account creation command.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageUsers(cmd.Caller()); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := user.NewUser(
		cmd.UserID(), cmd.Email(), cmd.Name(), passwordHash,
		cmd.Role(), cmd.Status(),
	)
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

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
