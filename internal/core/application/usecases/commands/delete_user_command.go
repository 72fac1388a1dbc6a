package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var (
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)

	// ErrCannotDeleteOwnAccount is returned when an admin tries to delete the
	// account they are signed in with.
	ErrCannotDeleteOwnAccount = errors.New("cannot delete own account")
)

// DeleteUserCommand represents a request to remove a user account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	caller services.Caller
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete an account on behalf of
// caller.
func NewDeleteUserCommand(caller services.Caller, userID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setUserID(userID),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// Caller returns the authenticated user requesting the deletion.
func (c DeleteUserCommand) Caller() services.Caller {
	return c.caller
}

// UserID returns the identifier of the account to delete.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
