package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a request to change a user's profile: name,
// email, role or account status. Nil update fields are left unchanged.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	caller services.Caller
	userID kernel.UUID
	update user.ProfileUpdate

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to edit an account's profile on
// behalf of caller.
func NewUpdateUserCommand(
	caller services.Caller,
	userID kernel.UUID,
	update user.ProfileUpdate,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		guard:  guard.NewConstructorGuard(),
		update: update,
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setUserID(userID),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// Caller returns the authenticated user issuing the edit.
func (c UpdateUserCommand) Caller() services.Caller {
	return c.caller
}

// UserID returns the identifier of the account to edit.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Update returns the partial profile edit to apply.
func (c UpdateUserCommand) Update() user.ProfileUpdate {
	return c.update
}

func (c *UpdateUserCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
