package commands

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrUpdateUserPasswordCommandIsNotConstructed = errors.New(
	"UpdateUserPasswordCommand must be created via NewUpdateUserPasswordCommand constructor",
)

// UpdateUserPasswordCommand represents a request to replace a user's
// password. Users may change their own; admins may reset anyone's.
type UpdateUserPasswordCommand struct { //nolint:recvcheck //using for validation
	caller   services.Caller
	userID   kernel.UUID
	password string

	guard guard.ConstructorGuard
}

// NewUpdateUserPasswordCommand creates a command to set a new password for
// the given account on behalf of caller.
func NewUpdateUserPasswordCommand(
	caller services.Caller,
	userID kernel.UUID,
	password string,
) (UpdateUserPasswordCommand, error) {
	cmd := UpdateUserPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setUserID(userID),
		cmd.setPassword(password),
	); err != nil {
		return UpdateUserPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserPasswordCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserPasswordCommandIsNotConstructed)
}

// Caller returns the authenticated user issuing the change.
func (c UpdateUserPasswordCommand) Caller() services.Caller {
	return c.caller
}

// UserID returns the identifier of the account whose password changes.
func (c UpdateUserPasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// Password returns the new plaintext password.
func (c UpdateUserPasswordCommand) Password() string {
	return c.password
}

func (c *UpdateUserPasswordCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateUserPasswordCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserPasswordCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooWeak
	}

	c.password = password
	return nil
}
