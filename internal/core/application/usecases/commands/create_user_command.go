package commands

import (
	"errors"
	"strings"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

const minPasswordLength = 8

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrEmailIsRequired   = errors.New("email is required")
	ErrNameIsRequired    = errors.New("name is required")
	ErrPasswordIsTooWeak = errors.New("password must be at least 8 characters")
)

// CreateUserCommand represents a request to create a user account. The
// password travels in plaintext only as far as the handler, which hashes it
// before the aggregate is built.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	caller   services.Caller
	userID   kernel.UUID
	email    string
	name     string
	password string
	role     user.Role
	status   user.AccountStatus

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user account on
// behalf of caller.
func NewCreateUserCommand(
	caller services.Caller,
	userID kernel.UUID,
	email, name, password string,
	role user.Role,
	status user.AccountStatus,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setName(name),
		cmd.setPassword(password),
		cmd.setRole(role),
		cmd.setStatus(status),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Caller returns the authenticated user issuing the command.
func (c CreateUserCommand) Caller() services.Caller {
	return c.caller
}

// UserID returns the identifier the new account will be stored under.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the new account's email address.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Name returns the new account's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Role returns the new account's role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

// Status returns the new account's status.
func (c CreateUserCommand) Status() user.AccountStatus {
	return c.status
}

func (c *CreateUserCommand) setCaller(caller services.Caller) error {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooWeak
	}

	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateUserCommand) setStatus(status user.AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
