package user

import (
	"errors"
	"strings"
	"time"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the account aggregate of the operations console. Accounts are
// managed by admins; the password hash stored here is produced by an external
// hasher and treated as opaque.
type User struct {
	id           kernel.UUID
	email        string
	name         string
	passwordHash string
	role         Role
	status       AccountStatus

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser creates a fresh account with the given role and status.
// The password hash must already be computed; this aggregate never sees
// plaintext passwords.
func NewUser(
	id kernel.UUID,
	email, name, passwordHash string,
	role Role,
	status AccountStatus,
) (*User, error) {
	now := time.Now().UTC()
	return RestoreUser(id, email, name, passwordHash, role, status, now, now)
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(
	id kernel.UUID,
	email, name, passwordHash string,
	role Role,
	status AccountStatus,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setStatus(status),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the account email.
func (u *User) Email() string { return u.email }

// Name returns the account holder's name.
func (u *User) Name() string { return u.name }

// PasswordHash returns the opaque password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the authorization role.
func (u *User) Role() Role { return u.role }

// Status returns the activation state.
func (u *User) Status() AccountStatus { return u.status }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ProfileUpdate carries an account edit. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Role   *Role
	Status *AccountStatus
}

// UpdateProfile applies an account edit and bumps updatedAt.
func (u *User) UpdateProfile(update ProfileUpdate) error {
	if update.Name != nil {
		if err := u.setName(*update.Name); err != nil {
			return err
		}
	}
	if update.Email != nil {
		if err := u.setEmail(*update.Email); err != nil {
			return err
		}
	}
	if update.Role != nil {
		if err := u.setRole(*update.Role); err != nil {
			return err
		}
	}
	if update.Status != nil {
		if err := u.setStatus(*update.Status); err != nil {
			return err
		}
	}

	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePasswordHash replaces the stored password hash and bumps updatedAt.
func (u *User) ChangePasswordHash(hash string) error {
	if err := u.setPasswordHash(hash); err != nil {
		return err
	}
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setStatus(status AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
