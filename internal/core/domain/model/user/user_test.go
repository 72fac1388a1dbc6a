package user_test

import (
	"testing"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "jane@example.com", "Jane Roe",
		"$2a$10$hash", role, user.AccountActive)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "jane@example.com", "Jane Roe",
			"$2a$10$hash", user.RoleUser, user.AccountActive)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "jane@example.com", u.Email())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.Equal(t, user.AccountActive, u.Status())
	})

	t.Run("should fail with invalid email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", "Jane Roe",
			"$2a$10$hash", user.RoleUser, user.AccountActive)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "jane@example.com", "",
			"$2a$10$hash", user.RoleUser, user.AccountActive)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with missing password hash", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "jane@example.com", "Jane Roe",
			"", user.RoleUser, user.AccountActive)

		require.Error(t, err)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "jane@example.com", "Jane Roe",
			"$2a$10$hash", user.RoleUnknown, user.AccountActive)

		require.Error(t, err)
	})

	t.Run("zero value user fails validation", func(t *testing.T) {
		var u user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		u := newActiveUser(t, user.RoleUser)
		newName := "Janet Roe"

		err := u.UpdateProfile(user.ProfileUpdate{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, "Janet Roe", u.Name())
		assert.Equal(t, "jane@example.com", u.Email())
		assert.Equal(t, user.RoleUser, u.Role())
	})

	t.Run("can promote to admin and deactivate", func(t *testing.T) {
		u := newActiveUser(t, user.RoleUser)
		admin := user.RoleAdmin
		inactive := user.AccountInactive

		err := u.UpdateProfile(user.ProfileUpdate{Role: &admin, Status: &inactive})

		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.Equal(t, user.AccountInactive, u.Status())
	})

	t.Run("rejects invalid email without applying it", func(t *testing.T) {
		u := newActiveUser(t, user.RoleUser)
		bad := "nope"

		err := u.UpdateProfile(user.ProfileUpdate{Email: &bad})

		require.Error(t, err)
		assert.Equal(t, "jane@example.com", u.Email())
	})
}

func TestUser_ChangePasswordHash(t *testing.T) {
	t.Run("replaces hash", func(t *testing.T) {
		u := newActiveUser(t, user.RoleUser)

		err := u.ChangePasswordHash("$2a$10$other")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$other", u.PasswordHash())
	})

	t.Run("rejects empty hash", func(t *testing.T) {
		u := newActiveUser(t, user.RoleUser)

		require.Error(t, u.ChangePasswordHash(""))
	})
}

func TestParseRole(t *testing.T) {
	t.Run("parses valid roles", func(t *testing.T) {
		r, err := user.ParseRole("admin")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, r)
		assert.True(t, r.IsAdmin())

		r, err = user.ParseRole("user")
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, r)
		assert.False(t, r.IsAdmin())
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "Admin", "root"} {
			_, err := user.ParseRole(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestParseAccountStatus(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		for s, expected := range map[string]user.AccountStatus{
			"active":   user.AccountActive,
			"inactive": user.AccountInactive,
			"pending":  user.AccountPending,
		} {
			parsed, err := user.ParseAccountStatus(s)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := user.ParseAccountStatus("frozen")
		require.Error(t, err)
	})
}
