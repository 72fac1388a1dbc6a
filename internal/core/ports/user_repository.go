package ports

import (
	"context"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Email addresses are unique across the store.
type UserRepository interface {
	// Add persists a new user. Returns ErrConflict when the email is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user. Returns ErrConflict when
	// the update would collide with another user's email.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	// Returns ErrObjectNotFound when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrObjectNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Delete removes a user by identifier.
	// Returns ErrObjectNotFound when no such user exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
