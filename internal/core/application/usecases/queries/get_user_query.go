package queries

import (
	"errors"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves one account. Admins may read any account; regular
// users only their own.
type GetUserQuery struct {
	caller services.Caller
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates an account detail query for the caller.
func NewGetUserQuery(caller services.Caller, userID kernel.UUID) (GetUserQuery, error) {
	if err := errors.Join(
		caller.ID.Validate(),
		caller.Role.Validate(),
		userID.Validate(),
	); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		caller: caller,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// Caller returns the authenticated user reading the account.
func (q GetUserQuery) Caller() services.Caller { return q.caller }

// UserID returns the identifier of the account to read.
func (q GetUserQuery) UserID() kernel.UUID { return q.userID }
