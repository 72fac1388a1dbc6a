package queries

import (
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves one page of user accounts. Admin only.
type GetUsersQuery struct {
	caller   services.Caller
	role     user.Role
	status   user.AccountStatus
	search   string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates an account listing query for the caller.
// role/status zero values mean "all"; search matches name or email.
func NewGetUsersQuery(
	caller services.Caller,
	role user.Role,
	status user.AccountStatus,
	search string,
	page, pageSize int,
) (GetUsersQuery, error) {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetUsersQuery{}, err
	}
	if page < 1 {
		return GetUsersQuery{}, ErrPageIsInvalid
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return GetUsersQuery{}, ErrPageSizeIsInvalid
	}

	return GetUsersQuery{
		caller:   caller,
		role:     role,
		status:   status,
		search:   search,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Caller returns the authenticated user listing accounts.
func (q GetUsersQuery) Caller() services.Caller { return q.caller }

// Role returns the role filter; RoleUnknown means unfiltered.
func (q GetUsersQuery) Role() user.Role { return q.role }

// Status returns the status filter; AccountUnknown means unfiltered.
func (q GetUsersQuery) Status() user.AccountStatus { return q.status }

// Search returns the name/email search term.
func (q GetUsersQuery) Search() string { return q.search }

// Page returns the 1-based page number.
func (q GetUsersQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q GetUsersQuery) PageSize() int { return q.pageSize }

// UserResponse is one account in a listing or detail response.
// The password hash never leaves the persistence layer.
type UserResponse struct {
	ID        string
	Email     string
	Name      string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetUsersQueryResponse is the account page plus pagination metadata.
type GetUsersQueryResponse struct {
	Users      []UserResponse
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
