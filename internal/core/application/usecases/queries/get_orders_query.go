// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates that the command side goes through.
package queries

import (
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/guard"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrPageIsInvalid      = errors.New("page must be at least 1")
	ErrPageSizeIsInvalid  = errors.New("page size must be between 1 and 100")
	ErrDateRangeIsInvalid = errors.New("createdFrom must not be after createdTo")
)

// OrderSortField enumerates the columns an order listing can sort on.
type OrderSortField int

const (
	// OrderSortByCreatedAt sorts by creation time. The default.
	OrderSortByCreatedAt OrderSortField = iota
	// OrderSortByTotal sorts by the grand total.
	OrderSortByTotal
	// OrderSortByStatus sorts by lifecycle status.
	OrderSortByStatus
	// OrderSortByOrderNumber sorts by the human-facing order number.
	OrderSortByOrderNumber
)

// GetOrdersQuery retrieves one page of orders visible to the caller.
// Admins see every order; regular users only their own. The same filter is
// used for the page rows and the total count, so pagination metadata always
// matches the listing.
type GetOrdersQuery struct {
	caller         services.Caller
	status         order.Status
	search         string
	createdFrom    *time.Time
	createdTo      *time.Time
	sortField      OrderSortField
	sortDescending bool
	page           int
	pageSize       int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a listing query for the caller.
// status Unknown means "all statuses"; an empty search matches everything.
// createdFrom/createdTo bound creation time inclusively; nil leaves the
// corresponding end open. page is 1-based; pageSize 0 selects the default
// of 10, capped at 100.
func NewGetOrdersQuery(
	caller services.Caller,
	status order.Status,
	search string,
	createdFrom, createdTo *time.Time,
	sortField OrderSortField,
	sortDescending bool,
	page, pageSize int,
) (GetOrdersQuery, error) {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetOrdersQuery{}, err
	}
	if page < 1 {
		return GetOrdersQuery{}, ErrPageIsInvalid
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return GetOrdersQuery{}, ErrPageSizeIsInvalid
	}
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if createdFrom != nil && createdTo != nil && createdFrom.After(*createdTo) {
		return GetOrdersQuery{}, ErrDateRangeIsInvalid
	}

	return GetOrdersQuery{
		caller:         caller,
		status:         status,
		search:         search,
		createdFrom:    createdFrom,
		createdTo:      createdTo,
		sortField:      sortField,
		sortDescending: sortDescending,
		page:           page,
		pageSize:       pageSize,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Caller returns the authenticated user listing orders.
func (q GetOrdersQuery) Caller() services.Caller { return q.caller }

// Status returns the status filter; Unknown means unfiltered.
func (q GetOrdersQuery) Status() order.Status { return q.status }

// Search returns the order number / customer name search term.
func (q GetOrdersQuery) Search() string { return q.search }

// CreatedFrom returns the inclusive lower bound on creation time, if any.
func (q GetOrdersQuery) CreatedFrom() *time.Time { return q.createdFrom }

// CreatedTo returns the inclusive upper bound on creation time, if any.
func (q GetOrdersQuery) CreatedTo() *time.Time { return q.createdTo }

// SortField returns the column to sort on.
func (q GetOrdersQuery) SortField() OrderSortField { return q.sortField }

// SortDescending reports whether the sort direction is descending.
func (q GetOrdersQuery) SortDescending() bool { return q.sortDescending }

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q GetOrdersQuery) PageSize() int { return q.pageSize }

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID            string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Status        string
	Items         []OrderItemResponse
	ItemCount     int
	Total         float64
	CreatedAt     time.Time
}

// GetOrdersQueryResponse is the listing page plus pagination metadata.
// TotalPages is ceil(Total/PageSize) for the filter that produced the rows.
type GetOrdersQueryResponse struct {
	Orders     []OrderSummaryResponse
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
