package queries

import (
	"errors"

	"opsconsole/internal/pkg/guard"
)

var ErrGetPendingOrdersReportQueryIsNotConstructed = errors.New(
	"GetPendingOrdersReportQuery must be created via NewGetPendingOrdersReportQuery constructor",
)

// GetPendingOrdersReportQuery summarizes the pending order backlog.
// Internal consumer only (the report job); there is no caller scoping.
type GetPendingOrdersReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersReportQuery creates a backlog report query.
func NewGetPendingOrdersReportQuery() GetPendingOrdersReportQuery {
	return GetPendingOrdersReportQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersReportQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersReportQueryIsNotConstructed)
}

// GetPendingOrdersReportQueryResponse is the backlog snapshot.
type GetPendingOrdersReportQueryResponse struct {
	PendingCount int64
	PendingValue float64
}
