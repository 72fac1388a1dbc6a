package queries

import (
	"context"

	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/order"
)

// GetPendingOrdersReportQueryHandler computes the pending backlog snapshot.
type GetPendingOrdersReportQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersReportQueryHandler creates a handler for backlog reports.
func NewGetPendingOrdersReportQueryHandler(db *gorm.DB) GetPendingOrdersReportQueryHandler {
	return GetPendingOrdersReportQueryHandler{db: db}
}

// Handle counts pending orders and sums their grand totals.
func (h GetPendingOrdersReportQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersReportQuery,
) (GetPendingOrdersReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersReportQueryResponse{}, err
	}

	var row struct {
		PendingCount int64
		PendingValue float64
	}
	err := h.db.WithContext(ctx).Table("orders").
		Select("COUNT(*) AS pending_count, COALESCE(SUM(total), 0) AS pending_value").
		Where("status = ?", int(order.Pending)).
		Take(&row).Error
	if err != nil {
		return GetPendingOrdersReportQueryResponse{}, err
	}

	return GetPendingOrdersReportQueryResponse{
		PendingCount: row.PendingCount,
		PendingValue: row.PendingValue,
	}, nil
}
