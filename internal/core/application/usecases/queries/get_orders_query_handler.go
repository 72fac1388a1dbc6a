package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
)

// GetOrdersQueryHandler reads the order listing from the database.
// The count and the page rows are produced from the same filtered query in
// one transaction, so the metadata can never drift from the rows.
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution and the access
// policy that resolves the caller's visibility scope.
func NewGetOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, policy: policy}
}

type orderRow struct {
	ID            string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Status        int
	Total         float64
	CreatedAt     time.Time
}

type orderListItemRow struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
}

// Handle executes the listing query and returns one page plus totals.
// Each returned order carries its line items.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	scope := h.policy.ScopeFor(query.Caller())

	response := GetOrdersQueryResponse{
		Orders:   make([]OrderSummaryResponse, 0, query.PageSize()),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		filtered := applyOrderFilter(tx.Table("orders"), query, scope)

		if err := filtered.Count(&response.Total).Error; err != nil {
			return err
		}

		rows := make([]orderRow, 0, query.PageSize())
		err := applyOrderFilter(tx.Table("orders"), query, scope).
			Select(`orders.id, orders.order_number, orders.customer_name, orders.customer_email,
				orders.status, orders.total, orders.created_at`).
			Order(orderSortClause(query)).
			Limit(query.PageSize()).
			Offset((query.Page() - 1) * query.PageSize()).
			Find(&rows).Error
		if err != nil {
			return err
		}

		itemsByOrder, err := loadPageItems(tx, rows)
		if err != nil {
			return err
		}

		for _, row := range rows {
			items := itemsByOrder[row.ID]
			response.Orders = append(response.Orders, OrderSummaryResponse{
				ID:            row.ID,
				OrderNumber:   row.OrderNumber,
				CustomerName:  row.CustomerName,
				CustomerEmail: row.CustomerEmail,
				Status:        order.Status(row.Status).String(),
				Items:         items,
				ItemCount:     len(items),
				Total:         row.Total,
				CreatedAt:     row.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	response.TotalPages = int((response.Total + int64(query.PageSize()) - 1) / int64(query.PageSize()))
	return response, nil
}

// loadPageItems fetches the line items for one page of orders in a single
// query and groups them by order id.
func loadPageItems(tx *gorm.DB, rows []orderRow) (map[string][]OrderItemResponse, error) {
	itemsByOrder := make(map[string][]OrderItemResponse, len(rows))
	if len(rows) == 0 {
		return itemsByOrder, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var itemRows []orderListItemRow
	err := tx.Table("order_items").
		Where("order_id IN ?", ids).
		Order("order_id, id").
		Find(&itemRows).Error
	if err != nil {
		return nil, err
	}

	for _, item := range itemRows {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: float64(item.Quantity) * item.UnitPrice,
		})
	}
	return itemsByOrder, nil
}

func applyOrderFilter(tx *gorm.DB, query GetOrdersQuery, scope services.Scope) *gorm.DB {
	if scope.IsRestricted() {
		tx = tx.Where("owner_id = ?", scope.OwnerID.Bytes())
	}
	if query.Status() != order.Unknown {
		tx = tx.Where("status = ?", int(query.Status()))
	}
	if query.Search() != "" {
		pattern := "%" + query.Search() + "%"
		tx = tx.Where("order_number ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
	}
	if query.CreatedFrom() != nil {
		tx = tx.Where("created_at >= ?", *query.CreatedFrom())
	}
	if query.CreatedTo() != nil {
		tx = tx.Where("created_at <= ?", *query.CreatedTo())
	}
	return tx
}

// orderSortClause maps the sort field to a whitelisted column; user input
// never reaches the ORDER BY clause directly.
func orderSortClause(query GetOrdersQuery) string {
	column := "created_at"
	switch query.SortField() {
	case OrderSortByTotal:
		column = "total"
	case OrderSortByStatus:
		column = "status"
	case OrderSortByOrderNumber:
		column = "order_number"
	case OrderSortByCreatedAt:
	}

	if query.SortDescending() {
		return column + " DESC"
	}
	return column + " ASC"
}
