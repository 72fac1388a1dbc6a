package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order with its items from the database.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for order detail reads.
// The access policy decides whether the caller may see the loaded order.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

type orderDetailRow struct {
	ID              string
	OrderNumber     string
	OwnerID         uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingStreet  string
	ShippingCity    string
	ShippingState   string
	ShippingZipCode string
	ShippingCountry string
	BillingStreet   string
	BillingCity     string
	BillingState    string
	BillingZipCode  string
	BillingCountry  string
	Subtotal        float64
	Discount        float64
	Tax             float64
	ShippingFee     float64
	Total           float64
	Status          int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type orderItemRow struct {
	ID        string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
}

// Handle executes the detail query.
// Returns ErrObjectNotFound for a missing order and ErrAccessForbidden when
// the order belongs to another user and the caller is not an admin.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderDetailRow
	err := h.db.WithContext(ctx).Table("orders").
		Where("id = ?", query.OrderID().String()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(row.OwnerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err := h.policy.CanViewOrder(query.Caller(), ownerID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var itemRows []orderItemRow
	err = h.db.WithContext(ctx).Table("order_items").
		Where("order_id = ?", query.OrderID().String()).
		Order("id").
		Find(&itemRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: float64(item.Quantity) * item.UnitPrice,
		})
	}

	return GetOrderQueryResponse{
		ID:            row.ID,
		OrderNumber:   row.OrderNumber,
		OwnerID:       row.OwnerID.String(),
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		ShippingAddress: AddressResponse{
			Street:  row.ShippingStreet,
			City:    row.ShippingCity,
			State:   row.ShippingState,
			ZipCode: row.ShippingZipCode,
			Country: row.ShippingCountry,
		},
		BillingAddress: AddressResponse{
			Street:  row.BillingStreet,
			City:    row.BillingCity,
			State:   row.BillingState,
			ZipCode: row.BillingZipCode,
			Country: row.BillingCountry,
		},
		Items:       items,
		Subtotal:    row.Subtotal,
		Discount:    row.Discount,
		Tax:         row.Tax,
		ShippingFee: row.ShippingFee,
		Total:       row.Total,
		Status:      order.Status(row.Status).String(),
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
