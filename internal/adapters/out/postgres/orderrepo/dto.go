// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The customer snapshot, both addresses and the financial
// breakdown are denormalized into the orders table; line items live in
// their own table keyed by order id.
type OrderDTO struct {
	ID          string      `gorm:"primaryKey"`
	OrderNumber string      `gorm:"uniqueIndex"`
	OwnerID     uuid.UUID   `gorm:"type:uuid;index"`
	Customer    CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Shipping    AddressDTO  `gorm:"embedded;embeddedPrefix:shipping_"`
	Billing     AddressDTO  `gorm:"embedded;embeddedPrefix:billing_"`
	Subtotal    float64
	Discount    float64
	Tax         float64
	ShippingFee float64
	Total       float64
	Status      int `gorm:"index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer snapshot within the order row.
type CustomerDTO struct {
	Name  string
	Email string
	Phone string
}

// AddressDTO represents an embedded postal address within the order row.
type AddressDTO struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// ItemDTO represents one line item row belonging to an order.
type ItemDTO struct {
	ID        string `gorm:"primaryKey"`
	OrderID   string `gorm:"index"`
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:        item.ID().String(),
			OrderID:   aggregate.ID().String(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	totals := aggregate.Totals()
	customer := aggregate.Customer()

	return OrderDTO{
		ID:          aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber(),
		OwnerID:     aggregate.OwnerID().Bytes(),
		Customer: CustomerDTO{
			Name:  customer.Name(),
			Email: customer.Email(),
			Phone: customer.Phone(),
		},
		Shipping:    addressToDTO(aggregate.ShippingAddress()),
		Billing:     addressToDTO(aggregate.BillingAddress()),
		Subtotal:    totals.Subtotal,
		Discount:    totals.Discount,
		Tax:         totals.Tax,
		ShippingFee: totals.Shipping,
		Total:       totals.Total,
		Status:      int(aggregate.Status()),
		Notes:       aggregate.Notes(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Items:       itemDTOs,
	}
}

func addressToDTO(address order.Address) AddressDTO {
	return AddressDTO{
		Street:  address.Street(),
		City:    address.City(),
		State:   address.State(),
		ZipCode: address.ZipCode(),
		Country: address.Country(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, so the stored totals are kept instead of being recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.TokenIDFromString(kernel.OrderPrefix, dto.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	shipping, err := addressToDomain(dto.Shipping)
	if err != nil {
		return nil, err
	}

	billing, err := addressToDomain(dto.Billing)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.TokenIDFromString(kernel.ItemPrefix, itemDTO.ID)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID, itemDTO.ProductID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, ownerID,
		customer, shipping, billing,
		items,
		order.Totals{
			Subtotal: dto.Subtotal,
			Discount: dto.Discount,
			Tax:      dto.Tax,
			Shipping: dto.ShippingFee,
			Total:    dto.Total,
		},
		order.Status(dto.Status), dto.Notes,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	return order.NewAddress(dto.Street, dto.City, dto.State, dto.ZipCode, dto.Country)
}
