package order

import (
	"fmt"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/pkg/errs"
	"opsconsole/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"Item must be created via NewItem or RestoreItem")

// Item is one product entry on an order: a product reference with a quantity
// and the unit price captured at creation time. Items are immutable after the
// order is created.
//
// Invariants:
//   - quantity >= 1
//   - unitPrice >= 0
//   - line total always equals quantity x unitPrice
type Item struct {
	id        kernel.TokenID
	productID string
	name      string
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewItem creates a line item with a fresh identifier.
// Validates that the product reference and name are present, quantity is at
// least 1 and the unit price is not negative.
func NewItem(productID, name string, quantity int, unitPrice float64) (Item, error) {
	return RestoreItem(kernel.NewTokenID(kernel.ItemPrefix), productID, name, quantity, unitPrice)
}

// RestoreItem reconstructs a line item with a known identifier, typically when
// loading an order from persistence. Applies the same validation as NewItem.
func RestoreItem(id kernel.TokenID, productID, name string, quantity int, unitPrice float64) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("productId")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is negative", unitPrice))
	}

	return Item{
		id:        id,
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.TokenID {
	return i.id
}

// ProductID returns the referenced product identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name captured at order creation.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order creation.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// LineTotal returns quantity x unitPrice.
func (i Item) LineTotal() float64 {
	return float64(i.quantity) * i.unitPrice
}
