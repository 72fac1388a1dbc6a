package ports

import (
	"context"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing and reporting reads live on the query side; this port carries the
// operations command handlers need.
type OrderRepository interface {
	// Add persists a new order aggregate and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, guarded by the status
	// the caller last observed. Returns ErrOrderStateConflict when the
	// stored status no longer matches expectedStatus.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate with its items by identifier.
	// Returns ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.TokenID) (*order.Order, error)

	// ExistsByOrderNumber reports whether an order with the given
	// human-facing number already exists.
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// DeletePending removes the order and its items in one statement chain,
	// guarded on the order still being pending. Returns
	// ErrOrderStateConflict when the order has since left pending.
	DeletePending(ctx context.Context, id kernel.TokenID) error
}
