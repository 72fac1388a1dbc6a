package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"
)

func adminCaller() services.Caller {
	return services.Caller{ID: kernel.NewUUID(), Role: user.RoleAdmin}
}

func userCaller() services.Caller {
	return services.Caller{ID: kernel.NewUUID(), Role: user.RoleUser}
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Jane Roe", "jane@example.com", "+1-555-0100")
	require.NoError(t, err)
	return customer
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	return address
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("prod-1", "Widget", 2, 29.99)
	require.NoError(t, err)
	return []order.Item{item}
}

func testOrder(t *testing.T, ownerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	items := testItems(t)
	aggregate, err := order.RestoreOrder(
		kernel.NewTokenID(kernel.OrderPrefix),
		order.GenerateOrderNumber(now),
		ownerID,
		testCustomer(t), testAddress(t), testAddress(t),
		items, order.CalculateTotals(items, order.DefaultPricingConfig()),
		status, "", now, now,
	)
	require.NoError(t, err)
	return aggregate
}
