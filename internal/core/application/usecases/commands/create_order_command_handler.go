package commands

import (
	"context"
	"errors"
	"time"

	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/ports"
)

// maxOrderNumberAttempts bounds regeneration when a freshly generated
// order number collides with an existing one. The number space is four
// random digits per year, so collisions are rare but possible.
const maxOrderNumberAttempts = 5

// ErrOrderNumberExhausted is returned when no free order number could be
// found within maxOrderNumberAttempts tries.
var ErrOrderNumberExhausted = errors.New("could not generate a unique order number")

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The handler generates the human-facing order number, checks it against the
// store for uniqueness, computes the totals once through the aggregate
// constructor and persists the order with its items in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    order.PricingConfig
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and the pricing
// configuration used to compute totals.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing order.PricingConfig,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order creation command.
// The new order starts in pending status with totals computed exactly once.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderNumber, err := h.pickOrderNumber(ctx, orderRepo)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), orderNumber, cmd.OwnerID(),
		cmd.Customer(), cmd.Shipping(), cmd.Billing(),
		cmd.Items(), cmd.Notes(), h.pricing,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) pickOrderNumber(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (string, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		candidate := order.GenerateOrderNumber(time.Now().UTC())
		exists, err := orderRepo.ExistsByOrderNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrOrderNumberExhausted
}
