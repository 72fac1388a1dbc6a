package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opsconsole/internal/core/application/usecases/commands"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/errs"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := userCaller()
	aggregate := testOrder(t, caller.ID, order.Pending)
	cmd, err := commands.NewDeleteOrderCommand(caller, aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("DeletePending", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_RejectsNonPendingOrder(t *testing.T) {
	ctx := t.Context()
	caller := userCaller()

	for _, status := range []order.Status{order.Processing, order.Shipped, order.Delivered, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			aggregate := testOrder(t, caller.ID, status)
			cmd, err := commands.NewDeleteOrderCommand(caller, aggregate.ID())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
			err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrOrderStateConflict)
			repo.AssertNotCalled(t, "DeletePending", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_ForbiddenForNonOwner(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, userCaller().ID, order.Pending)
	cmd, err := commands.NewDeleteOrderCommand(userCaller(), aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	caller := userCaller()
	aggregate := testOrder(t, caller.ID, order.Pending)
	cmd, err := commands.NewDeleteOrderCommand(caller, aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
