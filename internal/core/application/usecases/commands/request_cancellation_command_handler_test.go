package commands_test

import (
	"errors"
	"testing"

	"foodadmin/internal/core/application/usecases/commands"
	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestCancellationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRequestCancellationCommand(id, "ordered by mistake")

	stored := newStoredOrder(t, id)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	request := stored.CancellationRequest()
	require.NotNil(t, request)
	require.True(t, request.IsPending())
	require.Equal(t, "ordered by mistake", request.Reason())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRequestCancellationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RequestCancellationCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewRequestCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRequestCancellationCommandHandler_Handle_OutsideCancellationWindow(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRequestCancellationCommand(id, "too late")

	stored := newStoredOrder(t, id)
	require.NoError(t, stored.ChangeStatus(order.Prepared))
	require.NoError(t, stored.ChangeStatus(order.OutForDelivery))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrCancellationNotAllowed)
	require.Nil(t, stored.CancellationRequest())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestCancellationCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRequestCancellationCommand(id, "changed my mind")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRequestCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
