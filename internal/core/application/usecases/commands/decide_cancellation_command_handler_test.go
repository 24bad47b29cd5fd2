package commands_test

import (
	"testing"
	"time"

	"foodadmin/internal/core/application/usecases/commands"
	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderWithPendingRequest(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	aggregate := newStoredOrder(t, id)
	require.NoError(t, aggregate.RequestCancellation("ordered by mistake", time.Now().UTC()))
	return aggregate
}

func TestDecideCancellationCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDecideCancellationCommand(id, order.DecisionApproved, "refund issued")

	stored := newOrderWithPendingRequest(t, id)
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

	h := commands.NewDecideCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.Cancelled, stored.Status())
	request := stored.CancellationRequest()
	require.Equal(t, order.DecisionApproved, request.Decision())
	require.Equal(t, "refund issued", request.AdminResponse())
	require.NotNil(t, request.DecidedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDecideCancellationCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDecideCancellationCommand(id, order.DecisionRejected, "kitchen already started")

	stored := newOrderWithPendingRequest(t, id)
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

	h := commands.NewDecideCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.Processing, stored.Status())
	require.Equal(t, order.DecisionRejected, stored.CancellationRequest().Decision())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDecideCancellationCommandHandler_Handle_NoPendingRequest(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDecideCancellationCommand(id, order.DecisionApproved, "")

	stored := newStoredOrder(t, id) // no request filed
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

	h := commands.NewDecideCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrNoPendingCancellationRequest)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideCancellationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DecideCancellationCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewDecideCancellationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
