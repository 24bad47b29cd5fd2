package commands

import (
	"context"
	"time"
)

// DecideCancellationCommandHandler applies admin decisions to pending
// cancellation requests.
//
// Approval flips the request to Approved and the order to Cancelled in one
// aggregate mutation, persisted by a single version-checked update inside one
// transaction, so no reader ever observes one without the other. Two admins
// deciding the same request concurrently cannot both succeed: the slower one
// fails the version check and sees the request already decided on retry.
type DecideCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDecideCancellationCommandHandler creates a handler for cancellation decisions.
func NewDecideCancellationCommandHandler(uowFactory OrderUoWFactory) DecideCancellationCommandHandler {
	return DecideCancellationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision command.
// Fails if the order is terminal (the race where fulfillment outran the
// request) or the request is not pending; in both cases the transaction is
// rolled back and nothing changes.
func (h *DecideCancellationCommandHandler) Handle(ctx context.Context, cmd DecideCancellationCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.DecideCancellation(cmd.Decision(), cmd.AdminResponse(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
