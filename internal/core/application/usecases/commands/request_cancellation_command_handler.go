package commands

import (
	"context"
	"time"
)

// RequestCancellationCommandHandler files customer cancellation requests.
// The aggregate enforces one request per order and the Processing/Prepared
// window; this handler only supplies the transaction and the timestamp.
type RequestCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestCancellationCommandHandler creates a handler for cancellation requests.
func NewRequestCancellationCommandHandler(uowFactory OrderUoWFactory) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation request command.
// On success the order carries a Pending request stamped with the current time.
func (h *RequestCancellationCommandHandler) Handle(ctx context.Context, cmd RequestCancellationCommand) error {
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

	if err = aggregate.RequestCancellation(cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
