package commands

import (
	"errors"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/pkg/guard"
)

var (
	ErrRequestCancellationCommandIsNotConstructed = errors.New(
		"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// RequestCancellationCommand represents a customer asking to cancel an order.
// The order must still be in the kitchen; whether that holds is decided by
// the aggregate when the command is handled.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a command to file a cancellation request.
// Validates that the order ID is valid and a reason was given.
func NewRequestCancellationCommand(orderID kernel.UUID, reason string) (RequestCancellationCommand, error) {
	cmd := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c RequestCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer's cancellation reason.
func (c RequestCancellationCommand) Reason() string {
	return c.reason
}

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
