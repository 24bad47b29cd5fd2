package commands

import (
	"errors"
	"fmt"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"
	"foodadmin/internal/pkg/guard"
)

var (
	ErrDecideCancellationCommandIsNotConstructed = errors.New(
		"DecideCancellationCommand must be created via NewDecideCancellationCommand constructor",
	)
)

// DecideCancellationCommand represents an admin's decision on a pending
// cancellation request: approve (cancelling the order) or reject (the order
// continues), with an optional note back to the customer.
//
// Example:
//
//	decision, err := order.DecisionFromAction(body.Action)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewDecideCancellationCommand(orderID, decision, body.AdminResponse)
type DecideCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	decision      order.Decision
	adminResponse string

	guard guard.ConstructorGuard
}

// NewDecideCancellationCommand creates a command to decide a cancellation request.
// The decision must be Approved or Rejected; the admin response is optional.
func NewDecideCancellationCommand(
	orderID kernel.UUID,
	decision order.Decision,
	adminResponse string,
) (DecideCancellationCommand, error) {
	cmd := DecideCancellationCommand{
		adminResponse: adminResponse,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDecision(decision),
	); err != nil {
		return DecideCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideCancellationCommand) Validate() error {
	return c.guard.Validate(ErrDecideCancellationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose request is being decided.
func (c DecideCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Decision returns the admin's decision.
func (c DecideCancellationCommand) Decision() order.Decision {
	return c.decision
}

// AdminResponse returns the optional note to the customer.
func (c DecideCancellationCommand) AdminResponse() string {
	return c.adminResponse
}

func (c *DecideCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DecideCancellationCommand) setDecision(decision order.Decision) error {
	if decision != order.DecisionApproved && decision != order.DecisionRejected {
		return fmt.Errorf("%w: got %s", order.ErrInvalidCancellationDecision, decision)
	}

	c.decision = decision
	return nil
}
