package order

import (
	"errors"
	"fmt"
	"time"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsTerminal is returned when mutating an order whose status is
	// Delivered or Cancelled. Terminal orders are retained for audit only.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")

	// ErrIllegalStatusTransition is returned when a requested status change
	// is not reachable from the current status in the transition table.
	ErrIllegalStatusTransition = errors.New("status transition is not allowed")

	// ErrPendingCancellationConflict is returned when staff tries to cancel
	// an order directly while a cancellation request is pending. The admin
	// must decide the request instead, so two cancellation paths never race
	// on the same order.
	ErrPendingCancellationConflict = errors.New("order has a pending cancellation request")

	// ErrCancellationNotAllowed is returned when a cancellation request is
	// filed after the order has left the kitchen (OutForDelivery or later).
	ErrCancellationNotAllowed = errors.New("order status does not allow a cancellation request")

	// ErrDuplicateCancellationRequest is returned when a cancellation request
	// is filed for an order that already has one, in any decision state.
	// One request per order; a rejected request cannot be retried.
	ErrDuplicateCancellationRequest = errors.New("order already has a cancellation request")

	// ErrNoPendingCancellationRequest is returned when deciding an order
	// that has no request, or whose request was already decided.
	ErrNoPendingCancellationRequest = errors.New("order has no pending cancellation request")

	// ErrInvalidCancellationDecision is returned when a decision is neither
	// Approved nor Rejected.
	ErrInvalidCancellationDecision = errors.New("decision must be Approved or Rejected")
)

// Order is the aggregate root for a placed food order. It owns the
// fulfillment status and the optional cancellation request, and is the only
// place where the two are mutated, which keeps them consistent:
//
//   - status changes go through ChangeStatus and the Status transition table
//   - the cancellation workflow goes through RequestCancellation and
//     DecideCancellation; approving a request cancels the order in the same call
//
// Invariants:
//   - at most one cancellation request over the order's lifetime
//   - status becomes Cancelled only via an approved request or a staff
//     override while no request is pending
//   - Delivered and Cancelled orders accept no further mutations
//
// Orders are created by the ordering flow with status Processing and are
// never deleted.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the ordering customer
	customerID kernel.UUID

	// items is the fixed list of order lines
	items []Item

	// amount is the monetary total in minor currency units (must be positive)
	amount int64

	// address is the immutable delivery snapshot
	address Address

	// status is the current fulfillment state
	status Status

	// cancellation is the optional customer cancellation request
	cancellation *CancellationRequest

	// createdAt is when the order was placed
	createdAt time.Time

	// version is the optimistic-concurrency token managed by the repository
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a freshly placed order in Processing status.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the ordering customer
//   - items: at least one order line
//   - amount: monetary total in minor units, positive
//   - address: delivery snapshot created via NewAddress
//   - createdAt: placement time
//
// Returns the order or a joined validation error if any input is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	amount int64,
	address Address,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Processing,
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setAmount(amount),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// optional cancellation request, and concurrency version. Unlike NewOrder it
// accepts any valid status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	amount int64,
	address Address,
	status Status,
	cancellation *CancellationRequest,
	createdAt time.Time,
	version int,
) (*Order, error) {
	order := &Order{
		cancellation:  cancellation,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setAmount(amount),
		order.setAddress(address),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was created through a factory function.
// Returns ErrOrderIsNotConstructed otherwise. Called when reconstructing
// orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Amount returns the monetary total in minor currency units.
func (o *Order) Amount() int64 {
	return o.amount
}

// Address returns the delivery address snapshot.
func (o *Order) Address() Address {
	return o.address
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CancellationRequest returns the cancellation sub-record.
// Returns nil if the customer never requested a cancellation.
func (o *Order) CancellationRequest() *CancellationRequest {
	return o.cancellation
}

// HasPendingCancellation reports whether a cancellation request is awaiting
// an admin decision.
func (o *Order) HasPendingCancellation() bool {
	return o.cancellation != nil && o.cancellation.IsPending()
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency token.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus moves the order along the fulfillment pipeline.
//
// This method enforces the following business rules:
//   - newStatus must be one of the five valid statuses
//   - a terminal order (Delivered, Cancelled) accepts no changes
//   - the move must be allowed by the transition table (forward-only)
//   - a direct move to Cancelled is refused while a cancellation request is
//     pending; the admin must decide the request instead
//
// Returns:
//   - nil on success; the status is updated, the cancellation sub-record
//     is untouched
//   - an error wrapping ErrOrderIsTerminal, ErrIllegalStatusTransition, or
//     ErrPendingCancellationConflict, or a validation error for an unknown
//     status; the order is unchanged on any error
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == Cancelled && o.HasPendingCancellation() {
		return fmt.Errorf("%w: decide the request instead of cancelling directly",
			ErrPendingCancellationConflict)
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// RequestCancellation files a customer cancellation request on the order.
//
// This method enforces the following business rules:
//   - at most one request per order, ever (no retry after rejection)
//   - the order must still be in the kitchen (Processing or Prepared);
//     once OutForDelivery or later, requests are rejected by policy
//   - the reason is required
//
// On success the order carries a Pending request with requestedAt set.
func (o *Order) RequestCancellation(reason string, requestedAt time.Time) error {
	if o.cancellation != nil {
		return fmt.Errorf("%w: request is %s",
			ErrDuplicateCancellationRequest, o.cancellation.Decision())
	}

	if o.status != Processing && o.status != Prepared {
		return fmt.Errorf("%w: order is %s", ErrCancellationNotAllowed, o.status)
	}

	request, err := NewCancellationRequest(reason, requestedAt)
	if err != nil {
		return err
	}

	o.cancellation = request
	return nil
}

// DecideCancellation records the admin's decision on the pending request.
//
// This method enforces the following business rules:
//   - the decision must be Approved or Rejected
//   - a terminal order cannot be decided, regardless of request state (the
//     order may have been delivered while the request sat in the queue)
//   - there must be a pending request
//
// On Approved, the request is marked Approved and the order status becomes
// Cancelled in the same mutation; the two can never diverge. On Rejected,
// the decision and optional note are recorded and the status is unchanged,
// so the order continues its normal lifecycle.
func (o *Order) DecideCancellation(decision Decision, adminResponse string, decidedAt time.Time) error {
	if decision != DecisionApproved && decision != DecisionRejected {
		return fmt.Errorf("%w: got %s", ErrInvalidCancellationDecision, decision)
	}

	if o.status.IsTerminal() {
		return fmt.Errorf("%w: order is %s", ErrOrderIsTerminal, o.status)
	}

	if !o.HasPendingCancellation() {
		return ErrNoPendingCancellationRequest
	}

	o.cancellation.decide(decision, adminResponse, decidedAt)
	if decision == DecisionApproved {
		o.status = Cancelled
	}

	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the order lines. At least one line is required.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setAmount validates and sets the monetary total. Must be positive.
func (o *Order) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	o.amount = amount
	return nil
}

// setAddress validates and sets the delivery snapshot.
func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
