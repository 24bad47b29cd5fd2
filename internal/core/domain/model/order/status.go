package order

import (
	"fmt"
	"strings"

	"foodadmin/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Processing ──> Prepared ──> OutForDelivery ──> Delivered
//	     │             │              │
//	     └─────────────┴──────────────┴──────────> Cancelled
//
// The pipeline is forward-only; Delivered and Cancelled are terminal.
// Status is a value object that validates state transitions and provides
// string representations for persistence and the admin API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status when an order is placed.
	// The kitchen has accepted the order and is working on it.
	Processing

	// Prepared indicates the food is ready and waiting for pickup.
	Prepared

	// OutForDelivery indicates the order has left the restaurant.
	// Cancellation requests are no longer accepted from this point on.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled, either through an
	// approved cancellation request or by staff override.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Processing:     "Processing",
		Prepared:       "Prepared",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing:     "Processing",
		Prepared:       "Prepared",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getStatusTransitions returns the allowed transition table.
// An absent source status has no outgoing transitions.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Processing:     {Prepared, Cancelled},
		Prepared:       {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
	}
}

// legacyStatusAliases maps the free-form strings the previous dashboard used
// to the canonical enum, so existing admin builds keep working.
func legacyStatusAliases() map[string]Status {
	return map[string]Status{
		"food processing":       Processing,
		"your food is prepared": Prepared,
		"food prepared":         Prepared,
		"out for delivery":      OutForDelivery,
		"delivered":             Delivered,
		"cancelled":             Cancelled,
	}
}

// StatusFromString parses a status from its wire representation.
// Canonical names are matched case-insensitively; the legacy dashboard
// strings are accepted as aliases.
//
// Returns:
//   - the parsed Status on success
//   - error if the string names no known status
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}
	if status, ok := legacyStatusAliases()[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Processing, Prepared, OutForDelivery, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
// Delivered and Cancelled orders are retained for audit but never mutated again.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving
// from this status to next, without performing the transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error wrapping ErrOrderIsTerminal) if the current status is terminal
//   - (0, error wrapping ErrIllegalStatusTransition) if the table forbids the move
//
// This method is used by Order.ChangeStatus to enforce the state graph;
// it knows nothing about cancellation requests.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: %s accepts no further transitions", ErrOrderIsTerminal, s)
	}

	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalStatusTransition, s, next)
	}

	return next, nil
}
