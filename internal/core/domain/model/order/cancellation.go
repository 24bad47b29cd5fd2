package order

import (
	"fmt"
	"strings"
	"time"

	"foodadmin/internal/pkg/errs"
)

// Decision represents the outcome of a cancellation request.
//
// State transitions:
//
//	Pending ──> Approved
//	    └─────> Rejected
//
// Approved and Rejected are terminal for the request; an order gets at most
// one request over its lifetime, so there is no retry cycle.
type Decision int

const (
	// DecisionUnknown represents an invalid or undefined decision.
	// This value (0) helps catch uninitialized Decision values.
	DecisionUnknown Decision = iota

	// DecisionPending is the initial decision state of a new request,
	// awaiting admin triage.
	DecisionPending

	// DecisionApproved means the admin granted the cancellation.
	// The order is cancelled in the same mutation.
	DecisionApproved

	// DecisionRejected means the admin declined the cancellation.
	// The order continues its normal fulfillment lifecycle.
	DecisionRejected
)

// getDecisionStrings returns a map of Decision values to their string representations.
func getDecisionStrings() map[Decision]string {
	return map[Decision]string{
		DecisionUnknown:  "Unknown",
		DecisionPending:  "Pending",
		DecisionApproved: "Approved",
		DecisionRejected: "Rejected",
	}
}

// DecisionFromAction parses the admin API action string ("approved" or
// "rejected", case-insensitively) into a Decision.
func DecisionFromAction(action string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "approved":
		return DecisionApproved, nil
	case "rejected":
		return DecisionRejected, nil
	default:
		return DecisionUnknown, fmt.Errorf("%w: %q", ErrInvalidCancellationDecision, action)
	}
}

// Validate checks if the Decision value is valid.
// Valid decisions are: Pending, Approved, Rejected.
func (d Decision) Validate() error {
	switch d {
	case DecisionPending, DecisionApproved, DecisionRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision is invalid",
			fmt.Errorf("%d is not a valid decision", d))
	}
}

// String returns the human-readable name of the decision.
// Implements fmt.Stringer and is safe to call on any Decision value.
func (d Decision) String() string {
	if str, ok := getDecisionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// CancellationRequest is the customer-initiated cancellation sub-record
// embedded in an order. It exists only once a customer has asked for a
// cancellation, and keeps the admin's decision for audit.
//
// The request's decision lifecycle is owned by the Order aggregate; the
// struct itself only guards its own field consistency.
type CancellationRequest struct {
	reason        string
	requestedAt   time.Time
	decision      Decision
	adminResponse string
	decidedAt     *time.Time
}

// NewCancellationRequest creates a pending request with the customer's reason.
// The reason is required; requestedAt records when the customer asked.
func NewCancellationRequest(reason string, requestedAt time.Time) (*CancellationRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &CancellationRequest{
		reason:      reason,
		requestedAt: requestedAt,
		decision:    DecisionPending,
	}, nil
}

// RestoreCancellationRequest reconstructs a request from persistence.
// Unlike NewCancellationRequest it accepts any valid decision state.
func RestoreCancellationRequest(
	reason string,
	requestedAt time.Time,
	decision Decision,
	adminResponse string,
	decidedAt *time.Time,
) (*CancellationRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	return &CancellationRequest{
		reason:        reason,
		requestedAt:   requestedAt,
		decision:      decision,
		adminResponse: adminResponse,
		decidedAt:     decidedAt,
	}, nil
}

// Reason returns the customer-supplied cancellation reason.
func (r *CancellationRequest) Reason() string {
	return r.reason
}

// RequestedAt returns when the customer filed the request.
func (r *CancellationRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// Decision returns the current decision state of the request.
func (r *CancellationRequest) Decision() Decision {
	return r.decision
}

// AdminResponse returns the decision-maker's note, if any.
func (r *CancellationRequest) AdminResponse() string {
	return r.adminResponse
}

// DecidedAt returns when the request was decided, or nil while Pending.
func (r *CancellationRequest) DecidedAt() *time.Time {
	return r.decidedAt
}

// IsPending reports whether the request still awaits an admin decision.
func (r *CancellationRequest) IsPending() bool {
	return r.decision == DecisionPending
}

// decide records the admin's decision. Called only by Order.DecideCancellation,
// which has already checked that the request is pending and the decision valid.
func (r *CancellationRequest) decide(decision Decision, adminResponse string, decidedAt time.Time) {
	r.decision = decision
	r.adminResponse = adminResponse
	r.decidedAt = &decidedAt
}
