package queries

import (
	"errors"
	"time"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/pkg/guard"
)

var (
	ErrGetPendingCancellationsQueryIsNotConstructed = errors.New(
		"GetPendingCancellationsQuery must be created via NewGetPendingCancellationsQuery constructor",
	)
)

// GetPendingCancellationsQuery retrieves the cancellation requests awaiting an
// admin decision, oldest request first so the longest-waiting customer is
// handled before newer arrivals.
//
// Example:
//
//	query := NewGetPendingCancellationsQuery()
//	handler := NewGetPendingCancellationsQueryHandler(db)
//
//	requests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending cancellations: %w", err)
//	}
//
//	fmt.Printf("%d requests awaiting decision\n", len(requests))
type GetPendingCancellationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCancellationsQuery creates a query to retrieve pending cancellation requests.
// This is a parameterless query that fetches the whole arbitration backlog.
func NewGetPendingCancellationsQuery() GetPendingCancellationsQuery {
	return GetPendingCancellationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingCancellationsQueryIsNotConstructed if validation fails.
func (q GetPendingCancellationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCancellationsQueryIsNotConstructed)
}

// GetPendingCancellationsQueryResponse represents a single pending request
// with enough order and customer context for the admin to decide it.
type GetPendingCancellationsQueryResponse struct {
	OrderID     kernel.UUID
	Items       []ItemResponse
	Amount      int64
	Status      string
	Reason      string
	RequestedAt time.Time
	Customer    CustomerResponse
}

// CustomerResponse carries the requesting customer's contact details.
type CustomerResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}
