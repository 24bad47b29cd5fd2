package queries

import (
	"errors"
	"time"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order for the admin list view,
// newest first, with the ordering customer's contact details attached.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order row in the admin list view.
type GetAllOrdersQueryResponse struct {
	ID           kernel.UUID
	Items        []ItemResponse
	Amount       int64
	Address      AddressResponse
	Status       string
	CreatedAt    time.Time
	Customer     CustomerResponse
	Cancellation *CancellationResponse
}

// ItemResponse represents a single order line.
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AddressResponse represents the delivery address snapshot.
type AddressResponse struct {
	Name    string
	Phone   string
	Street  string
	City    string
	State   string
	ZipCode string
}

// CancellationResponse represents the cancellation request attached to an
// order, if the customer ever filed one.
type CancellationResponse struct {
	Reason        string
	RequestedAt   time.Time
	Decision      string
	AdminResponse string
	DecidedAt     *time.Time
}
