package ports

import (
	"context"

	"foodadmin/internal/core/domain/model/customer"
	"foodadmin/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
// The console only ever adds and reads contact snapshots; account management
// lives elsewhere.
type CustomerRepository interface {
	// Add persists a new customer record to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
