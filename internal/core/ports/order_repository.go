// Package ports defines repository interfaces for the admin console core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update must be conditioned on the aggregate's concurrency version: a write
// that lost a race against another mutation of the same order fails with an
// error matching errs.ErrVersionIsInvalid instead of silently overwriting.
// That is what serializes concurrent admins deciding the same request.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with an errs.ErrVersionIsInvalid error if the stored version no
	// longer matches the aggregate's, and with errs.ErrObjectNotFound if the
	// order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its cancellation request if one exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWithPendingCancellation retrieves all orders whose cancellation
	// request is still pending, ordered by requestedAt ascending. Oldest
	// first is a fairness contract for admin triage, not incidental.
	GetAllWithPendingCancellation(ctx context.Context) ([]*order.Order, error)
}
