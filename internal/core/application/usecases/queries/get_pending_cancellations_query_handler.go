package queries

import (
	"context"
	"encoding/json"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingCancellationsQueryHandler retrieves the arbitration backlog from the database.
// Joins the customers table so the admin console can show who is asking without
// a second round trip.
type GetPendingCancellationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCancellationsQueryHandler creates a handler for pending cancellation queries.
// Requires a GORM database connection for query execution.
func NewGetPendingCancellationsQueryHandler(db *gorm.DB) GetPendingCancellationsQueryHandler {
	return GetPendingCancellationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending cancellation requests.
// Results are sorted by request time ascending, so the oldest request is decided first.
func (h GetPendingCancellationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCancellationsQuery,
) ([]GetPendingCancellationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingCancellationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.items,
			o.amount,
			o.status,
			o.cancellation_reason,
			o.cancellation_requested_at,
			c.id,
			c.name,
			c.email,
			c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.cancellation_decision = ?
		ORDER BY o.cancellation_requested_at
	`, int(order.DecisionPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingCancellationsQueryResponse
		var orderID, customerID uuid.UUID
		var rawItems []byte
		var status int

		err = rows.Scan(
			&orderID,
			&rawItems,
			&resp.Amount,
			&status,
			&resp.Reason,
			&resp.RequestedAt,
			&customerID,
			&resp.Customer.Name,
			&resp.Customer.Email,
			&resp.Customer.Phone,
		)
		if err != nil {
			return nil, err
		}

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = oID

		cID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.Customer.ID = cID

		if err = json.Unmarshal(rawItems, &resp.Items); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
