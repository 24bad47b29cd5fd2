package queries

import (
	"context"
	"encoding/json"
	"time"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order list from the database.
// This is the read model behind the admin dashboard: it bypasses the aggregate
// and reads rows directly, joining customers for contact details.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order list query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.items,
			o.amount,
			o.address_name,
			o.address_phone,
			o.address_street,
			o.address_city,
			o.address_state,
			o.address_zip_code,
			o.status,
			o.cancellation_reason,
			o.cancellation_requested_at,
			o.cancellation_decision,
			o.cancellation_admin_response,
			o.cancellation_decided_at,
			o.created_at,
			c.id,
			c.name,
			c.email,
			c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var orderID, customerID uuid.UUID
		var rawItems []byte
		var status, decision int
		var reason, adminResponse string
		var requestedAt, decidedAt *time.Time

		err = rows.Scan(
			&orderID,
			&rawItems,
			&resp.Amount,
			&resp.Address.Name,
			&resp.Address.Phone,
			&resp.Address.Street,
			&resp.Address.City,
			&resp.Address.State,
			&resp.Address.ZipCode,
			&status,
			&reason,
			&requestedAt,
			&decision,
			&adminResponse,
			&decidedAt,
			&resp.CreatedAt,
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
		resp.ID = oID

		cID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.Customer.ID = cID

		if err = json.Unmarshal(rawItems, &resp.Items); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()

		if decision != int(order.DecisionUnknown) && requestedAt != nil {
			resp.Cancellation = &CancellationResponse{
				Reason:        reason,
				RequestedAt:   *requestedAt,
				Decision:      order.Decision(decision).String(),
				AdminResponse: adminResponse,
				DecidedAt:     decidedAt,
			}
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
