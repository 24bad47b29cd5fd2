// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are stored as a JSONB document since they are immutable after placement
// and never queried individually. The version column backs the optimistic
// concurrency check in Update.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;index"`
	Items        []byte          `gorm:"type:jsonb"`
	Amount       int64           `gorm:"type:bigint"`
	Address      AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Status       int             `gorm:"index"`
	Cancellation CancellationDTO `gorm:"embedded;embeddedPrefix:cancellation_"`
	CreatedAt    time.Time
	Version      int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address snapshot within the order table.
type AddressDTO struct {
	Name    string
	Phone   string
	Street  string
	City    string
	State   string
	ZipCode string
}

// CancellationDTO represents the embedded cancellation request columns.
// Decision zero means no request was ever filed for the order; RequestedAt
// and DecidedAt are nullable for the same reason.
type CancellationDTO struct {
	Reason        string
	RequestedAt   *time.Time
	Decision      int `gorm:"index"`
	AdminResponse string
	DecidedAt     *time.Time
}

// itemDTO is the JSONB element shape for a single order line.
type itemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{Name: item.Name(), Quantity: item.Quantity()})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	address := aggregate.Address()
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      rawItems,
		Amount:     aggregate.Amount(),
		Address: AddressDTO{
			Name:    address.Name(),
			Phone:   address.Phone(),
			Street:  address.Street(),
			City:    address.City(),
			State:   address.State(),
			ZipCode: address.ZipCode(),
		},
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		Version:   aggregate.Version(),
	}

	if request := aggregate.CancellationRequest(); request != nil {
		requestedAt := request.RequestedAt()
		dto.Cancellation = CancellationDTO{
			Reason:        request.Reason(),
			RequestedAt:   &requestedAt,
			Decision:      int(request.Decision()),
			AdminResponse: request.AdminResponse(),
			DecidedAt:     request.DecidedAt(),
		}
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including any cancellation request using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.Name, raw.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Address.Name,
		dto.Address.Phone,
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	var cancellation *order.CancellationRequest
	if dto.Cancellation.Decision != int(order.DecisionUnknown) && dto.Cancellation.RequestedAt != nil {
		cancellation, err = order.RestoreCancellationRequest(
			dto.Cancellation.Reason,
			*dto.Cancellation.RequestedAt,
			order.Decision(dto.Cancellation.Decision),
			dto.Cancellation.AdminResponse,
			dto.Cancellation.DecidedAt,
		)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		dto.Amount,
		address,
		order.Status(dto.Status),
		cancellation,
		dto.CreatedAt,
		dto.Version,
	)
}
