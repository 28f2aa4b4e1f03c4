// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by lifecycle state.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   string
	Quantity    int
	AmountCents int64
	PlacedAt    time.Time `gorm:"index"`
	State       int       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID().Bytes(),
		ProductID:   order.ProductID(),
		Quantity:    order.Quantity(),
		AmountCents: order.AmountCents(),
		PlacedAt:    order.PlacedAt(),
		State:       int(order.State()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.ProductID, dto.Quantity, dto.AmountCents, dto.PlacedAt.UTC(), order.State(dto.State))
}
