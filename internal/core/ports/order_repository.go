package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists with the ID.
	Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	// UpdateState writes a state change conditionally on the state it was
	// computed from. The write is atomic: when the stored state no longer
	// equals from, no row changes and errs.StateConflictError is returned.
	UpdateState(ctx context.Context, orderID kernel.UUID, from order.State, to order.State) error

	// GetAllSubmittedBefore retrieves orders still in the Submitted state
	// that were placed before the cutoff. Used by the stale order
	// cancellation job.
	GetAllSubmittedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
