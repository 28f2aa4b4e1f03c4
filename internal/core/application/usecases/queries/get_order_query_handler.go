package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns errs.ObjectNotFoundError when no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			amount_cents,
			placed_at,
			state
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one result row onto the response model.
func scanOrderRow(row rowScanner) (GetOrderQueryResponse, error) {
	var (
		resp  GetOrderQueryResponse
		id    uuid.UUID
		state int
	)

	if err := row.Scan(
		&id,
		&resp.ProductID,
		&resp.Quantity,
		&resp.AmountCents,
		&resp.PlacedAt,
		&state,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = orderID
	resp.PlacedAt = resp.PlacedAt.UTC()
	resp.State = order.State(state).String()
	return resp, nil
}
