package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a purchase order in the system. It is the aggregate root
// that carries the order attributes and its lifecycle state.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a product and have a positive quantity
//   - Monetary amount must not be negative
//   - Is only ever created in the Submitted state
//   - State changes only through Apply, which enforces the lifecycle graph
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// productID references the purchased product; opaque to the lifecycle engine
	productID string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// amountCents is the total monetary amount in cents (must not be negative)
	amountCents int64

	// placedAt records when the order was submitted
	placedAt time.Time

	// state is the current position in the order lifecycle
	state State

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Submitted state with validation.
// Submitted is the universal entry point of the lifecycle; there is no way to
// create an order in any other state through this constructor.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - productID: reference to the purchased product (must not be empty)
//   - quantity: number of units (must be positive)
//   - amountCents: total amount in cents (must not be negative)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, productID string, quantity int, amountCents int64) (*Order, error) {
	order := &Order{
		state:         Submitted,
		placedAt:      time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setProductID(productID),
		order.setQuantity(quantity),
		order.setAmountCents(amountCents),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored state
// and placement time. It validates all attributes, including that the stored
// state is one of the defined values, but performs no transition checks:
// whatever state the store holds is the anchor.
func RestoreOrder(
	id kernel.UUID, productID string, quantity int, amountCents int64, placedAt time.Time, state State,
) (*Order, error) {
	order := &Order{
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setProductID(productID),
		order.setQuantity(quantity),
		order.setAmountCents(amountCents),
		order.setState(state),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the reference to the purchased product.
func (o *Order) ProductID() string {
	return o.productID
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// AmountCents returns the total monetary amount in cents.
func (o *Order) AmountCents() int64 {
	return o.amountCents
}

// PlacedAt returns the time the order was submitted.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// State returns the current lifecycle state of the order.
func (o *Order) State() State {
	return o.state
}

// Apply advances the order's state according to the lifecycle graph.
//
// On success the order's state becomes the unique target for (current state,
// event). On failure the order is left untouched and the validator's
// InvalidTransitionError is returned, including for any event submitted
// against a terminal state.
func (o *Order) Apply(event Event) (State, error) {
	target, err := NextState(o.state, event)
	if err != nil {
		return Unknown, err
	}

	o.state = target
	return target, nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProductID validates and sets the product reference.
// This is a private method used only during construction.
func (o *Order) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	o.productID = productID
	return nil
}

// setQuantity validates and sets the order quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setAmountCents validates and sets the monetary amount.
// This is a private method used only during construction.
func (o *Order) setAmountCents(amountCents int64) error {
	if amountCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%d is negative", amountCents))
	}
	o.amountCents = amountCents
	return nil
}

// setState validates and sets the stored lifecycle state during restore.
// This is a private method used only during reconstruction from persistence.
func (o *Order) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.state = state
	return nil
}
