package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("productID is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
	ErrAmountIsInvalid     = errors.New("amountCents must not be negative")
)

// CreateOrderCommand represents a request to submit a new order.
// Encapsulates the order identity, the purchased product, and the totals.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "sku-184", 2, 1990)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s submitted", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   string
	quantity    int
	amountCents int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order.
// Validates that the order ID is valid, the product reference is not empty,
// the quantity is positive, and the amount is not negative.
func NewCreateOrderCommand(
	orderID kernel.UUID, productID string, quantity int, amountCents int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setProductID(productID),
		orderCommand.setQuantity(quantity),
		orderCommand.setAmountCents(amountCents),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the reference to the purchased product.
func (c CreateOrderCommand) ProductID() string {
	return c.productID
}

// Quantity returns the number of units ordered.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// AmountCents returns the total monetary amount in cents.
func (c CreateOrderCommand) AmountCents() int64 {
	return c.amountCents
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setAmountCents(amountCents int64) error {
	if amountCents < 0 {
		return ErrAmountIsInvalid
	}

	c.amountCents = amountCents
	return nil
}
