package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
	ErrPaymentConfirmationIsRequired = errors.New("paymentConfirmation is required")
)

// PayOrderCommand represents a request to record payment for an order.
// The payment confirmation number is carried as event metadata for
// traceability; it is not interpreted by the lifecycle engine.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	paymentConfirmation string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order.
// Validates that the order ID is valid and the confirmation number is present.
func NewPayOrderCommand(orderID kernel.UUID, paymentConfirmation string) (PayOrderCommand, error) {
	payCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payCommand.setOrderID(orderID),
		payCommand.setPaymentConfirmation(paymentConfirmation),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return payCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentConfirmation returns the payment confirmation number.
func (c PayOrderCommand) PaymentConfirmation() string {
	return c.paymentConfirmation
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setPaymentConfirmation(paymentConfirmation string) error {
	if paymentConfirmation == "" {
		return ErrPaymentConfirmationIsRequired
	}

	c.paymentConfirmation = paymentConfirmation
	return nil
}
