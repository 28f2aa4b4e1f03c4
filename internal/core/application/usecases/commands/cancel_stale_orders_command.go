package commands

import (
	"errors"
	"time"

	"orders/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// CancelStaleOrdersCommand represents a request to cancel all orders that
// have sat in the Submitted state longer than the given age. Used by the
// periodic cleanup job.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale orders.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setOlderThan(olderThan); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age an unpaid order must have to be cancelled.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
