package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// FulfillOrderCommandHandler drives the Fulfill event through a state machine
// instance. Only paid orders can be fulfilled; Fulfilled is terminal.
type FulfillOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	machines   services.MachineManager
	logger     *slog.Logger
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment operations.
func NewFulfillOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory: uowFactory,
		machines:   services.NewMachineManager(),
		logger:     logger,
	}
}

// Handle processes the fulfillment command and returns the aggregate in its
// new state. Error semantics match PayOrderCommandHandler.Handle.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	machine, err := h.machines.Open(ctx, repo, cmd.OrderID(), services.NewRepositoryHook(repo, h.logger))
	if err != nil {
		return nil, err
	}
	defer machine.Close()

	if _, err = machine.Submit(ctx, order.Fulfill, nil); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return machine.Order(), nil
}
