package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// CancelOrderCommandHandler drives the Cancel event through a state machine
// instance. Cancelled is terminal; further events on the order are rejected.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	machines   services.MachineManager
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		machines:   services.NewMachineManager(),
		logger:     logger,
	}
}

// Handle processes the cancellation command and returns the aggregate in its
// new state. Error semantics match PayOrderCommandHandler.Handle.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	var meta order.EventMetadata
	if cmd.Reason() != "" {
		meta = order.EventMetadata{order.CancellationReasonMetadataKey: cmd.Reason()}
	}

	if _, err = machine.Submit(ctx, order.Cancel, meta); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return machine.Order(), nil
}
