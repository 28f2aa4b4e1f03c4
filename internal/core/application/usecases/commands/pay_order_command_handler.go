package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// PayOrderCommandHandler drives the Pay event through a state machine
// instance. The new state is persisted before the in-memory aggregate
// changes; an illegal transition or a concurrent writer leaves the order
// untouched.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	machines   services.MachineManager
	logger     *slog.Logger
}

// NewPayOrderCommandHandler creates a handler for order payment operations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		machines:   services.NewMachineManager(),
		logger:     logger,
	}
}

// Handle processes the payment command.
//
// Opens a machine instance anchored at the order's stored state, submits the
// Pay event with the confirmation number as metadata, and commits. Returns
// the aggregate in its new state.
//
// Returns:
//   - errs.ObjectNotFoundError when the order does not exist
//   - order.InvalidTransitionError when the order is not in a payable state
//   - errs.StateConflictError when a concurrent writer changed the order first
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
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

	meta := order.EventMetadata{order.PaymentConfirmationMetadataKey: cmd.PaymentConfirmation()}
	if _, err = machine.Submit(ctx, order.Pay, meta); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return machine.Order(), nil
}
