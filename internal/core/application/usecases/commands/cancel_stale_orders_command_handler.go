package commands

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

const staleCancellationReason = "not paid in time"

// CancelStaleOrdersCommandHandler cancels orders left unpaid for too long.
// Each stale order goes through its own state machine instance, so an order
// that gets paid while the sweep runs simply loses the compare-and-set race
// and is skipped.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	machines   services.MachineManager
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory, logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		machines:   services.NewMachineManager(),
		logger:     logger,
	}
}

// Handle cancels every order still Submitted and placed before now minus
// OlderThan. Returns the number of orders cancelled. Orders that lose the
// race to a concurrent payment or cancellation are logged and skipped;
// only infrastructure failures abort the sweep.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	staleOrders, err := repo.GetAllSubmittedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	hook := services.NewRepositoryHook(repo, h.logger)
	meta := order.EventMetadata{order.CancellationReasonMetadataKey: staleCancellationReason}

	cancelled := 0
	for _, staleOrder := range staleOrders {
		machine, openErr := h.machines.Open(ctx, repo, staleOrder.ID(), hook)
		if openErr != nil {
			h.logger.WarnContext(ctx, "skipping stale order",
				slog.String("order_id", staleOrder.ID().String()),
				slog.Any("error", openErr))
			continue
		}

		if _, submitErr := machine.Submit(ctx, order.Cancel, meta); submitErr != nil {
			h.logger.WarnContext(ctx, "stale order not cancelled",
				slog.String("order_id", staleOrder.ID().String()),
				slog.Any("error", submitErr))
			machine.Close()
			continue
		}

		machine.Close()
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
