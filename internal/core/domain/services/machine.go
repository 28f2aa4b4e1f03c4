package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

var (
	// ErrMachineIsConsumed is returned when Submit is called on a machine
	// instance that has already processed an event. Each instance accepts
	// exactly one event; open a new one for the next.
	ErrMachineIsConsumed = errors.New("machine instance has already processed an event")

	// ErrMachineIsStopped is returned when Submit is called after Close.
	ErrMachineIsStopped = errors.New("machine instance is stopped")
)

// Phase describes the position of a machine instance in its own lifecycle.
// It is distinct from the order lifecycle the machine drives.
type Phase int

const (
	// PhaseStarted means the instance is anchored at the order's stored
	// state and ready to accept exactly one event.
	PhaseStarted Phase = iota + 1

	// PhaseApplied means the instance accepted its event and the new state
	// was persisted.
	PhaseApplied

	// PhaseRejected means the instance refused its event, either because the
	// transition was illegal or because persisting it failed.
	PhaseRejected

	// PhaseStopped means the instance was closed and accepts nothing.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "Started"
	case PhaseApplied:
		return "Applied"
	case PhaseRejected:
		return "Rejected"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// PersistenceHook is invoked after a transition is validated but before the
// in-memory aggregate changes. If the hook returns an error the transition is
// abandoned and the order keeps its previous state.
//
// The hook receives the order as it is before the transition, the triggering
// event with its metadata, and the target state to persist.
type PersistenceHook func(
	ctx context.Context, o *order.Order, event order.Event, meta order.EventMetadata, target order.State,
) error

// OrderFinder loads an order by its identifier. It is the read side the
// machine manager anchors instances on.
type OrderFinder interface {
	Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error)
}

// StateWriter persists a state change conditionally on the state it was
// computed from. Implementations must make the write atomic: if the stored
// state no longer matches from, no row changes and a StateConflictError is
// returned.
type StateWriter interface {
	UpdateState(ctx context.Context, orderID kernel.UUID, from order.State, to order.State) error
}

// NewRepositoryHook builds a PersistenceHook that writes the state change
// through the given StateWriter using a compare-and-set on the anchor state.
// Event metadata is logged, not stored; it exists for traceability.
func NewRepositoryHook(writer StateWriter, logger *slog.Logger) PersistenceHook {
	return func(
		ctx context.Context, o *order.Order, event order.Event, meta order.EventMetadata, target order.State,
	) error {
		if err := writer.UpdateState(ctx, o.ID(), o.State(), target); err != nil {
			return fmt.Errorf("persist state change for order %s: %w", o.ID(), err)
		}

		attrs := []any{
			slog.String("order_id", o.ID().String()),
			slog.String("event", event.String()),
			slog.String("from", o.State().String()),
			slog.String("to", target.String()),
		}
		for key, value := range meta {
			attrs = append(attrs, slog.String(key, value))
		}
		logger.InfoContext(ctx, "order state changed", attrs...)

		return nil
	}
}

// MachineManager opens short-lived state machine instances for orders.
// Instances are anchored at the order's stored state, accept exactly one
// event, and are closed immediately afterwards.
type MachineManager struct{}

// NewMachineManager creates a new MachineManager instance.
func NewMachineManager() MachineManager {
	return MachineManager{}
}

// Open loads the order by ID through the finder and returns a started machine
// instance anchored at the order's current state.
//
// Returns:
//   - errs.ObjectNotFoundError (propagated from the finder) when no order
//     exists with the given ID
//   - a validation error when the ID or hook is missing
func (m MachineManager) Open(
	ctx context.Context, finder OrderFinder, orderID kernel.UUID, hook PersistenceHook,
) (*Machine, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if finder == nil {
		return nil, errs.NewValueIsRequiredError("finder")
	}
	if hook == nil {
		return nil, errs.NewValueIsRequiredError("hook")
	}

	o, err := finder.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Machine{
		order: o,
		hook:  hook,
		phase: PhaseStarted,
	}, nil
}

// Machine is a single-use state machine instance bound to one order.
// It validates one event against the lifecycle graph, persists the outcome
// through its hook before mutating the aggregate, and is then done.
//
// A Machine is not safe for concurrent use; concurrency control happens at
// the persistence layer through the compare-and-set write.
type Machine struct {
	order *order.Order
	hook  PersistenceHook
	phase Phase
}

// Order returns the aggregate the machine is bound to. After a successful
// Submit the aggregate reflects the new state.
func (m *Machine) Order() *order.Order {
	return m.order
}

// Phase returns the instance's position in its own lifecycle.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Submit feeds exactly one event into the machine.
//
// The event is validated against the lifecycle graph first; an illegal pair
// rejects the instance without calling the hook. A legal transition fires the
// persistence hook, and only once it succeeds is the aggregate advanced. If
// the hook fails the order keeps its previous state and the instance is
// rejected.
//
// A second Submit on the same instance fails with ErrMachineIsConsumed.
func (m *Machine) Submit(ctx context.Context, event order.Event, meta order.EventMetadata) (order.State, error) {
	switch m.phase {
	case PhaseStarted:
	case PhaseStopped:
		return order.Unknown, ErrMachineIsStopped
	default:
		return order.Unknown, ErrMachineIsConsumed
	}

	target, err := order.NextState(m.order.State(), event)
	if err != nil {
		m.phase = PhaseRejected
		return order.Unknown, err
	}

	if err := m.hook(ctx, m.order, event, meta, target); err != nil {
		m.phase = PhaseRejected
		return order.Unknown, err
	}

	if _, err := m.order.Apply(event); err != nil {
		// Unreachable when the aggregate and the graph agree; kept as a
		// consistency check.
		m.phase = PhaseRejected
		return order.Unknown, err
	}

	m.phase = PhaseApplied
	return target, nil
}

// Close stops the instance. It is idempotent and safe to defer right after a
// successful Open.
func (m *Machine) Close() {
	m.phase = PhaseStopped
}
