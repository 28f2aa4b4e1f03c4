package order_test

import (
	"errors"
	"fmt"
	"testing"

	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextState_AllPairs(t *testing.T) {
	allowed := map[[2]int]order.State{
		{int(order.Submitted), int(order.Pay)}:    order.Paid,
		{int(order.Submitted), int(order.Cancel)}: order.Cancelled,
		{int(order.Paid), int(order.Fulfill)}:     order.Fulfilled,
		{int(order.Paid), int(order.Cancel)}:      order.Cancelled,
	}

	states := []order.State{order.Submitted, order.Paid, order.Fulfilled, order.Cancelled}
	events := []order.Event{order.Pay, order.Fulfill, order.Cancel}

	for _, from := range states {
		for _, event := range events {
			from, event := from, event
			t.Run(fmt.Sprintf("%s plus %s", from, event), func(t *testing.T) {
				target, err := order.NextState(from, event)

				if expected, ok := allowed[[2]int{int(from), int(event)}]; ok {
					require.NoError(t, err)
					assert.Equal(t, expected, target)
					return
				}

				require.Error(t, err)
				assert.ErrorIs(t, err, order.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, target)

				var transitionErr *order.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, event, transitionErr.Event)
			})
		}
	}
}

func TestNextState_TerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []order.State{order.Fulfilled, order.Cancelled} {
		for _, event := range []order.Event{order.Pay, order.Fulfill, order.Cancel} {
			_, err := order.NextState(from, event)
			assert.ErrorIs(t, err, order.ErrInvalidTransition,
				"terminal state %s must reject event %s", from, event)
		}
	}
}

func TestNextState_InvalidInputs(t *testing.T) {
	t.Run("should reject unknown state", func(t *testing.T) {
		_, err := order.NextState(order.Unknown, order.Pay)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "state is invalid")
		assert.False(t, errors.Is(err, order.ErrInvalidTransition))
	})

	t.Run("should reject unknown event", func(t *testing.T) {
		_, err := order.NextState(order.Submitted, order.UnknownEvent)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "event is invalid")
		assert.False(t, errors.Is(err, order.ErrInvalidTransition))
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		_, err := order.NextState(order.State(99), order.Event(99))

		require.Error(t, err)
	})
}

func TestNextState_IsDeterministic(t *testing.T) {
	first, err := order.NextState(order.Submitted, order.Pay)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		target, err := order.NextState(order.Submitted, order.Pay)
		require.NoError(t, err)
		assert.Equal(t, first, target)
	}
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := &order.InvalidTransitionError{From: order.Fulfilled, Event: order.Pay}

	assert.Equal(t, "invalid transition: event Pay is not allowed in state Fulfilled", err.Error())
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
}
