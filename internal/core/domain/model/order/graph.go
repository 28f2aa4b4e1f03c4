package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for rejected (state, event) pairs.
// Use errors.Is against it to classify validation failures.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError carries the rejected state and event for diagnostics.
// It is returned whenever the transition table has no entry for the pair,
// which includes every event submitted against a terminal state.
type InvalidTransitionError struct {
	From  State
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %s is not allowed in state %s", e.Event, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// transitionKey identifies a single edge of the lifecycle graph.
type transitionKey struct {
	from  State
	event Event
}

// transitions is the complete lifecycle graph, built once at package
// initialization and never mutated afterwards. Terminal states have no
// outgoing entries, so any event on them fails the lookup.
var transitions = mustBuildTransitions()

// mustBuildTransitions assembles and verifies the transition table.
// A malformed entry is a programming defect, so it panics rather than
// returning an error: the process must not start with a broken graph.
func mustBuildTransitions() map[transitionKey]State {
	edges := []struct {
		from  State
		event Event
		to    State
	}{
		{Submitted, Pay, Paid},
		{Submitted, Cancel, Cancelled},
		{Paid, Fulfill, Fulfilled},
		{Paid, Cancel, Cancelled},
	}

	table := make(map[transitionKey]State, len(edges))
	for _, edge := range edges {
		if err := edge.from.Validate(); err != nil {
			panic(fmt.Sprintf("transition table references undefined state %d: %v", edge.from, err))
		}
		if err := edge.event.Validate(); err != nil {
			panic(fmt.Sprintf("transition table references undefined event %d: %v", edge.event, err))
		}
		if err := edge.to.Validate(); err != nil {
			panic(fmt.Sprintf("transition table references undefined state %d: %v", edge.to, err))
		}
		if edge.from.IsTerminal() {
			panic(fmt.Sprintf("transition table defines an edge out of terminal state %s", edge.from))
		}

		key := transitionKey{from: edge.from, event: edge.event}
		if _, exists := table[key]; exists {
			panic(fmt.Sprintf("duplicate transition for state %s and event %s", edge.from, edge.event))
		}
		table[key] = edge.to
	}

	return table
}

// NextState is the transition validator: given the current state and an
// incoming event it returns the unique target state, or an
// InvalidTransitionError if the pair has no entry in the lifecycle graph.
//
// NextState is a pure function with no side effects; repeated calls with the
// same arguments always return the same outcome. The backing table is
// immutable, so it is safe for unsynchronized concurrent use.
func NextState(from State, event Event) (State, error) {
	if err := from.Validate(); err != nil {
		return Unknown, err
	}
	if err := event.Validate(); err != nil {
		return Unknown, err
	}

	target, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return Unknown, &InvalidTransitionError{From: from, Event: event}
	}

	return target, nil
}
