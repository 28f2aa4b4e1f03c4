package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// State represents the lifecycle position of an order.
// It is a closed set of four values plus the invalid zero value; the legal
// moves between them are defined by the transition table in graph.go.
//
// Lifecycle:
//
//	Submitted ──┬──> Paid ──┬──> Fulfilled
//	            │           │
//	            └───────────┴──> Cancelled
//
// Submitted is the only entry point; Fulfilled and Cancelled are terminal and
// have no outgoing transitions.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Submitted is the initial state assigned when an order is created.
	// Orders in this state await payment or cancellation.
	Submitted

	// Paid indicates payment has been confirmed.
	// Orders in this state await fulfillment or cancellation.
	Paid

	// Fulfilled indicates the order has been shipped and completed.
	// This is a terminal state with no further transitions allowed.
	Fulfilled

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStateStrings returns a map of State values to their string representations.
// All states are included for string conversion.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:   "Unknown",
		Submitted: "Submitted",
		Paid:      "Paid",
		Fulfilled: "Fulfilled",
		Cancelled: "Cancelled",
	}
}

// getValidStateStrings returns a map of only valid State values.
// Only valid states are included to support validation.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Submitted: "Submitted",
		Paid:      "Paid",
		Fulfilled: "Fulfilled",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the State value is valid.
//
// Valid states are: Submitted, Paid, Fulfilled, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure State values from external sources
// (e.g., database, API) are valid before use.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// It implements the fmt.Stringer interface and is safe to call on any State
// value, including invalid ones, for which it returns "Unknown".
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsInitial reports whether the state is the universal entry point of the
// order lifecycle. New orders are only ever created in this state.
func (s State) IsInitial() bool {
	return s == Submitted
}

// IsTerminal reports whether the state closes the order lifecycle.
// No event is accepted on an order in a terminal state.
func (s State) IsTerminal() bool {
	return s == Fulfilled || s == Cancelled
}
