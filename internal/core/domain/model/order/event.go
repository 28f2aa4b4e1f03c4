package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Event is a named trigger requesting a state change on an order.
// Events are immutable, single-purpose messages; the set is closed.
type Event int

const (
	// UnknownEvent represents an invalid or undefined event.
	// This value (0) helps catch uninitialized Event values.
	UnknownEvent Event = iota

	// Pay requests the transition of a submitted order to Paid.
	Pay

	// Fulfill requests the transition of a paid order to Fulfilled.
	Fulfill

	// Cancel requests the transition of a submitted or paid order to Cancelled.
	Cancel
)

// Metadata keys attached to event submissions. The transition logic never
// reads metadata; the persistence hook logs it.
const (
	// PaymentConfirmationMetadataKey carries the payment confirmation number
	// on a Pay event.
	PaymentConfirmationMetadataKey = "paymentConfirmation"

	// CancellationReasonMetadataKey carries the reason on a Cancel event
	// issued by the system rather than the customer.
	CancellationReasonMetadataKey = "cancellationReason"
)

// EventMetadata is an opaque set of attributes attached to an event
// submission, such as a payment confirmation number. It is never interpreted
// by the transition logic.
type EventMetadata map[string]string

// getEventStrings returns a map of Event values to their string representations.
func getEventStrings() map[Event]string {
	return map[Event]string{
		UnknownEvent: "Unknown",
		Pay:          "Pay",
		Fulfill:      "Fulfill",
		Cancel:       "Cancel",
	}
}

// getValidEventStrings returns a map of only valid Event values.
func getValidEventStrings() map[Event]string {
	//nolint:exhaustive // UnknownEvent is intentionally excluded as it's invalid
	return map[Event]string{
		Pay:     "Pay",
		Fulfill: "Fulfill",
		Cancel:  "Cancel",
	}
}

// Validate checks if the Event value is valid.
//
// Valid events are: Pay, Fulfill, Cancel.
// UnknownEvent (0) and any other values are invalid.
func (e Event) Validate() error {
	if _, ok := getValidEventStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event is invalid", fmt.Errorf("%d is not a valid event", e))
	}
	return nil
}

// String returns the human-readable name of the event.
// It implements the fmt.Stringer interface and is safe to call on any Event
// value, including invalid ones, for which it returns "Unknown".
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "Unknown"
}
