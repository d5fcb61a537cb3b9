package order

import (
	"fmt"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Confirmed ──┬──> Delivered
//	          │                │
//	          └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal states with no further transitions.
// Processing is a legacy stored value kept for compatibility with existing
// records; no transition produces it.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first submitted.
	// Orders in this status are awaiting review by the administrator.
	StatusPending

	// StatusConfirmed indicates the administrator accepted the order.
	// Confirmed orders are awaiting delivery.
	StatusConfirmed

	// StatusProcessing is a legacy value present in historical records.
	// It is accepted when restoring orders but never produced by a transition.
	StatusProcessing

	// StatusDelivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was rejected by the administrator.
	// This is a final state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their persisted string form.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Processing, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted, lowercase name of the status.
// Returns "unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Accept transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other current status results in a state conflict error, so accepting
// an already-confirmed or cancelled order never silently overwrites state.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewConflictErrorWithCause("status", s.String(),
			fmt.Errorf("only pending orders can be accepted"))
	}
	return StatusConfirmed, nil
}

// Reject transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Any other current status results in a state conflict error.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewConflictErrorWithCause("status", s.String(),
			fmt.Errorf("only pending orders can be rejected"))
	}
	return StatusCancelled, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Confirmed -> Delivered
//
// Pending orders must be accepted first; terminal orders cannot be delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewConflictErrorWithCause("status", s.String(),
			fmt.Errorf("only confirmed orders can be delivered"))
	}
	return StatusDelivered, nil
}
