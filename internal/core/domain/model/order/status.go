package order

import (
	"fmt"

	"opsconsole/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit adjacency table so that
// illegal transitions are rejected uniformly in one place.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Shipped ──> Delivered
//	          │                 │
//	          └──> Cancelled <──┘
//
// Pending is the only initial state. Delivered and Cancelled are terminal
// states with no outgoing transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was called off before shipping. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation
// and parsing of externally supplied statuses.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// transitionTable is the adjacency table of the order lifecycle.
// A requested status is legal iff it appears in the row of the current status.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// ParseStatus converts an external string such as "pending" into a Status.
// Returns a validation error for anything outside the five valid states.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitionTable()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition from s to target.
//
// Returns:
//   - (target, nil) when the edge exists in the transition table
//   - (0, *errs.InvalidOrderTransitionError) naming both states otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidOrderTransitionError(s.String(), target.String())
	}
	return target, nil
}

// AllowsContentEdit reports whether customer details, the shipping address and
// notes may still be modified. Only Pending and Processing orders are editable.
func (s Status) AllowsContentEdit() bool {
	return s == Pending || s == Processing
}

// AllowsDeletion reports whether the order may be removed entirely.
// Only Pending orders can be deleted.
func (s Status) AllowsDeletion() bool {
	return s == Pending
}
