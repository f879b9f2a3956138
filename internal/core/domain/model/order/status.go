package order

import (
	"fmt"

	"fixit/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no outgoing edge is defined for them.
// TransitionTo rejects only the Pending -> Completed shortcut; every other
// move between valid statuses is accepted as the current rule set stands.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order, whatever the client sends.
	Pending

	// InProgress means a worker is carrying out the order.
	InProgress

	// Completed means the work is done. Only completed orders can be rated.
	Completed

	// Cancelled means the order was abandoned.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "In Progress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "In Progress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus converts a client-supplied status code into a Status.
func ParseStatus(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no defined outgoing transition.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateTransition checks whether the order may move from s to target
// without performing the transition.
//
// Rejected:
//   - any invalid target (including Unknown)
//   - Pending -> Completed (work must start before it is completed)
//
// Returns:
//   - nil if the move is allowed
//   - a ValueIsInvalidError naming the edge otherwise
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s == Pending && target == Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition directly from %s to %s", s, target),
		)
	}

	return nil
}

// TransitionTo returns target if the move from s is allowed.
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.InProgress)
//	if err != nil {
//	    // Handle rejected transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransition(target); err != nil {
		return Unknown, err
	}
	return target, nil
}
