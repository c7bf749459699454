package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle stage of a physical delivery.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> InTransit ──> Delivered
//	   │            │           │            │
//	   └────────────┴───────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Driver progression between Picked, InTransit, and Delivered is deliberately
// permissive — the machine does not require that Picked precedes InTransit.
//
// DeliveryStatus is a value object that validates state transitions and
// provides string representations for persistence and display.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a driver.
	DeliveryPending

	// DeliveryAssigned indicates the order has been assigned to a driver.
	DeliveryAssigned

	// DeliveryPicked indicates the driver has collected the package.
	DeliveryPicked

	// DeliveryInTransit indicates the package is on its way to the dropoff.
	DeliveryInTransit

	// DeliveryDelivered indicates the package reached its destination.
	// This is a terminal state with no further transitions allowed.
	DeliveryDelivered

	// DeliveryCancelled indicates the order was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	DeliveryCancelled
)

// getDeliveryStatusStrings returns the wire representation of every status,
// including the invalid zero value.
func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "unknown",
		DeliveryPending:   "pending",
		DeliveryAssigned:  "assigned",
		DeliveryPicked:    "picked",
		DeliveryInTransit: "in_transit",
		DeliveryDelivered: "delivered",
		DeliveryCancelled: "cancelled",
	}
}

// getValidDeliveryStatusStrings returns only valid statuses, to support validation.
func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryPending:   "pending",
		DeliveryAssigned:  "assigned",
		DeliveryPicked:    "picked",
		DeliveryInTransit: "in_transit",
		DeliveryDelivered: "delivered",
		DeliveryCancelled: "cancelled",
	}
}

// DeliveryStatusFromString parses a wire representation into a DeliveryStatus.
// Returns an error for anything outside the six defined values.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getValidDeliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the DeliveryStatus value is one of the six defined
// statuses. DeliveryUnknown (0) and any other values are invalid.
// Used to ensure status values from external sources (database, API) are
// valid before use.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire representation of the status: "pending",
// "assigned", "picked", "in_transit", "delivered", or "cancelled".
// Returns "unknown" for invalid values. Implements fmt.Stringer and is safe
// to call on any DeliveryStatus value.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the two terminal states.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (driver assignment)
//
// Any other current status is rejected: an order that already has a driver,
// or has progressed past assignment, cannot be assigned again.
//
// Returns:
//   - (DeliveryAssigned, nil) on valid transition
//   - (0, InvalidStateError) if the order is not pending
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if s != DeliveryPending {
		return 0, errs.NewInvalidStateError("assign driver", s.String())
	}

	return DeliveryAssigned, nil
}

// Progress transitions the status to one of the driver-settable values:
// Picked, InTransit, or Delivered.
//
// The machine does not enforce strict forward-only ordering between the
// driver-settable values; it only protects terminal states from overwrite.
//
// Returns:
//   - (target, nil) on valid transition
//   - (0, InvalidStateError) if the current status is terminal or still pending
//   - (0, ValueIsInvalidError) if target is not a driver-settable status
func (s DeliveryStatus) Progress(target DeliveryStatus) (DeliveryStatus, error) {
	if target != DeliveryPicked && target != DeliveryInTransit && target != DeliveryDelivered {
		return 0, errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%s is not a driver-settable status", target.String()))
	}

	if s.IsTerminal() || s == DeliveryPending {
		return 0, errs.NewInvalidStateError("update delivery status", s.String())
	}

	return target, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from Pending, Assigned, Picked, and InTransit. Cancelling a
// delivered order is rejected, and re-cancelling a cancelled order is
// rejected rather than treated as a no-op.
//
// Returns:
//   - (DeliveryCancelled, nil) on valid transition
//   - (0, InvalidStateError) if the current status is terminal
func (s DeliveryStatus) Cancel() (DeliveryStatus, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}

	return DeliveryCancelled, nil
}

// Override transitions the status to any valid value without ordering
// constraints. This is the administrative path: admins may move an order to
// any status in a single step, but terminal states still permit no further
// mutation.
//
// Returns:
//   - (target, nil) on valid transition
//   - (0, InvalidStateError) if the current status is terminal
//   - (0, ValueIsInvalidError) if target is not a defined status
func (s DeliveryStatus) Override(target DeliveryStatus) (DeliveryStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("update delivery status", s.String())
	}

	return target, nil
}
