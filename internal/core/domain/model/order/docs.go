// Package order provides domain entities and business logic for order
// management in the delivery marketplace. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing order identity, details, driver
//     assignment, and lifecycle
//   - DeliveryStatus: a state machine enforcing valid delivery transitions
//   - PaymentStatus: the independent settlement lifecycle
//
// Key business rules:
//   - Orders are created pending/pending with no driver assigned
//   - Assignment is legal only while pending; delivered and cancelled are terminal
//   - Driver progression between picked, in_transit, and delivered is permissive
//   - Pickup, dropoff, description, and price are frozen once the order
//     leaves the pending status
//   - Orders are never deleted; cancellation is a status transition
//
// Which role may invoke which transition is decided by the authorization
// policy in the services package; this package only decides whether a
// transition is legal given the current state.
package order
