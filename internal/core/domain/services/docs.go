// Package services provides domain services that implement business rules
// spanning multiple domain entities in the marketplace.
//
// The package includes:
//   - AccessPolicy: the per-role permission matrix deciding which actor may
//     perform which operation on an order
//   - Actor: the authenticated identity an operation runs on behalf of
//
// Domain services here are pure decision functions over supplied state; they
// never touch storage themselves.
package services
