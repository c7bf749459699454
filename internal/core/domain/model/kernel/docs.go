// Package kernel provides shared value objects used across the marketplace
// domain model.
//
// The package includes:
//   - UUID: immutable identifier value object wrapping github.com/google/uuid
//   - Location: validated street address with geographic coordinates
//
// All value objects follow the constructor-guard pattern: zero values are
// invalid and every instance must be created through a factory function that
// enforces its invariants.
package kernel
