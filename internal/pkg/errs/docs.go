// Package errs provides standardized error types for the marketplace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one structured error type per business error kind:
//   - ObjectNotFoundError: an entity is absent
//   - ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError:
//     malformed or missing input
//   - AuthorizationDeniedError: the actor lacks permission for the action
//   - InvalidStateError: the action is not legal in the entity's current state
//   - ConflictError: a concurrent-mutation race detected via conditional update
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// All of these represent local business-rule decisions: no retries are
// appropriate, and the transport layer is responsible for translating each
// kind into a response code. Storage-layer error types never cross the core
// boundary; repositories convert them into one of these kinds.
package errs
