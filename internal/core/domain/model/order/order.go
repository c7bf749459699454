package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// PriceMin is the exclusive lower bound for an order price.
	PriceMin float64 = 0
	// PriceMax is the inclusive upper bound for an order price.
	PriceMax float64 = 10000
	// DescriptionMaxLength bounds the package description.
	DescriptionMaxLength = 1000
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a delivery order in the marketplace. It is the aggregate
// root that manages the order lifecycle from creation through driver
// assignment to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Pickup and dropoff locations must be valid
//   - Price must be positive and bounded, description non-empty and bounded
//   - driverID is nil until a driver is assigned, and set exactly when the
//     delivery status leaves pending via assignment
//   - Delivery status transitions follow the DeliveryStatus state machine;
//     delivered and cancelled are terminal
//   - Pickup, dropoff, description, and price are mutable only while the
//     delivery status is pending
//   - Orders are never deleted; cancellation is a status transition
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Role-based permissions are not
// the aggregate's concern: the authorization policy decides who may invoke
// which transition, the aggregate decides whether the transition is legal.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owning customer's ID (required)
	customerID kernel.UUID

	// driverID is the assigned driver's ID (nil until assignment)
	driverID *kernel.UUID

	// pickup is where the package is collected
	pickup kernel.Location

	// dropoff is where the package is delivered
	dropoff kernel.Location

	// description describes the package contents
	description string

	// price is the agreed delivery price
	price float64

	// deliveryStatus is the current stage of the physical delivery
	deliveryStatus DeliveryStatus

	// paymentStatus is the current stage of monetary settlement
	paymentStatus PaymentStatus

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a fresh order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: unique identifier for the order (must be valid UUID)
//   - customerID: owning customer's identifier (must be valid UUID)
//   - pickup: validated pickup location
//   - dropoff: validated dropoff location
//   - description: package description (non-empty, bounded)
//   - price: delivery price (positive, bounded)
//
// Returns:
//   - *Order: the created order if all validations pass, in delivery status
//     pending, payment status pending, with no driver assigned
//   - error: validation error if any parameter is invalid
//
// Example:
//
//	pickup, _ := kernel.NewLocation("120 Broadway", 40.0, -74.0)
//	dropoff, _ := kernel.NewLocation("1 Main St", 40.1, -74.1)
//	order, err := NewOrder(kernel.NewUUID(), customerID, pickup, dropoff, "documents", 25.00)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickup kernel.Location,
	dropoff kernel.Location,
	description string,
	price float64,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		deliveryStatus: DeliveryPending,
		paymentStatus:  PaymentPending,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPickup(pickup),
		order.setDropoff(dropoff),
		order.setDescription(description),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always produces a fresh pending order, this
// constructor restores an order to its previously persisted state including
// statuses, driver assignment, and timestamps. The restored order behaves
// identically to one created through normal domain operations.
//
// Returns a validation error if any field is invalid or if the driver
// assignment is inconsistent with the delivery status (a pending order must
// have no driver; any later status must have one).
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	pickup kernel.Location,
	dropoff kernel.Location,
	description string,
	price float64,
	deliveryStatus DeliveryStatus,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPickup(pickup),
		order.setDropoff(dropoff),
		order.setDescription(description),
		order.setPrice(price),
		deliveryStatus.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	if err := validateDriverAssignment(deliveryStatus, driverID != nil); err != nil {
		return nil, err
	}

	order.deliveryStatus = deliveryStatus
	order.paymentStatus = paymentStatus
	order.driverID = driverID
	return order, nil
}

// validateDriverAssignment enforces the consistency between delivery status
// and driver assignment: a pending order has no driver, every other
// non-cancelled status requires one. A cancelled order may or may not carry
// a driver depending on when it was cancelled.
func validateDriverAssignment(status DeliveryStatus, hasDriver bool) error {
	if status == DeliveryPending && hasDriver {
		return errs.NewValueIsInvalidErrorWithCause("driver assignment",
			errors.New("a pending order cannot have a driver"))
	}
	if !hasDriver && status != DeliveryPending && status != DeliveryCancelled {
		return errs.NewValueIsInvalidErrorWithCause("driver assignment",
			errors.New(status.String()+" order must have a driver"))
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct; it should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the assigned driver's identifier, or nil if unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Pickup returns the pickup location.
func (o *Order) Pickup() kernel.Location {
	return o.pickup
}

// Dropoff returns the dropoff location.
func (o *Order) Dropoff() kernel.Location {
	return o.dropoff
}

// Description returns the package description.
func (o *Order) Description() string {
	return o.description
}

// Price returns the delivery price.
func (o *Order) Price() float64 {
	return o.price
}

// DeliveryStatus returns the current delivery status.
func (o *Order) DeliveryStatus() DeliveryStatus {
	return o.deliveryStatus
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign assigns the order to a driver and moves the delivery status from
// pending to assigned.
//
// Business rules:
//   - The driver ID must be valid
//   - The order must currently be pending; an order that already has a
//     driver cannot be assigned again
//
// Returns:
//   - nil on successful assignment
//   - error if the driver ID is invalid or the order is not pending
//
// After successful assignment DriverID() returns the driver and the delivery
// status is assigned.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	o.deliveryStatus = newStatus
	o.driverID = &driverID
	o.touch()
	return nil
}

// ProgressDelivery moves the delivery status along the driver path: picked,
// in_transit, or delivered. Progression is deliberately permissive — any of
// the three may be set in a single step — but terminal states are protected
// and a pending (unassigned) order cannot progress.
//
// Whether the caller is the assigned driver is the authorization policy's
// decision, not the aggregate's.
func (o *Order) ProgressDelivery(target DeliveryStatus) error {
	newStatus, err := o.deliveryStatus.Progress(target)
	if err != nil {
		return err
	}

	o.deliveryStatus = newStatus
	o.touch()
	return nil
}

// OverrideDeliveryStatus sets the delivery status to any defined value
// without ordering constraints. This is the administrative path; terminal
// states still permit no further mutation.
//
// Setting the status back to pending clears the driver assignment so the
// pending-iff-unassigned invariant holds.
func (o *Order) OverrideDeliveryStatus(target DeliveryStatus) error {
	newStatus, err := o.deliveryStatus.Override(target)
	if err != nil {
		return err
	}

	if newStatus != DeliveryPending && newStatus != DeliveryCancelled && o.driverID == nil {
		return errs.NewInvalidStateError("update delivery status", o.deliveryStatus.String())
	}

	o.deliveryStatus = newStatus
	if newStatus == DeliveryPending {
		o.driverID = nil
	}
	o.touch()
	return nil
}

// SetPaymentStatus sets the payment status to any defined value.
// Payment settlement carries no ordering constraints; restricting the
// operation to admins is the authorization policy's job.
func (o *Order) SetPaymentStatus(target PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	o.paymentStatus = target
	o.touch()
	return nil
}

// Cancel moves the order to the cancelled status.
//
// Legal while the delivery status is pending, assigned, picked, or
// in_transit. Cancelling a delivered order is rejected, and re-cancelling a
// cancelled order is rejected with an invalid-state error rather than
// treated as a no-op.
func (o *Order) Cancel() error {
	newStatus, err := o.deliveryStatus.Cancel()
	if err != nil {
		return err
	}

	o.deliveryStatus = newStatus
	o.touch()
	return nil
}

// UpdateDetails replaces the pickup, dropoff, description, and price of the
// order. Detail updates are only permitted while the delivery status is
// pending: once a driver is working the order, its locations and price are
// frozen.
//
// Returns:
//   - nil on success
//   - InvalidStateError if the order is no longer pending
//   - validation error if any replacement value is invalid
func (o *Order) UpdateDetails(
	pickup kernel.Location,
	dropoff kernel.Location,
	description string,
	price float64,
) error {
	if o.deliveryStatus != DeliveryPending {
		return errs.NewInvalidStateError("update order details", o.deliveryStatus.String())
	}

	if err := errors.Join(
		o.setPickup(pickup),
		o.setDropoff(dropoff),
		o.setDescription(description),
		o.setPrice(price),
	); err != nil {
		return err
	}

	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	o.dropoff = dropoff
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > DescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 1, DescriptionMaxLength)
	}
	o.description = description
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price <= PriceMin || price > PriceMax {
		return errs.NewValueIsOutOfRangeError("price", price, PriceMin, PriceMax)
	}
	o.price = price
	return nil
}
