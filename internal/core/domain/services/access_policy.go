package services

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor is used without being
// created through NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor")

// Actor is the authenticated identity on whose behalf an operation runs.
// It carries only what authorization decisions need: the identity and its role.
type Actor struct {
	id   kernel.UUID
	role user.Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an authenticated identity and its role.
func NewActor(id kernel.UUID, role user.Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() user.Role {
	return a.role
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// AccessPolicy is a domain service deciding whether an actor may perform an
// operation on an order. It centralizes the per-role permission matrix:
//
//   - admins may read and mutate any order, assign drivers, and change
//     payment status
//   - customers may create orders, and read, edit, and cancel their own
//   - drivers may read orders assigned to them and report delivery progress
//     on them
//
// The policy is a pure decision function over the supplied actor and order
// snapshot: it never reads or writes storage, and it does not check order
// state legality (wrong-status rejections belong to the Order aggregate).
// Every denial is an AuthorizationDeniedError naming the attempted action.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateOrder permits customers and admins to create orders.
func (p AccessPolicy) CanCreateOrder(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case user.RoleCustomer, user.RoleAdmin:
		return nil
	default:
		return errs.NewAuthorizationDeniedError("create order")
	}
}

// CanViewOrder permits admins to view any order, customers their own orders,
// and drivers the orders assigned to them. It takes the order's ownership
// fields rather than the aggregate so the read side can consult it without
// rehydrating a full order.
func (p AccessPolicy) CanViewOrder(actor Actor, customerID kernel.UUID, driverID *kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case user.RoleAdmin:
		return nil
	case user.RoleCustomer:
		if customerID.IsEqual(actor.ID()) {
			return nil
		}
	case user.RoleDriver:
		if driverID != nil && driverID.IsEqual(actor.ID()) {
			return nil
		}
	}

	return errs.NewAuthorizationDeniedError("view order")
}

// CanUpdateDetails permits admins and the owning customer to edit the
// order's mutable details. Whether the order is still in an editable status
// is the aggregate's decision, not the policy's.
func (p AccessPolicy) CanUpdateDetails(actor Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	if actor.Role() == user.RoleAdmin {
		return nil
	}
	if actor.Role() == user.RoleCustomer && o.CustomerID().IsEqual(actor.ID()) {
		return nil
	}

	return errs.NewAuthorizationDeniedError("update order details")
}

// CanProgressDelivery permits only the assigned driver to report delivery
// progress on an order.
func (p AccessPolicy) CanProgressDelivery(actor Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	if actor.Role() != user.RoleDriver {
		return errs.NewAuthorizationDeniedError("update delivery status")
	}
	if o.DriverID() == nil || !o.DriverID().IsEqual(actor.ID()) {
		return errs.NewAuthorizationDeniedError("update delivery status")
	}

	return nil
}

// CanAssignDriver permits only admins to assign a driver to an order.
func (p AccessPolicy) CanAssignDriver(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != user.RoleAdmin {
		return errs.NewAuthorizationDeniedError("assign driver")
	}

	return nil
}

// CanOverrideOrder permits only admins to override delivery status or change
// payment status.
func (p AccessPolicy) CanOverrideOrder(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != user.RoleAdmin {
		return errs.NewAuthorizationDeniedError("override order")
	}

	return nil
}

// CanManageProfile permits every actor to manage their own profile and
// admins to manage anyone's.
func (p AccessPolicy) CanManageProfile(actor Actor, userID kernel.UUID) error {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return err
	}

	if actor.Role() == user.RoleAdmin || actor.ID().IsEqual(userID) {
		return nil
	}

	return errs.NewAuthorizationDeniedError("manage profile")
}

// CanCancelOrder permits admins and the owning customer to cancel an order.
// Terminal-state rejections are the aggregate's decision.
func (p AccessPolicy) CanCancelOrder(actor Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	if actor.Role() == user.RoleAdmin {
		return nil
	}
	if actor.Role() == user.RoleCustomer && o.CustomerID().IsEqual(actor.ID()) {
		return nil
	}

	return errs.NewAuthorizationDeniedError("cancel order")
}

func (p AccessPolicy) validate(actor Actor, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	return o.Validate()
}
