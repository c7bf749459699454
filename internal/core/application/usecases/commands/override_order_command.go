package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrOverrideOrderCommandIsNotConstructed = errors.New(
		"OverrideOrderCommand must be created via NewOverrideOrderCommand constructor",
	)
	ErrNothingToOverride = fmt.Errorf(
		"%w: at least one of delivery status or payment status", errs.ErrValueIsRequired)
)

// OverrideOrderCommand represents an admin correction of an order's
// delivery and/or payment status. Either status may be omitted; at least
// one must be present. Overrides bypass the normal progression rules but
// still cannot leave a terminal state.
type OverrideOrderCommand struct { //nolint:recvcheck //using for validation
	actor          services.Actor
	orderID        kernel.UUID
	deliveryStatus *order.DeliveryStatus
	paymentStatus  *order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewOverrideOrderCommand creates a command to override order statuses.
// Nil pointers mean "leave unchanged"; both nil is rejected with
// ErrNothingToOverride.
func NewOverrideOrderCommand(
	actor services.Actor,
	orderID kernel.UUID,
	deliveryStatus *order.DeliveryStatus,
	paymentStatus *order.PaymentStatus,
) (OverrideOrderCommand, error) {
	overrideCommand := OverrideOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		overrideCommand.setActor(actor),
		overrideCommand.setOrderID(orderID),
		overrideCommand.setStatuses(deliveryStatus, paymentStatus),
	); err != nil {
		return OverrideOrderCommand{}, err
	}

	return overrideCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOverrideOrderCommandIsNotConstructed if validation fails.
func (c OverrideOrderCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderCommandIsNotConstructed)
}

// Actor returns the identity performing the override.
func (c OverrideOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the order being corrected.
func (c OverrideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryStatus returns the delivery status to set, or nil to leave it unchanged.
func (c OverrideOrderCommand) DeliveryStatus() *order.DeliveryStatus {
	return c.deliveryStatus
}

// PaymentStatus returns the payment status to set, or nil to leave it unchanged.
func (c OverrideOrderCommand) PaymentStatus() *order.PaymentStatus {
	return c.paymentStatus
}

func (c *OverrideOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *OverrideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideOrderCommand) setStatuses(
	deliveryStatus *order.DeliveryStatus,
	paymentStatus *order.PaymentStatus,
) error {
	if deliveryStatus == nil && paymentStatus == nil {
		return ErrNothingToOverride
	}

	if deliveryStatus != nil {
		if err := deliveryStatus.Validate(); err != nil {
			return err
		}
		status := *deliveryStatus
		c.deliveryStatus = &status
	}

	if paymentStatus != nil {
		if err := paymentStatus.Validate(); err != nil {
			return err
		}
		status := *paymentStatus
		c.paymentStatus = &status
	}

	return nil
}
