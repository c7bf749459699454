package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a driver reporting delivery
// progress on an order assigned to them: picked up, in transit, or
// delivered.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.UUID
	target  order.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to report delivery progress.
// The target status must be a valid delivery status; whether the transition
// is legal for the order's current state is the aggregate's decision.
func NewUpdateDeliveryStatusCommand(
	actor services.Actor,
	orderID kernel.UUID,
	target order.DeliveryStatus,
) (UpdateDeliveryStatusCommand, error) {
	statusCommand := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(actor),
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// Actor returns the driver reporting progress.
func (c UpdateDeliveryStatusCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the order being progressed.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the delivery status being reported.
func (c UpdateDeliveryStatusCommand) Target() order.DeliveryStatus {
	return c.target
}

func (c *UpdateDeliveryStatusCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target order.DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
