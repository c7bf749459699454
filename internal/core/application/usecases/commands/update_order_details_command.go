package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand represents a request to replace the mutable
// details of a pending order: pickup, dropoff, description, and price.
// Status fields and the driver binding are not details and can never be
// changed through this command.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	actor       services.Actor
	orderID     kernel.UUID
	pickup      kernel.Location
	dropoff     kernel.Location
	description string
	price       float64

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command to edit order details.
func NewUpdateOrderDetailsCommand(
	actor services.Actor,
	orderID kernel.UUID,
	pickup kernel.Location,
	dropoff kernel.Location,
	description string,
	price float64,
) (UpdateOrderDetailsCommand, error) {
	detailsCommand := UpdateOrderDetailsCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detailsCommand.setActor(actor),
		detailsCommand.setOrderID(orderID),
		detailsCommand.setPickup(pickup),
		detailsCommand.setDropoff(dropoff),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return detailsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderDetailsCommandIsNotConstructed if validation fails.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// Actor returns the identity editing the order.
func (c UpdateOrderDetailsCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the order being edited.
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Pickup returns the replacement pickup location.
func (c UpdateOrderDetailsCommand) Pickup() kernel.Location {
	return c.pickup
}

// Dropoff returns the replacement dropoff location.
func (c UpdateOrderDetailsCommand) Dropoff() kernel.Location {
	return c.dropoff
}

// Description returns the replacement package description.
func (c UpdateOrderDetailsCommand) Description() string {
	return c.description
}

// Price returns the replacement price.
func (c UpdateOrderDetailsCommand) Price() float64 {
	return c.price
}

func (c *UpdateOrderDetailsCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderDetailsCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *UpdateOrderDetailsCommand) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}
