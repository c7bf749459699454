package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new delivery order.
// Encapsulates the pickup and dropoff locations, the package description,
// and the agreed price. The order is always created on behalf of the acting
// identity: the actor becomes the owning customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), pickup, dropoff, "documents", 25.00)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       services.Actor
	orderID     kernel.UUID
	pickup      kernel.Location
	dropoff     kernel.Location
	description string
	price       float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new delivery order.
// Validates the actor, order ID, and both locations; description and price
// bounds are enforced by the order aggregate itself.
func NewCreateOrderCommand(
	actor services.Actor,
	orderID kernel.UUID,
	pickup kernel.Location,
	dropoff kernel.Location,
	description string,
	price float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(actor),
		orderCommand.setOrderID(orderID),
		orderCommand.setPickup(pickup),
		orderCommand.setDropoff(dropoff),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the identity placing the order.
func (c CreateOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Pickup returns the pickup location.
func (c CreateOrderCommand) Pickup() kernel.Location {
	return c.pickup
}

// Dropoff returns the dropoff location.
func (c CreateOrderCommand) Dropoff() kernel.Location {
	return c.dropoff
}

// Description returns the package description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Price returns the agreed order price.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}
