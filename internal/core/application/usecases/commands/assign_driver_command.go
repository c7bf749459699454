package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents an admin request to assign a driver to a
// pending order. Assignment moves the order's delivery status from pending
// to assigned and binds it to the driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(
	actor services.Actor,
	orderID kernel.UUID,
	driverID kernel.UUID,
) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setActor(actor),
		assignCommand.setOrderID(orderID),
		assignCommand.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// Actor returns the identity performing the assignment.
func (c AssignDriverCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the order to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to assign the order to.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
