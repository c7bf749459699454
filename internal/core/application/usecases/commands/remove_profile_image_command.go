package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveProfileImageCommandIsNotConstructed = errors.New(
	"RemoveProfileImageCommand must be created via NewRemoveProfileImageCommand constructor",
)

// RemoveProfileImageCommand represents a request to delete an account's
// profile image from both the account record and the blob store.
type RemoveProfileImageCommand struct { //nolint:recvcheck //using for validation
	actor  services.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProfileImageCommand creates a command to delete a profile image.
func NewRemoveProfileImageCommand(
	actor services.Actor,
	userID kernel.UUID,
) (RemoveProfileImageCommand, error) {
	removeCommand := RemoveProfileImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setActor(actor),
		removeCommand.setUserID(userID),
	); err != nil {
		return RemoveProfileImageCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveProfileImageCommandIsNotConstructed if validation fails.
func (c RemoveProfileImageCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProfileImageCommandIsNotConstructed)
}

// Actor returns the identity performing the removal.
func (c RemoveProfileImageCommand) Actor() services.Actor {
	return c.actor
}

// UserID returns the account the image belongs to.
func (c RemoveProfileImageCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *RemoveProfileImageCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RemoveProfileImageCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
