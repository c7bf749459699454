package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetProfileImageCommandIsNotConstructed = errors.New(
	"SetProfileImageCommand must be created via NewSetProfileImageCommand constructor",
)

// ProfileImageMaxSize bounds accepted profile image uploads.
const ProfileImageMaxSize = 5 << 20

// SetProfileImageCommand represents a request to upload a profile image for
// an account. Users manage their own image; admins may manage anyone's.
type SetProfileImageCommand struct { //nolint:recvcheck //using for validation
	actor       services.Actor
	userID      kernel.UUID
	data        []byte
	contentType string

	guard guard.ConstructorGuard
}

// NewSetProfileImageCommand creates a command to upload a profile image.
// The payload must be non-empty, within the size bound, and carry an
// image/* content type.
func NewSetProfileImageCommand(
	actor services.Actor,
	userID kernel.UUID,
	data []byte,
	contentType string,
) (SetProfileImageCommand, error) {
	imageCommand := SetProfileImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		imageCommand.setActor(actor),
		imageCommand.setUserID(userID),
		imageCommand.setData(data),
		imageCommand.setContentType(contentType),
	); err != nil {
		return SetProfileImageCommand{}, err
	}

	return imageCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetProfileImageCommandIsNotConstructed if validation fails.
func (c SetProfileImageCommand) Validate() error {
	return c.guard.Validate(ErrSetProfileImageCommandIsNotConstructed)
}

// Actor returns the identity performing the upload.
func (c SetProfileImageCommand) Actor() services.Actor {
	return c.actor
}

// UserID returns the account the image belongs to.
func (c SetProfileImageCommand) UserID() kernel.UUID {
	return c.userID
}

// Data returns the raw image bytes.
func (c SetProfileImageCommand) Data() []byte {
	return c.data
}

// ContentType returns the image MIME type.
func (c SetProfileImageCommand) ContentType() string {
	return c.contentType
}

func (c *SetProfileImageCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetProfileImageCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SetProfileImageCommand) setData(data []byte) error {
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("image data")
	}
	if len(data) > ProfileImageMaxSize {
		return errs.NewValueIsOutOfRangeError("image size", len(data), 1, ProfileImageMaxSize)
	}

	c.data = data
	return nil
}

func (c *SetProfileImageCommand) setContentType(contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return errs.NewValueIsInvalidError("contentType")
	}

	c.contentType = contentType
	return nil
}
