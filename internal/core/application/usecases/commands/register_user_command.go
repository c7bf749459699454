package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const (
	// PasswordMinLength is the minimum accepted password length for new accounts.
	PasswordMinLength = 8
	// PasswordMaxLength is bcrypt's input limit.
	PasswordMaxLength = 72
)

// RegisterUserCommand represents a request to create a new account.
// Driver accounts must carry vehicle and license identifiers; other roles
// must not. The password travels in the clear inside the command and is
// hashed by the handler before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string
	role     user.Role
	vehicle  string
	license  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Validates the ID, password length, and role; name, email, and the driver
// credential rules are enforced by the user aggregate.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name string,
	email string,
	password string,
	role user.Role,
	vehicle string,
	license string,
) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		name:    name,
		email:   email,
		role:    role,
		vehicle: vehicle,
		license: license,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setUserID(userID),
		registerCommand.setPassword(password),
		role.Validate(),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the account holder's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the account email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// Vehicle returns the driver's vehicle identifier, empty for non-drivers.
func (c RegisterUserCommand) Vehicle() string {
	return c.vehicle
}

// License returns the driver's license identifier, empty for non-drivers.
func (c RegisterUserCommand) License() string {
	return c.license
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), PasswordMinLength, PasswordMaxLength)
	}

	c.password = password
	return nil
}
