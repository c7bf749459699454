package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles account registration.
// Hashes the password with bcrypt, rejects duplicate email addresses, and
// persists the new account in active status.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	cmd, _ := NewRegisterUserCommand(
//	    kernel.NewUUID(), "Bob", "bob@example.com", "s3cret-pass", user.RoleDriver, "VAN-123", "DL-456")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // email already taken
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// A taken email address is reported as a ConflictError; the uniqueness
// check and the insert run in one transaction.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser, err := user.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), string(passwordHash),
		cmd.Role(), cmd.Vehicle(), cmd.License())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewConflictError("email", cmd.Email())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
