package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// RemoveProfileImageCommandHandler handles profile image removal.
// Clears the URL on the account record and deletes the stored object.
type RemoveProfileImageCommandHandler struct {
	uowFactory UserUoWFactory
	blobStore  ports.BlobStore
	policy     services.AccessPolicy
}

// NewRemoveProfileImageCommandHandler creates a handler for profile image removal.
func NewRemoveProfileImageCommandHandler(
	uowFactory UserUoWFactory,
	blobStore ports.BlobStore,
	policy services.AccessPolicy,
) RemoveProfileImageCommandHandler {
	return RemoveProfileImageCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
		policy:     policy,
	}
}

// Handle processes the removal command.
// The account record is updated first; the blob delete runs after a
// successful commit so a failed transaction never loses the stored image.
func (h RemoveProfileImageCommandHandler) Handle(ctx context.Context, cmd RemoveProfileImageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageProfile(cmd.Actor(), cmd.UserID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	account.ClearProfileImage()
	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.blobStore.Remove(ctx, profileImageKey(cmd.UserID()))
}

// profileImageKey derives the blob store key for a user's profile image.
func profileImageKey(userID kernel.UUID) string {
	return fmt.Sprintf("profiles/%s", userID.String())
}
