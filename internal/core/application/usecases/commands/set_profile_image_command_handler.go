package commands

import (
	"bytes"
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// SetProfileImageCommandHandler handles profile image uploads.
// Stores the image in the blob store under a per-user key and records the
// resulting public URL on the account. Re-uploading replaces the stored
// object in place since the key is derived from the user ID.
type SetProfileImageCommandHandler struct {
	uowFactory UserUoWFactory
	blobStore  ports.BlobStore
	policy     services.AccessPolicy
}

// NewSetProfileImageCommandHandler creates a handler for profile image uploads.
func NewSetProfileImageCommandHandler(
	uowFactory UserUoWFactory,
	blobStore ports.BlobStore,
	policy services.AccessPolicy,
) SetProfileImageCommandHandler {
	return SetProfileImageCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
		policy:     policy,
	}
}

// Handle processes the upload command and returns the public URL the
// image is served from.
// The blob upload happens before the transaction commits; if the commit
// fails the stored object is orphaned until the next upload overwrites it.
func (h SetProfileImageCommandHandler) Handle(
	ctx context.Context,
	cmd SetProfileImageCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if err := h.policy.CanManageProfile(cmd.Actor(), cmd.UserID()); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return "", err
	}

	url, err := h.blobStore.Upload(
		ctx,
		profileImageKey(cmd.UserID()),
		bytes.NewReader(cmd.Data()),
		int64(len(cmd.Data())),
		cmd.ContentType(),
	)
	if err != nil {
		return "", err
	}

	account.SetProfileImageURL(url)
	if err = userRepo.Update(ctx, account); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return url, nil
}
