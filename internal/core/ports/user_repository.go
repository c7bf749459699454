// Package ports defines repository and storage interfaces for the
// marketplace domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	// The user must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its email address.
	// Returns ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
