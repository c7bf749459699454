package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and conditionally updating
// order entities.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as a
	// conditional write: the update succeeds only while the stored
	// delivery status still equals expectedStatus. When another actor
	// changed the order in between, Update returns a ConflictError and
	// writes nothing. A missing order yields ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.DeliveryStatus) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAvailable retrieves orders a driver may pick up: delivery
	// status pending and no driver assigned, ordered oldest-first so the
	// longest-waiting request is offered before newer ones.
	GetAllAvailable(ctx context.Context) ([]*order.Order, error)
}
