package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves orders a driver may pick up: pending
// and unassigned, oldest first. The oldest-first order is deliberate and
// the inverse of the other listings: the longest-waiting request gets
// offered before newer ones.
type GetAvailableOrdersQuery struct {
	actor services.Actor

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query to list pickable orders.
// Only drivers and admins may ask for the pickup feed.
func NewGetAvailableOrdersQuery(actor services.Actor) (GetAvailableOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	if actor.Role() != user.RoleDriver && actor.Role() != user.RoleAdmin {
		return GetAvailableOrdersQuery{}, errs.NewAuthorizationDeniedError("list available orders")
	}

	return GetAvailableOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// Actor returns the identity reading the pickup feed.
func (q GetAvailableOrdersQuery) Actor() services.Actor {
	return q.actor
}
