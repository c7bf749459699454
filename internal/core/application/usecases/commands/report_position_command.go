package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReportPositionCommandIsNotConstructed = errors.New(
	"ReportPositionCommand must be created via NewReportPositionCommand constructor",
)

// ReportPositionCommand records a driver's current coordinates on their
// own account. The position always lands on the acting driver; there is
// no way to report for somebody else.
type ReportPositionCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewReportPositionCommand creates a command to record a driver position.
// Only drivers report positions; coordinate bounds are checked by the
// aggregate when the position is applied.
func NewReportPositionCommand(
	actor services.Actor,
	latitude float64,
	longitude float64,
) (ReportPositionCommand, error) {
	if err := actor.Validate(); err != nil {
		return ReportPositionCommand{}, err
	}
	if actor.Role() != user.RoleDriver {
		return ReportPositionCommand{}, errs.NewAuthorizationDeniedError("report position")
	}

	return ReportPositionCommand{
		actor:     actor,
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportPositionCommandIsNotConstructed if validation fails.
func (c ReportPositionCommand) Validate() error {
	return c.guard.Validate(ErrReportPositionCommandIsNotConstructed)
}

// Actor returns the driver reporting their position.
func (c ReportPositionCommand) Actor() services.Actor {
	return c.actor
}

// Latitude returns the reported latitude.
func (c ReportPositionCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the reported longitude.
func (c ReportPositionCommand) Longitude() float64 {
	return c.longitude
}
