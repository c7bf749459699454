package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// AssignDriverCommandHandler orchestrates driver assignment.
// Validates that the target user is an active driver and that the order is
// still pending, then binds the two within a single transaction. The order
// write is conditional on the pending status, so a concurrent mutation of
// the same order surfaces as a ConflictError instead of a lost update.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, policy)
//	cmd, _ := NewAssignDriverCommand(adminActor, orderID, driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("order or driver missing")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("order is no longer pending")
//	case err != nil:
//	    log.Printf("assignment failed: %v", err)
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires a UoWFactory for coordinating reads and writes across both repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the driver assignment command.
// The target user must exist, hold the driver role, and be active; a missing
// or unusable driver is reported as ObjectNotFoundError. The order must be
// pending, which the aggregate enforces.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanAssignDriver(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driver, err := uow.UserRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if driver.Role() != user.RoleDriver || !driver.IsActive() {
		return errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	orderRepo := uow.OrderRepository()
	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := assignedOrder.DeliveryStatus()
	if err = assignedOrder.Assign(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assignedOrder, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
