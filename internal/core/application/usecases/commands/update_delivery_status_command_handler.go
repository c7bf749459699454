package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateDeliveryStatusCommandHandler handles driver progress reports.
// Only the driver assigned to an order may move its delivery status, and
// only to a progress status; the aggregate rejects terminal-state
// overwrites. The write is conditional on the status the driver saw, so a
// concurrent cancellation or admin override surfaces as a ConflictError.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for driver progress reports.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the progress report.
// Loads the order, verifies the actor is its assigned driver, applies the
// transition, and persists it conditionally on the prior status.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	progressedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanProgressDelivery(cmd.Actor(), progressedOrder); err != nil {
		return err
	}

	expected := progressedOrder.DeliveryStatus()
	if err = progressedOrder.ProgressDelivery(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, progressedOrder, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
