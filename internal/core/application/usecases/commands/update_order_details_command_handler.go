package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateOrderDetailsCommandHandler handles detail edits on pending orders.
// Admins may edit any order's details; customers only their own. The
// aggregate rejects edits once the order left pending, and the conditional
// write catches an assignment racing the edit.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderDetailsCommandHandler creates a handler for order detail edits.
func NewUpdateOrderDetailsCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the detail edit command.
func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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
	editedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanUpdateDetails(cmd.Actor(), editedOrder); err != nil {
		return err
	}

	expected := editedOrder.DeliveryStatus()
	if err = editedOrder.UpdateDetails(cmd.Pickup(), cmd.Dropoff(), cmd.Description(), cmd.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, editedOrder, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
