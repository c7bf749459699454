package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// OverrideOrderCommandHandler handles admin status corrections.
// Applies delivery and/or payment status changes in one transaction, with
// the order write conditional on the delivery status the admin read.
type OverrideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewOverrideOrderCommandHandler creates a handler for admin status overrides.
func NewOverrideOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) OverrideOrderCommandHandler {
	return OverrideOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the override command.
// Only admins pass the policy check. The aggregate enforces that terminal
// orders stay untouched and that delivery status cannot move past pending
// without a driver.
func (h OverrideOrderCommandHandler) Handle(ctx context.Context, cmd OverrideOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanOverrideOrder(cmd.Actor()); err != nil {
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
	overriddenOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := overriddenOrder.DeliveryStatus()
	if cmd.DeliveryStatus() != nil {
		if err = overriddenOrder.OverrideDeliveryStatus(*cmd.DeliveryStatus()); err != nil {
			return err
		}
	}
	if cmd.PaymentStatus() != nil {
		if err = overriddenOrder.SetPaymentStatus(*cmd.PaymentStatus()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, overriddenOrder, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
