package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation.
// Admins may cancel any order; customers only their own. Cancelling a
// delivered or already-cancelled order fails in the aggregate with an
// InvalidStateError; re-cancelling is an error, not a no-op.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanCancelOrder(cmd.Actor(), cancelledOrder); err != nil {
		return err
	}

	expected := cancelledOrder.DeliveryStatus()
	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
