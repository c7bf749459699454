package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewOverrideOrderCommand(t *testing.T) {
	t.Run("should reject empty override", func(t *testing.T) {
		_, err := commands.NewOverrideOrderCommand(
			testActor(t, user.RoleAdmin), kernel.NewUUID(), nil, nil)

		require.ErrorIs(t, err, commands.ErrNothingToOverride)
	})

	t.Run("should accept partial override", func(t *testing.T) {
		paid := order.PaymentPaid

		cmd, err := commands.NewOverrideOrderCommand(
			testActor(t, user.RoleAdmin), kernel.NewUUID(), nil, &paid)

		require.NoError(t, err)
		require.Nil(t, cmd.DeliveryStatus())
		require.NotNil(t, cmd.PaymentStatus())
		require.Equal(t, order.PaymentPaid, *cmd.PaymentStatus())
	})
}

func TestOverrideOrderCommandHandler_Handle_BothStatuses(t *testing.T) {
	ctx := t.Context()
	assignedOrder := testAssignedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	inTransit := order.DeliveryInTransit
	paid := order.PaymentPaid

	cmd, err := commands.NewOverrideOrderCommand(
		testActor(t, user.RoleAdmin), assignedOrder.ID(), &inTransit, &paid)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, assignedOrder.ID()).Return(assignedOrder, nil).Once(),
		orderRepo.On("Update", ctx, assignedOrder, order.DeliveryAssigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.DeliveryInTransit, assignedOrder.DeliveryStatus())
	require.Equal(t, order.PaymentPaid, assignedOrder.PaymentStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOverrideOrderCommandHandler_Handle_DeniedForNonAdmin(t *testing.T) {
	ctx := t.Context()
	paid := order.PaymentPaid

	cmd, err := commands.NewOverrideOrderCommand(
		testActor(t, user.RoleCustomer), kernel.NewUUID(), nil, &paid)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewOverrideOrderCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestOverrideOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	deliveredOrder := testAssignedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, deliveredOrder.ProgressDelivery(order.DeliveryDelivered))
	pending := order.DeliveryPending

	cmd, err := commands.NewOverrideOrderCommand(
		testActor(t, user.RoleAdmin), deliveredOrder.ID(), &pending, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, deliveredOrder.ID()).Return(deliveredOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything, mock.Anything)
}
