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

func TestUpdateOrderDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	editedOrder := testPendingOrder(t, customerID)

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		testActorWithID(t, customerID, user.RoleCustomer),
		editedOrder.ID(),
		testLocation(t, "9 Ninth Ave", 41.0, -73.0),
		testLocation(t, "10 Tenth Ave", 41.1, -73.1),
		"fragile glassware",
		40.00,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, editedOrder.ID()).Return(editedOrder, nil).Once(),
		orderRepo.On("Update", ctx, editedOrder, order.DeliveryPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderDetailsCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "fragile glassware", editedOrder.Description())
	require.InEpsilon(t, 40.00, editedOrder.Price(), 1e-9)
	require.Equal(t, "9 Ninth Ave", editedOrder.Pickup().Address())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderDetailsCommandHandler_Handle_DeniedForOtherCustomer(t *testing.T) {
	ctx := t.Context()
	editedOrder := testPendingOrder(t, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		testActor(t, user.RoleCustomer),
		editedOrder.ID(),
		testLocation(t, "9 Ninth Ave", 41.0, -73.0),
		testLocation(t, "10 Tenth Ave", 41.1, -73.1),
		"fragile glassware",
		40.00,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, editedOrder.ID()).Return(editedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderDetailsCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderDetailsCommandHandler_Handle_RejectedAfterAssignment(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	editedOrder := testAssignedOrder(t, customerID, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		testActorWithID(t, customerID, user.RoleCustomer),
		editedOrder.ID(),
		testLocation(t, "9 Ninth Ave", 41.0, -73.0),
		testLocation(t, "10 Tenth Ave", 41.1, -73.1),
		"fragile glassware",
		40.00,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, editedOrder.ID()).Return(editedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderDetailsCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderDetailsCommandHandler_Handle_ConflictOnRacingAssignment(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	editedOrder := testPendingOrder(t, customerID)

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		testActorWithID(t, customerID, user.RoleCustomer),
		editedOrder.ID(),
		testLocation(t, "9 Ninth Ave", 41.0, -73.0),
		testLocation(t, "10 Tenth Ave", 41.1, -73.1),
		"fragile glassware",
		40.00,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, editedOrder.ID()).Return(editedOrder, nil).Once(),
		orderRepo.On("Update", ctx, editedOrder, order.DeliveryPending).
			Return(errs.NewConflictError("orderID", editedOrder.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderDetailsCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
