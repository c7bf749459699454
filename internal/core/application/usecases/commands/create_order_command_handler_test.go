package commands_test

import (
	"errors"
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

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, user.RoleCustomer)
	cmd, err := commands.NewCreateOrderCommand(
		actor, kernel.NewUUID(),
		testLocation(t, "1 First Ave", 40.0, -74.0),
		testLocation(t, "2 Second Ave", 40.1, -74.1),
		"documents", 25.00)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, order.DeliveryPending, created.DeliveryStatus())
	require.Equal(t, order.PaymentPending, created.PaymentStatus())
	require.Nil(t, created.DriverID())
	require.True(t, created.CustomerID().IsEqual(actor.ID()))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DeniedForDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		testActor(t, user.RoleDriver), kernel.NewUUID(),
		testLocation(t, "1 First Ave", 40.0, -74.0),
		testLocation(t, "2 Second Ave", 40.1, -74.1),
		"documents", 25.00)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		testActor(t, user.RoleCustomer), kernel.NewUUID(),
		testLocation(t, "1 First Ave", 40.0, -74.0),
		testLocation(t, "2 Second Ave", 40.1, -74.1),
		"documents", 25.00)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
