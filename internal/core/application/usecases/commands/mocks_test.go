package commands_test

import (
	"context"
	"io"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.DeliveryStatus) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAvailable(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Upload(
	ctx context.Context, key string, data io.Reader, size int64, contentType string,
) (string, error) {
	args := m.Called(ctx, key, data, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func testActor(t *testing.T, role user.Role) services.Actor {
	t.Helper()
	actor, err := services.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func testActorWithID(t *testing.T, id kernel.UUID, role user.Role) services.Actor {
	t.Helper()
	actor, err := services.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func testLocation(t *testing.T, address string, latitude, longitude float64) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(address, latitude, longitude)
	require.NoError(t, err)
	return location
}

func testPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID,
		testLocation(t, "1 First Ave", 40.0, -74.0),
		testLocation(t, "2 Second Ave", 40.1, -74.1),
		"documents", 25.00)
	require.NoError(t, err)
	return o
}

func testAssignedOrder(t *testing.T, customerID kernel.UUID, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := testPendingOrder(t, customerID)
	require.NoError(t, o.Assign(driverID))
	return o
}

func testDriver(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	driver, err := user.NewUser(id, "Bob", "bob@example.com", "$2a$10$hash", user.RoleDriver, "VAN-123", "DL-456")
	require.NoError(t, err)
	return driver
}
