package http

import (
	"context"
	"time"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(u *user.User) (ports.AccessToken, error) {
	args := m.Called(u)
	return args.Get(0).(ports.AccessToken), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (ports.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type MockTokenDenylist struct{ mock.Mock }

func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c *address.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*address.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context) ([]*address.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.City), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetVisible(
	ctx context.Context,
	id kernel.UUID,
	visibility services.Visibility,
) (*order.Order, error) {
	args := m.Called(ctx, id, visibility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(
	ctx context.Context,
	visibility services.Visibility,
	filter ports.OrderFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, visibility, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockOrderUoW serves both the order and the address repository.
type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f()
}
