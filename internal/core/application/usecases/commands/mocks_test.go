package commands_test

import (
	"context"
	"testing"
	"time"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/lab"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForClient(ctx context.Context, id kernel.UUID, clientID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForLabOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) (bool, error) {
	args := m.Called(ctx, o, expected)
	return args.Bool(0), args.Error(1)
}

type MockLabServiceRepository struct{ mock.Mock }

func (m *MockLabServiceRepository) Add(ctx context.Context, s *labservice.LabService) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockLabServiceRepository) Update(ctx context.Context, s *labservice.LabService) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockLabServiceRepository) Get(ctx context.Context, id kernel.UUID) (*labservice.LabService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labservice.LabService), args.Error(1)
}
func (m *MockLabServiceRepository) GetForLabOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*labservice.LabService, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labservice.LabService), args.Error(1)
}

type MockLabRepository struct{ mock.Mock }

func (m *MockLabRepository) Add(ctx context.Context, l *lab.Lab) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLabRepository) Get(ctx context.Context, id kernel.UUID) (*lab.Lab, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lab.Lab), args.Error(1)
}

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

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderingUoW struct{ MockOrderUoW }

func (m *MockOrderingUoW) LabServiceRepository() ports.LabServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.LabServiceRepository)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) LabServiceRepository() ports.LabServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.LabServiceRepository)
}
func (m *MockCatalogUoW) LabRepository() ports.LabRepository {
	args := m.Called()
	return args.Get(0).(ports.LabRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

// Test fixtures shared by the handler tests.

func clientActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleClient)
	require.NoError(t, err)
	return actor
}

func labAdminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleLabAdmin)
	require.NoError(t, err)
	return actor
}

func fixtureDetails() order.ClientDetails {
	return order.ClientDetails{
		Name:  "Acme QA Department",
		Email: "qa@acme.example",
		Phone: "+1 415 555 0132",
	}
}

func fixtureService(t *testing.T, mode labservice.PricingMode, price *kernel.Money) *labservice.LabService {
	t.Helper()
	svc, err := labservice.NewLabService(
		kernel.NewUUID(), kernel.NewUUID(),
		"Tensile Strength Testing", "Mechanical Testing",
		mode, price,
	)
	require.NoError(t, err)
	return svc
}

func fixtureMoney(t *testing.T, amount float64) *kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return &m
}

func fixtureOrder(t *testing.T, clientID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	var price *kernel.Money
	var quotedAt *time.Time
	if status == order.Pending {
		price = fixtureMoney(t, 1200)
		now := time.Now()
		quotedAt = &now
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), clientID, kernel.NewUUID(), kernel.NewUUID(),
		"Aluminum alloy coupon, batch 42, tensile testing",
		nil,
		fixtureDetails(),
		status,
		price, quotedAt,
	)
	require.NoError(t, err)
	return o
}
