package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateFrom(ctx context.Context, d *delivery.Delivery, expected delivery.Status) error {
	args := m.Called(ctx, d, expected)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateFrom(ctx context.Context, v *vehicle.Vehicle, expected vehicle.VehicleStatus) error {
	args := m.Called(ctx, v, expected)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

type MockAttendanceRepository struct{ mock.Mock }

func (m *MockAttendanceRepository) Add(ctx context.Context, r *attendance.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Update(ctx context.Context, r *attendance.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAttendanceRepository) GetForDay(ctx context.Context, workerID kernel.UUID, day time.Time) (*attendance.Record, error) {
	args := m.Called(ctx, workerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Record), args.Error(1)
}

type MockDeliveryLogRepository struct{ mock.Mock }

func (m *MockDeliveryLogRepository) Add(ctx context.Context, e *deliverylog.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockDeliveryLogRepository) Update(ctx context.Context, e *deliverylog.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockDeliveryLogRepository) Get(ctx context.Context, id kernel.UUID) (*deliverylog.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverylog.Entry), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishDeliveryStatusChanged(ctx context.Context, event ports.DeliveryStatusChanged) {
	m.Called(ctx, event)
}

type MockClaimUoW struct{ mock.Mock }

func (m *MockClaimUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockClaimUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockClaimUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockClaimUoW) AttendanceRepository() ports.AttendanceRepository {
	args := m.Called()
	return args.Get(0).(ports.AttendanceRepository)
}

func (m *MockClaimUoW) DeliveryLogRepository() ports.DeliveryLogRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryLogRepository)
}

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockDeliveryUoW) DeliveryLogRepository() ports.DeliveryLogRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryLogRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockReleaseUoW struct{ mock.Mock }

func (m *MockReleaseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReleaseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReleaseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReleaseUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockReleaseUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockReleaseUoW) DeliveryLogRepository() ports.DeliveryLogRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryLogRepository)
}

type MockReleaseUoWFactory struct{ mock.Mock }

func (m *MockReleaseUoWFactory) Create() commands.ReleaseUoW {
	args := m.Called()
	return args.Get(0).(commands.ReleaseUoW)
}

type MockLogUoW struct{ mock.Mock }

func (m *MockLogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLogUoW) DeliveryLogRepository() ports.DeliveryLogRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryLogRepository)
}

type MockLogUoWFactory struct{ mock.Mock }

func (m *MockLogUoWFactory) Create() commands.LogUoW {
	args := m.Called()
	return args.Get(0).(commands.LogUoW)
}

type MockAttendanceUoW struct{ mock.Mock }

func (m *MockAttendanceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttendanceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttendanceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttendanceUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockAttendanceUoW) AttendanceRepository() ports.AttendanceRepository {
	args := m.Called()
	return args.Get(0).(ports.AttendanceRepository)
}

type MockAttendanceUoWFactory struct{ mock.Mock }

func (m *MockAttendanceUoWFactory) Create() commands.AttendanceUoW {
	args := m.Called()
	return args.Get(0).(commands.AttendanceUoW)
}
