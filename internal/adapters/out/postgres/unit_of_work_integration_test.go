package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/attendancerepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/logrepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/adapters/out/postgres/workerrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work with a real PostgreSQL database, including the
// concurrent claim race the conditional updates exist for.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&vehiclerepo.VehicleDTO{},
		&workerrepo.WorkerDTO{},
		&attendancerepo.RecordDTO{},
		&logrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE deliveries, vehicles, workers, attendance_records, delivery_log_entries",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedPooledDelivery(ctx context.Context) *delivery.Delivery {
	item, err := delivery.NewItemRef("CAM-X100", "Camera X100", 1)
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), "INV-1001", []delivery.ItemRef{item}, time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) seedAvailableVehicle(ctx context.Context) *vehicle.Vehicle {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "B 777 TR", vehicle.Van)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, v))
	suite.Require().NoError(uow.Commit(ctx))
	return v
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_SeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	seeded := suite.seedPooledDelivery(ctx)
	workerID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	now := time.Now().UTC()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	d, err := uow.DeliveryRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(d.Claim(workerID, vehicleID, now))
	suite.Require().NoError(uow.DeliveryRepository().UpdateFrom(ctx, d, delivery.Pooled))

	claimedStatus := d.Status()
	entry, err := deliverylog.NewEntry(
		kernel.NewUUID(), d.ID(), deliverylog.EventClaimed,
		deliverylog.NewValue{Status: &claimedStatus}, workerID, now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryLogRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.DeliveryRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Claimed, loaded.Status())

	loadedEntry, err := verify.DeliveryLogRepository().Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.True(loadedEntry.Delivery().IsEqual(seeded.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	seeded := suite.seedPooledDelivery(ctx)
	now := time.Now().UTC()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	d, err := uow.DeliveryRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(d.Claim(kernel.NewUUID(), kernel.NewUUID(), now))
	suite.Require().NoError(uow.DeliveryRepository().UpdateFrom(ctx, d, delivery.Pooled))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.DeliveryRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Pooled, loaded.Status())
	suite.Nil(loaded.Worker())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	seeded := suite.seedPooledDelivery(ctx)

	const sessions = 8
	var wg sync.WaitGroup
	results := make(chan error, sessions)

	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results <- err
				return
			}
			defer func() {
				_ = uow.Rollback(ctx)
			}()

			d, err := uow.DeliveryRepository().Get(ctx, seeded.ID())
			if err != nil {
				results <- err
				return
			}
			if err = d.Claim(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC()); err != nil {
				results <- err
				return
			}
			if err = uow.DeliveryRepository().UpdateFrom(ctx, d, delivery.Pooled); err != nil {
				results <- err
				return
			}
			results <- uow.Commit(ctx)
		}()
	}

	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
			continue
		}
		suite.Require().True(errors.Is(err, ports.ErrStateConflict), "unexpected error: %v", err)
	}
	suite.Equal(1, winners)

	verify := suite.factory.Create()
	loaded, err := verify.DeliveryRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Claimed, loaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentVehiclePicks_ExactlyOneWinner() {
	ctx := context.Background()
	seeded := suite.seedAvailableVehicle(ctx)

	const sessions = 4
	var wg sync.WaitGroup
	results := make(chan error, sessions)

	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results <- err
				return
			}
			defer func() {
				_ = uow.Rollback(ctx)
			}()

			v, err := uow.VehicleRepository().Get(ctx, seeded.ID())
			if err != nil {
				results <- err
				return
			}
			if err = v.Reserve(); err != nil {
				results <- err
				return
			}
			if err = uow.VehicleRepository().UpdateFrom(ctx, v, vehicle.Available); err != nil {
				results <- err
				return
			}
			results <- uow.Commit(ctx)
		}()
	}

	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
		}
	}
	suite.Equal(1, winners)

	verify := suite.factory.Create()
	loaded, err := verify.VehicleRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.Reserved, loaded.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
