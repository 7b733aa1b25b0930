// Package cmd wires the application together: configuration, the composition
// root that builds every use case handler from shared adapters, and nothing
// else. Business logic lives below internal/core.
package cmd

import (
	"dispatch/internal/adapters/out/eventbus"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot builds the use case handlers from the shared infrastructure:
// one gorm connection, one unit of work factory, one event bus, one feed.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	bus        *eventbus.Bus
	feed       *notify.Feed
}

// NewCompositionRoot creates the composition root and starts the notification
// feed projection over the event bus.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) *CompositionRoot {
	bus := eventbus.NewBus()
	feed := notify.NewFeed()
	go feed.Run(bus.Subscribe())

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		feed:       feed,
	}
}

// Close shuts down the event bus, which ends the feed projection goroutine.
func (c *CompositionRoot) Close() {
	c.bus.Close()
}

// EventPublisher exposes the bus for transports that want to subscribe.
func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.bus
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimDeliveryCommandHandler() commands.ClaimDeliveryCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimDeliveryCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRouteCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateDelayDeliveryCommandHandler() commands.DelayDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDelayDeliveryCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.ReleaseUoWFactory = FuncReleaseUoWFactory(func() commands.ReleaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.ReleaseUoWFactory = FuncReleaseUoWFactory(func() commands.ReleaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateArchiveDeliveryCommandHandler() commands.ArchiveDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckInCommandHandler() commands.CheckInCommandHandler {
	var f commands.AttendanceUoWFactory = FuncAttendanceUoWFactory(func() commands.AttendanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckInCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckOutCommandHandler() commands.CheckOutCommandHandler {
	var f commands.AttendanceUoWFactory = FuncAttendanceUoWFactory(func() commands.AttendanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckOutCommandHandler(f)
}

func (c *CompositionRoot) CreateEditDeliveryLogCommandHandler() commands.EditDeliveryLogCommandHandler {
	var f commands.LogUoWFactory = FuncLogUoWFactory(func() commands.LogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditDeliveryLogCommandHandler(f)
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateAddWorkerCommandHandler() commands.AddWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPoolQueryHandler() queries.GetPoolQueryHandler {
	return queries.NewGetPoolQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDeliveriesQueryHandler() queries.GetMyDeliveriesQueryHandler {
	return queries.NewGetMyDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableVehiclesQueryHandler() queries.GetAvailableVehiclesQueryHandler {
	return queries.NewGetAvailableVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryLogQueryHandler() queries.GetDeliveryLogQueryHandler {
	return queries.NewGetDeliveryLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.feed)
}

func (c *CompositionRoot) CreateGetStaleDeliveriesQueryHandler() queries.GetStaleDeliveriesQueryHandler {
	return queries.NewGetStaleDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenAttendanceQueryHandler() queries.GetOpenAttendanceQueryHandler {
	return queries.NewGetOpenAttendanceQueryHandler(c.gormDB)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncReleaseUoWFactory func() commands.ReleaseUoW

func (f FuncReleaseUoWFactory) Create() commands.ReleaseUoW {
	return f()
}

type FuncAttendanceUoWFactory func() commands.AttendanceUoW

func (f FuncAttendanceUoWFactory) Create() commands.AttendanceUoW {
	return f()
}

type FuncLogUoWFactory func() commands.LogUoW

func (f FuncLogUoWFactory) Create() commands.LogUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}
