package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/attendancerepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/logrepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/adapters/out/postgres/workerrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer app.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetStaleDeliveriesQueryHandler(),
		app.CreateGetOpenAttendanceQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&vehiclerepo.VehicleDTO{},
		&workerrepo.WorkerDTO{},
		&attendancerepo.RecordDTO{},
		&logrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(httpin.ServerHandlers{
		CreateDelivery: app.CreateCreateDeliveryCommandHandler(),
		Claim:          app.CreateClaimDeliveryCommandHandler(),
		StartRoute:     app.CreateStartRouteCommandHandler(),
		Delay:          app.CreateDelayDeliveryCommandHandler(),
		Complete:       app.CreateCompleteDeliveryCommandHandler(),
		Cancel:         app.CreateCancelDeliveryCommandHandler(),
		Archive:        app.CreateArchiveDeliveryCommandHandler(),
		CheckIn:        app.CreateCheckInCommandHandler(),
		CheckOut:       app.CreateCheckOutCommandHandler(),
		EditLog:        app.CreateEditDeliveryLogCommandHandler(),
		AddVehicle:     app.CreateAddVehicleCommandHandler(),
		AddWorker:      app.CreateAddWorkerCommandHandler(),

		GetPool:              app.CreateGetPoolQueryHandler(),
		GetMyDeliveries:      app.CreateGetMyDeliveriesQueryHandler(),
		GetAvailableVehicles: app.CreateGetAvailableVehiclesQueryHandler(),
		GetDeliveryLog:       app.CreateGetDeliveryLogQueryHandler(),
		GetNotifications:     app.CreateGetNotificationsQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
