package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"

	"SensorGrid.mongoDB/internal/config"
	"SensorGrid.mongoDB/internal/controller"
	"SensorGrid.mongoDB/internal/logging"
	"SensorGrid.mongoDB/internal/recorder"
	"SensorGrid.mongoDB/internal/repository"
	"SensorGrid.mongoDB/internal/routes"
	"SensorGrid.mongoDB/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("error loading configuration")
	}

	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		logging.Fatal().Err(err).Msg("error configuring logging")
	}

	// Connect to MongoDB and create the unique indexes that guard
	// uniqueness under concurrency.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repository.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logging.Fatal().Err(err).Msg("error connecting to mongodb")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := store.Close(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("error disconnecting from mongodb")
		}
	}()
	if err := store.EnsureIndexes(ctx); err != nil {
		logging.Fatal().Err(err).Msg("error creating indexes")
	}

	users := repository.NewMongoUserRepository(store)
	zones := repository.NewMongoZoneRepository(store)
	devices := repository.NewMongoDeviceRepository(store)
	sensors := repository.NewMongoSensorRepository(store)
	readings := repository.NewMongoReadingRepository(store)

	// Optional readings mirror into InfluxDB.
	var readingRecorder service.ReadingRecorder
	if cfg.InfluxEnabled() {
		influx := recorder.NewInfluxRecorder(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
		defer influx.Close()
		readingRecorder = influx
		logging.Info().Str("url", cfg.InfluxURL).Msg("influxdb readings mirror enabled")
	}

	// Initialize services and controllers
	controllers := routes.Controllers{
		Users:    controller.NewUserController(service.NewUserService(users)),
		Zones:    controller.NewZoneController(service.NewZoneService(zones)),
		Devices:  controller.NewDeviceController(service.NewDeviceService(devices, users, zones)),
		Sensors:  controller.NewSensorController(service.NewSensorService(sensors, readings)),
		Readings: controller.NewReadingController(service.NewReadingService(readings, sensors, readingRecorder)),
	}

	router := routes.SetupRouter(controllers)

	// CORS setup
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	// Start the HTTP server
	addr := ":" + cfg.Port
	logging.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		logging.Fatal().Err(err).Msg("error starting server")
	}
}
