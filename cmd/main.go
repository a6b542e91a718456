package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-usage/internal/config"
	"github.com/fleetops/fleet-usage/internal/handlers"
	"github.com/fleetops/fleet-usage/internal/middleware"
	"github.com/fleetops/fleet-usage/internal/services"
	"github.com/fleetops/fleet-usage/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	vehicleStore := store.NewMemoryVehicleStore()
	driverStore := store.NewMemoryDriverStore()
	usageStore := store.NewMemoryUsageStore()

	router := handlers.NewRouter(
		handlers.NewVehicleHandler(services.NewVehicleService(vehicleStore)),
		handlers.NewDriverHandler(services.NewDriverService(driverStore)),
		handlers.NewUsageHandler(services.NewUsageService(usageStore, vehicleStore, driverStore)),
	)

	limiter := middleware.NewRateLimitMiddleware()
	handler := middleware.RequestLogger(
		middleware.Recover(
			limiter.Limit(cfg.RateLimitMax, cfg.RateLimitWindowSeconds)(router),
		),
	)

	log.Infof("HTTP server listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}

func setupLogger(cfg config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
