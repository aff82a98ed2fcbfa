package main

import (
	"context"
	"log"
	"os"

	"logistics-backoffice/internal/backoffice"
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/mylogger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger.Action("backoffice_started").Info("Logistics back office starting up")

	if err := backoffice.Execute(context.Background(), appLogger, cfg); err != nil {
		appLogger.Error("Back office exited with error", err)
		os.Exit(1)
	}
}
