package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vidvault/vidvault/backend/internal/config"
	"github.com/vidvault/vidvault/backend/internal/logger"
)

func main() {
	ctx := context.Background()

	// Bootstrap logger; replaced by the configured one once the config
	// is loaded
	loggerService, err := logger.NewLogger(&logger.Config{Level: "debug"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	configService := config.NewConfigService(loggerService)
	cfg, err := configService.Load(".")
	if err != nil {
		loggerService.LogFatal(err, "Failed to load configuration")
	}

	loggerService, err = logger.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		loggerService.LogInfo("Received shutdown signal", nil)
		cancel()
	}()

	app, err := NewApp(ctx, cfg, loggerService)
	if err != nil {
		loggerService.LogFatal(err, "Failed to initialize application")
	}

	go func() {
		if err := app.Run(); err != nil {
			loggerService.LogError(err, "Application error")
			cancel()
		}
	}()

	<-ctx.Done()

	if err := app.Shutdown(); err != nil {
		os.Exit(1)
	}
}
