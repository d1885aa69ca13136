package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"resto-live/auth"
	"resto-live/infrastructure/ws"
	"resto-live/internal"
	"resto-live/observability"
	"resto-live/runtime"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Broker terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Core broker state: one registry, one broker, passed by reference.
	monitoring := observability.NewMonitoringManager(logger, config.MetricInterval)
	registry := runtime.NewRegistry()
	broker := runtime.NewBroker(logger, registry, monitoring)

	go func() {
		if err := monitoring.Run(ctx); err != nil {
			logger.Error("monitoring stopped", "err", err)
		}
	}()

	// 3. Transport
	verifier := auth.NewTokenVerifier(config.JWTSecret)
	server := ws.NewServer(logger, config, broker, verifier, monitoring)

	if err := server.ListenAndServe(ctx); err != nil {
		return exitRuntime, err
	}

	logger.Info("Broker stopped cleanly")
	return exitOK, nil
}
