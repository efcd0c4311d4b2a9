package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ManzarAli25/Orbitarium/internal/app"
	"github.com/ManzarAli25/Orbitarium/internal/config"
	"github.com/ManzarAli25/Orbitarium/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "orbitarium start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	demo, err := app.NewDemo(cfg, log)
	if err != nil {
		log.Errorw("failed to initialize demo", "error", err)
		return err
	}

	if err := demo.Run(ctx); err != nil {
		return fmt.Errorf("demo run: %w", err)
	}

	return nil
}
