package main

import (
	"context"
	"flag"
	"time"

	"skill-swap/internal/app"
	"skill-swap/internal/config"
	"skill-swap/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "insert the demo users after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").Fatal("failed to load config", zap.Error(err))
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	cfg.Database.RunMigrations = true
	cfg.Database.RunSeeders = *seed

	c, err := app.NewContainer(cfg, log)
	if err != nil {
		log.Fatal("failed to init container", zap.Error(err))
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := c.Prepare(ctx); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("database ready", zap.Bool("seeded", *seed))
}
