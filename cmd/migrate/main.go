package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/config"
	"github.com/pageza/labellens/backend/internal/database"
	"github.com/pageza/labellens/backend/internal/logging"
)

func main() {
	dir := flag.String("dir", "", "Migrations directory (defaults to database.migrations_dir)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(config.IsProduction(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	migrationsDir := cfg.Database.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, migrationsDir, logger); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	logger.Info("All migrations applied", zap.String("dir", migrationsDir))
}
