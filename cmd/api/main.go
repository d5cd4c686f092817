package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/config"
	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/api"
	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/database"
	"github.com/pageza/labellens/backend/internal/logging"
	"github.com/pageza/labellens/backend/internal/middleware"
	"github.com/pageza/labellens/backend/internal/router"
	"github.com/pageza/labellens/backend/internal/server"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
)

func main() {
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

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := database.RunMigrations(db, cfg.Database.MigrationsDir, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Redis is optional: without it there is no classifier cache and no rate limiting.
	redisClient, err := database.NewRedisClient(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Continuing without Redis", zap.Error(err))
		redisClient = nil
	}

	tax, err := loadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return err
	}

	source, err := referenceSource(ctx, cfg.ReferenceCatalog, db)
	if err != nil {
		return err
	}
	registry := additive.NewRegistry(source, logger)
	if _, err := registry.Reload(ctx); err != nil {
		logger.Warn("Starting with an unloaded reference catalog; every code will be reported unmatched", zap.Error(err))
	}
	if cfg.ReferenceCatalog.Watch {
		go func() {
			if err := additive.WatchFile(ctx, cfg.ReferenceCatalog.Path, registry, logger.Named("additives")); err != nil {
				logger.Warn("Reference catalog watcher stopped", zap.Error(err))
			}
		}()
	}

	var classifier service.Classifier
	if cfg.Classifier.IsAvailable() {
		classifier = service.NewLLMClassifier(cfg.Classifier.BaseURL, cfg.Classifier.APIKey, cfg.Classifier.Model, tax, logger)
	} else {
		logger.Info("No classifier configured; labels without an override are uncategorized")
	}

	store := catalog.NewGormStore(db)
	alternativeService := service.NewAlternativeService(
		alternatives.NewResolver(store, tax, cfg.Alternatives.MinFill),
		alternatives.NewThreshold(store),
		tax,
		cfg.Alternatives.Limit,
		logger,
	)
	preferenceService := service.NewPreferenceService(db)
	historyService := service.NewHistoryService(db)
	analysisService := service.NewAnalysisService(
		registry,
		service.NewCategoryResolver(classifier, tax, redisClient, cfg.Classifier.CacheTTL, cfg.Classifier.Timeout, logger),
		alternativeService,
		preferenceService,
		historyService,
		logger,
	)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewAnalyzeRateLimiter(redisClient, cfg.RateLimit.Window, cfg.RateLimit.Limit, logger)
	}

	r := router.SetupRouter(api.Services{
		Analysis:       analysisService,
		Alternatives:   alternativeService,
		Preferences:    preferenceService,
		History:        historyService,
		Catalog:        service.NewCatalogAdminService(registry),
		Auth:           service.NewAuthService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL),
		Taxonomy:       tax,
		AnalyzeLimiter: limiter,
	}, cfg.Server.AllowedOrigins, logger)

	return server.New(cfg.Server, r, logger).Run(ctx)
}

func loadTaxonomy(cfg config.TaxonomyConfig) (*taxonomy.Taxonomy, error) {
	tax := taxonomy.Default()
	if cfg.RelatedPath == "" {
		return tax, nil
	}
	related, err := taxonomy.LoadRelatedFile(cfg.RelatedPath)
	if err != nil {
		return nil, fmt.Errorf("load related categories: %w", err)
	}
	return tax.WithRelated(related), nil
}

func referenceSource(ctx context.Context, cfg config.ReferenceCatalogConfig, db *gorm.DB) (additive.Source, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		return additive.FileSource{Path: cfg.Path}, nil
	case config.CatalogSourceDatabase:
		return additive.GormSource{DB: db}, nil
	case config.CatalogSourceS3:
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("configure s3: %w", err)
		}
		return additive.S3Source{Client: s3cfg.Client, Bucket: s3cfg.BucketName, Key: s3cfg.Key}, nil
	default:
		return additive.EmbeddedSource{}, nil
	}
}
