package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/config"
	"github.com/pageza/labellens/backend/internal/logging"
)

// NewRedisClient connects to redis. It returns nil, nil when redis is disabled.
func NewRedisClient(cfg config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	if cfg.Disabled {
		return nil, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	// Use Redis URL if provided (for production deployments)
	if cfg.URL != "" {
		parsedOpts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL %s: %w", logging.SanitizeConnectionString(cfg.URL), err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Named("redis").Info("Successfully connected to Redis", zap.String("addr", opts.Addr))
	return client, nil
}
