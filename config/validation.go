package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const minProductionSecretLen = 32

// ValidateConfig checks the configuration for the current environment and
// returns every problem found joined into one error.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		add("server.port", fmt.Sprintf("invalid port %q", cfg.Server.Port))
	}
	if cfg.Database.Host == "" {
		add("database.host", "is required")
	}
	if cfg.Database.Name == "" {
		add("database.name", "is required")
	}

	switch cfg.ReferenceCatalog.Source {
	case CatalogSourceEmbedded, CatalogSourceDatabase:
	case CatalogSourceFile:
		if cfg.ReferenceCatalog.Path == "" {
			add("reference_catalog.path", "is required for the file source")
		}
	case CatalogSourceS3:
		if cfg.ReferenceCatalog.Bucket == "" {
			add("reference_catalog.bucket", "is required for the s3 source")
		}
		if cfg.ReferenceCatalog.Key == "" {
			add("reference_catalog.key", "is required for the s3 source")
		}
	default:
		add("reference_catalog.source", fmt.Sprintf("unknown source %q", cfg.ReferenceCatalog.Source))
	}
	if cfg.ReferenceCatalog.Watch && cfg.ReferenceCatalog.Source != CatalogSourceFile {
		add("reference_catalog.watch", "only supported for the file source")
	}

	if cfg.Alternatives.Limit < 1 || cfg.Alternatives.Limit > 50 {
		add("alternatives.limit", "must be between 1 and 50")
	}
	if cfg.Alternatives.MinFill < 1 || cfg.Alternatives.MinFill > cfg.Alternatives.Limit {
		add("alternatives.min_fill", "must be between 1 and alternatives.limit")
	}
	if cfg.RateLimit.Window > 0 && cfg.RateLimit.Limit <= 0 {
		add("rate_limit.limit", "must be positive when a window is set")
	}
	if cfg.Classifier.Timeout <= 0 {
		add("classifier.timeout", "must be positive")
	}

	if env != Test && cfg.JWT.Secret == "" {
		add("jwt.secret", "is required")
	}
	if env == Production {
		if cfg.Database.Password == "" {
			add("database.password", "is required in production")
		}
		if len(cfg.JWT.Secret) < minProductionSecretLen {
			add("jwt.secret", fmt.Sprintf("must be at least %d characters in production", minProductionSecretLen))
		}
	}

	return errors.Join(errs...)
}
