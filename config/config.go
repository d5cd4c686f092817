package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the application
type Config struct {
	Server           ServerConfig           `yaml:"server"`
	Database         DatabaseConfig         `yaml:"database"`
	Redis            RedisConfig            `yaml:"redis"`
	JWT              JWTConfig              `yaml:"jwt"`
	Classifier       ClassifierConfig       `yaml:"classifier"`
	ReferenceCatalog ReferenceCatalogConfig `yaml:"reference_catalog"`
	Taxonomy         TaxonomyConfig         `yaml:"taxonomy"`
	Alternatives     AlternativesConfig     `yaml:"alternatives"`
	RateLimit        RateLimitConfig        `yaml:"rate_limit"`
	Log              LogConfig              `yaml:"log"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://localhost:5173"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type DatabaseConfig struct {
	Host          string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port          string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password      string `yaml:"-" env:"DB_PASSWORD"` // secret
	Name          string `yaml:"name" env:"DB_NAME" env-default:"labellens"`
	SSLMode       string `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"disable"`
	MigrationsDir string `yaml:"migrations_dir" env:"MIGRATIONS_DIR" env-default:"migrations"`
}

// DSN returns the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	// URL takes precedence over Host/Port when set.
	URL      string `yaml:"url" env:"REDIS_URL"`
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // secret
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Disabled bool   `yaml:"disabled" env:"REDIS_DISABLED" env-default:"false"`
}

// Addr is host:port for the redis client.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `yaml:"-" env:"JWT_SECRET"` // secret
	Issuer string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"labellens"`
	TTL    time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
}

// ClassifierConfig points at any OpenAI-compatible chat completions endpoint.
type ClassifierConfig struct {
	BaseURL  string        `yaml:"base_url" env:"CLASSIFIER_BASE_URL" env-default:""`
	Model    string        `yaml:"model" env:"CLASSIFIER_MODEL" env-default:"gpt-4o-mini"`
	APIKey   string        `yaml:"-" env:"CLASSIFIER_API_KEY"` // secret
	Timeout  time.Duration `yaml:"timeout" env:"CLASSIFIER_TIMEOUT" env-default:"8s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CLASSIFIER_CACHE_TTL" env-default:"24h"`
}

// IsAvailable reports whether enough is configured to call the classifier.
func (c ClassifierConfig) IsAvailable() bool {
	return c.APIKey != "" || c.BaseURL != ""
}

// Reference catalog sources.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
	CatalogSourceS3       = "s3"
)

type ReferenceCatalogConfig struct {
	Source string `yaml:"source" env:"ADDITIVES_SOURCE" env-default:"embedded"`
	Path   string `yaml:"path" env:"ADDITIVES_PATH" env-default:""`
	// Watch reloads a file source whenever the file changes.
	Watch    bool   `yaml:"watch" env:"ADDITIVES_WATCH" env-default:"false"`
	Bucket   string `yaml:"bucket" env:"ADDITIVES_S3_BUCKET" env-default:""`
	Key      string `yaml:"key" env:"ADDITIVES_S3_KEY" env-default:"additives.json"`
	Region   string `yaml:"region" env:"AWS_REGION" env-default:""`
	Endpoint string `yaml:"endpoint" env:"ADDITIVES_S3_ENDPOINT" env-default:""`
}

type TaxonomyConfig struct {
	RelatedPath string `yaml:"related_path" env:"TAXONOMY_RELATED_PATH" env-default:""`
}

type AlternativesConfig struct {
	Limit   int `yaml:"limit" env:"ALTERNATIVES_LIMIT" env-default:"10"`
	MinFill int `yaml:"min_fill" env:"ALTERNATIVES_MIN_FILL" env-default:"3"`
}

type RateLimitConfig struct {
	Window time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
	Limit  int           `yaml:"limit" env:"RATE_LIMIT_LIMIT" env-default:"30"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads the optional YAML file named by CONFIG_FILE (default
// config.yaml) with environment overrides, fills secrets that are still
// empty from Docker secrets, and validates the result for the current
// environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// CI injects secrets as plain environment variables.
	if GetEnvironment() != CI {
		loadSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadSecrets fills empty secret fields from the secrets directory.
func loadSecrets(cfg *Config) {
	fill := func(dst *string, name string) {
		if *dst == "" {
			*dst = readSecret(name)
		}
	}
	fill(&cfg.Database.Password, "db_password")
	fill(&cfg.JWT.Secret, "jwt_secret")
	fill(&cfg.Redis.Password, "redis_password")
	fill(&cfg.Classifier.APIKey, "classifier_api_key")
}

// secretsDir returns SECRETS_DIR or the Docker default.
func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	data, err := os.ReadFile(filepath.Join(secretsDir(), name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
