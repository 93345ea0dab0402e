// Package config handles configuration for the server process, loaded
// from environment variables with development defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultSecretKey is the dev-only fallback HMAC secret used when
// JWT_SECRET is absent. It is insecure by definition: Validate refuses
// to start a production process that still relies on it.
const DefaultSecretKey = "your-secret-key"

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StorageDynamo   = "dynamo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds runtime settings for the authentication server.
type Config struct {
	Addr        string `env:"ADDR,default=:8080"`
	Environment string `env:"APP_ENV,default=development"`

	SecretKey             string        `env:"JWT_SECRET,default=your-secret-key"`
	TokenValidityDuration time.Duration `env:"TOKEN_TTL,default=24h"`
	BcryptCost            int           `env:"BCRYPT_COST,default=10"`

	StorageDriver string `env:"STORAGE_DRIVER,default=dynamo"`

	AWSRegion          string `env:"AWS_REGION,default=us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoBaseEndpoint string `env:"DYNAMO_BASE_ENDPOINT"`
	UsersTable         string `env:"USERS_TABLE,default=Users"`
	SessionsTable      string `env:"SESSIONS_TABLE,default=Sessions"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// Load builds a Config from the process environment and validates it.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// Validate enforces settings that must not reach production, most
// importantly a real signing secret.
func (c *Config) Validate() error {
	if c.Production() && c.SecretKey == DefaultSecretKey {
		return errors.New("JWT_SECRET must be set in production")
	}

	switch c.StorageDriver {
	case StorageDynamo, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	if c.StorageDriver == StoragePostgres && c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required for the postgres storage driver")
	}

	return nil
}
