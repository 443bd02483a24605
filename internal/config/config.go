// Package config loads runtime settings for the todo backend from the
// environment. The process fails fast at startup when a required variable
// is missing.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the server.
//
// DatabaseDSN, JWTSecret and PasswordSalt are required; everything else has
// a workable default. The S3 block is optional: without credentials the
// image endpoints still route but every blob operation fails, which matches
// a deployment that never configured object storage.
type Config struct {
	Env         string `env:"ENV,default=dev"`
	Port        string `env:"PORT,default=8787"`
	MetricsPort string `env:"METRICS_PORT,default=8081"`
	BaseURL     string `env:"BASE_URL"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	DatabaseDSN string `env:"DATABASE_DSN,required"`

	JWTSecret    string `env:"JWT_SECRET,required"`
	PasswordSalt string `env:"PASSWORD_SALT,required"`

	S3 struct {
		AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
		Bucket          string `env:"R2_BUCKET_NAME,default=todo-images"`
		Region          string `env:"R2_REGION,default=auto"`
		Endpoint        string `env:"R2_ENDPOINT"`
		PublicURL       string `env:"R2_PUBLIC_URL"`
	}
}

// Load builds a Config from the process environment.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

// Addr is the bind address for the public HTTP listener.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MetricsAddr is the bind address for the metrics listener.
func (c *Config) MetricsAddr() string {
	return ":" + c.MetricsPort
}
