// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a
strongly-typed Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, S3) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This keeps the application Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the fichas API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) — client session state
	RedisURL string `env:"REDIS_URL,required"`

	// AdminTokens is the privileged IP allow-list. Loaded at process start so
	// the list can rotate without a rebuild; there is no compiled-in default.
	AdminTokens []string `env:"ADMIN_TOKENS" envSeparator:","`

	// Object Storage (Cloudflare R2 / DO Spaces / any S3-compatible)
	S3Bucket        string `env:"S3_BUCKET,required"`
	S3Region        string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint      string `env:"S3_ENDPOINT,required"`
	S3AccessKey     string `env:"S3_ACCESS_KEY,required"`
	S3SecretKey     string `env:"S3_SECRET_KEY,required"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL,required"`

	// IPEchoURL is the public what-is-my-IP service used as the secondary
	// identity source when the request itself carries no usable address.
	IPEchoURL string `env:"IP_ECHO_URL" envDefault:"https://api.ipify.org?format=json"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Map environment variables to struct fields.
	// This fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
