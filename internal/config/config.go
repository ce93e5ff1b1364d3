// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Environment names accepted in App.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// StructuredConfig is the top-level configuration container for the HEFIN
// server and CLI. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment, token parameters,
	// integrity key and the static site directory.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, timeouts and HTTP surface limits.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for PostgreSQL, MongoDB and the pointer ledger.
	Storage Storage `envPrefix:"STORAGE_"`

	// Telemetry holds OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Workers holds cron schedules of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds settings of the REST client used by the CLI.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is one of development, production or test. Panic details
	// are only returned to clients in development.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the token lifetime (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables the HashSHA256 integrity check on record uploads.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// PublicDir is the directory with the static site.
	// Env: APP_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`
}

// Server holds network and HTTP surface settings.
type Server struct {
	// HTTPAddress is the HTTP listen address (e.g. ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health server when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// RateLimitRPS is the sustained per-IP request rate on public form
	// endpoints. A negative value disables limiting.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-IP burst size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`

	// CORSOrigin is the Access-Control-Allow-Origin value.
	// Env: SERVER_CORS_ORIGIN
	CORSOrigin string `env:"CORS_ORIGIN"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// DB holds the PostgreSQL settings. An empty DSN selects in-memory stores.
	DB DB `envPrefix:"DB_"`

	// Mongo holds the record payload store settings. An empty URI selects
	// the in-memory payload store.
	Mongo Mongo `envPrefix:"MONGO_"`

	// Ledger holds the data-pointer ledger settings.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// PayloadKey enables AES-256-GCM encryption of record payloads at rest.
	// Env: STORAGE_PAYLOAD_KEY
	PayloadKey string `env:"PAYLOAD_KEY"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mongo holds connection settings for MongoDB.
type Mongo struct {
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
}

// Ledger holds the LevelDB location of the data-pointer ledger.
type Ledger struct {
	// Path is the LevelDB directory. An empty path keeps the ledger in memory.
	// Env: STORAGE_LEDGER_PATH
	Path string `env:"PATH"`
}

// Telemetry holds OpenTelemetry settings. Tracing is off unless Endpoint is set.
type Telemetry struct {
	// Endpoint is the OTLP/HTTP collector host:port or URL.
	// Env: TELEMETRY_OTLP_ENDPOINT
	Endpoint string `env:"OTLP_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	// Env: TELEMETRY_OTLP_INSECURE
	Insecure bool `env:"OTLP_INSECURE"`

	// ServiceName is the service.name resource attribute.
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Workers holds cron specs of background jobs. Descriptors such as
// "@every 10m" are accepted.
type Workers struct {
	// Env: WORKERS_LEDGER_VERIFY_SCHEDULE
	LedgerVerifySchedule string `env:"LEDGER_VERIFY_SCHEDULE"`

	// Env: WORKERS_LIMITER_CLEANUP_SCHEDULE
	LimiterCleanupSchedule string `env:"LIMITER_CLEANUP_SCHEDULE"`
}

// Adapter holds the CLI's REST client settings.
type Adapter struct {
	// ServerURL is the base URL of the HEFIN server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IsDevelopment reports whether the server runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Environment == EnvDevelopment
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Earlier sources take precedence for non-zero fields:
//  1. Environment variables (after loading .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetClientConfig loads the configuration for the CLI from .env and the
// environment only; the CLI parses its own flags.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		build()
}
