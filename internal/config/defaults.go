package config

import "time"

const devTokenSignKey = "hefin-development-sign-key"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:   EnvDevelopment,
			Version:       "1.0.0",
			TokenIssuer:   "hefin",
			TokenDuration: 24 * time.Hour,
			PublicDir:     "public",
		},
		Server: Server{
			HTTPAddress:     ":3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitRPS:    1,
			RateLimitBurst:  10,
			CORSOrigin:      "*",
		},
		Storage: Storage{
			Mongo: Mongo{Database: "hefin"},
		},
		Telemetry: Telemetry{
			ServiceName: "hefin-server",
		},
		Workers: Workers{
			LedgerVerifySchedule:   "@every 10m",
			LimiterCleanupSchedule: "@every 1m",
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// applyDefaults fills zero fields. Outside production a fixed development
// sign key is used when none is configured.
func (cfg *StructuredConfig) applyDefaults() error {
	if err := mergeInto(cfg, defaults()); err != nil {
		return err
	}
	if cfg.App.TokenSignKey == "" && cfg.App.Environment != EnvProduction {
		cfg.App.TokenSignKey = devTokenSignKey
	}
	return nil
}
