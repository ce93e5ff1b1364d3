package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Environment   string   `json:"environment"`
		Version       string   `json:"version"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		PublicDir     string   `json:"public_dir"`
	} `json:"app"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RateLimitRPS    float64  `json:"rate_limit_rps"`
		RateLimitBurst  int      `json:"rate_limit_burst"`
		CORSOrigin      string   `json:"cors_origin"`
	} `json:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo"`
		Ledger struct {
			Path string `json:"path"`
		} `json:"ledger"`
		PayloadKey string `json:"payload_key"`
	} `json:"storage"`

	Telemetry struct {
		Endpoint    string `json:"otlp_endpoint"`
		Insecure    bool   `json:"otlp_insecure"`
		ServiceName string `json:"service_name"`
	} `json:"telemetry"`

	Workers struct {
		LedgerVerifySchedule   string `json:"ledger_verify_schedule"`
		LimiterCleanupSchedule string `json:"limiter_cleanup_schedule"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:   jsonCfg.App.Environment,
			Version:       jsonCfg.App.Version,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			PublicDir:     jsonCfg.App.PublicDir,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimitRPS:    jsonCfg.Server.RateLimitRPS,
			RateLimitBurst:  jsonCfg.Server.RateLimitBurst,
			CORSOrigin:      jsonCfg.Server.CORSOrigin,
		},
		Storage: Storage{
			DB:         DB{DSN: jsonCfg.Storage.DB.DSN},
			Mongo:      Mongo{URI: jsonCfg.Storage.Mongo.URI, Database: jsonCfg.Storage.Mongo.Database},
			Ledger:     Ledger{Path: jsonCfg.Storage.Ledger.Path},
			PayloadKey: jsonCfg.Storage.PayloadKey,
		},
		Telemetry: Telemetry{
			Endpoint:    jsonCfg.Telemetry.Endpoint,
			Insecure:    jsonCfg.Telemetry.Insecure,
			ServiceName: jsonCfg.Telemetry.ServiceName,
		},
		Workers: Workers{
			LedgerVerifySchedule:   jsonCfg.Workers.LedgerVerifySchedule,
			LimiterCleanupSchedule: jsonCfg.Workers.LimiterCleanupSchedule,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
