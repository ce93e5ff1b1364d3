package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {"environment": "production", "token_sign_key": "k", "token_duration": "1h"},
		"server": {"http_address": ":8080", "request_timeout": 30000000000, "rate_limit_burst": 3},
		"storage": {"mongo": {"uri": "mongodb://m", "database": "hefin"}, "ledger": {"path": "/l"}},
		"telemetry": {"otlp_endpoint": "otel:4318", "otlp_insecure": true},
		"workers": {"limiter_cleanup_schedule": "@hourly"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3, cfg.Server.RateLimitBurst)
	assert.Equal(t, "mongodb://m", cfg.Storage.Mongo.URI)
	assert.Equal(t, "/l", cfg.Storage.Ledger.Path)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, "@hourly", cfg.Workers.LimiterCleanupSchedule)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = parseJSON(writeJSONFile(t, `{"app":`))
	require.Error(t, err)

	_, err = parseJSON(writeJSONFile(t, `{"app": {"token_duration": true}}`))
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
