package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion / Health
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestHealth(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.0", Environment: "production"}, logger.Nop())
	require.NoError(t, err)

	impl := svc.(*appInfoService)
	impl.startedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return impl.startedAt.Add(90 * time.Second) }

	health := svc.Health(context.Background())

	assert.True(t, health.Success)
	assert.Equal(t, "HEFIN API is healthy", health.Message)
	assert.Equal(t, "2026-03-01T12:01:30Z", health.Timestamp)
	assert.InDelta(t, 90.0, health.Uptime, 1e-9)
	assert.Equal(t, "production", health.Environment)
	assert.Equal(t, "1.2.0", health.Version)
}
