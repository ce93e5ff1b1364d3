package service

import (
	"context"
	"time"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
)

const healthyMessage = "HEFIN API is healthy"

type appInfoService struct {
	appVersion  string
	environment string
	startedAt   time.Time
	now         func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		startedAt:   time.Now(),
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports process uptime in seconds.
func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	now := s.now()
	return models.HealthStatus{
		Success:     true,
		Message:     healthyMessage,
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Uptime:      now.Sub(s.startedAt).Seconds(),
		Environment: s.environment,
		Version:     s.appVersion,
	}
}
