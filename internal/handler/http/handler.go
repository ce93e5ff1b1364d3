package http

import (
	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// limiter is nil when rate limiting is disabled.
	limiter *RateLimiter

	app    config.App
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		metrics:  m,
		app:      cfg.App,
		server:   cfg.Server,
		logger:   logger,
	}
	if cfg.Server.RateLimitRPS >= 0 {
		h.limiter = NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	logger.Info().Msg("http handler created")
	return h
}

// RateLimiter returns the per-IP limiter of the public form endpoints, or
// nil when limiting is disabled.
func (h *Handler) RateLimiter() *RateLimiter {
	return h.limiter
}
