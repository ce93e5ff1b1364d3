package handler

import (
	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/handler/grpc"
	"github.com/MKhiriev/hefin/internal/handler/http"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
