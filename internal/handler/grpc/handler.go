// Package grpc exposes the standard gRPC health service of the HEFIN server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/service"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Health service names. The empty name reports the whole server.
const (
	ServiceServer = ""
	ServiceLedger = "hefin.ledger"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler creates a handler whose health service reports SERVING for the
// server and the ledger until told otherwise.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(ServiceServer, healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceLedger, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *gogrpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetLedgerServing reports the result of the latest ledger verification.
func (h *Handler) SetLedgerServing(ok bool) {
	st := healthpb.HealthCheckResponse_SERVING
	if !ok {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(ServiceLedger, st)
}

// Shutdown switches every service to NOT_SERVING so that watchers drain
// before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogger logs every unary call with its status code.
func (h *Handler) UnaryLogger(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, next gogrpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Info().
		Str("grpc_method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
