package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// startServer serves h on a loopback port and returns a connected client.
func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := gogrpc.NewServer(gogrpc.ChainUnaryInterceptor(h.UnaryLogger))
	h.Register(server)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := gogrpc.NewClient(listener.Addr().String(), gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
	return resp.GetStatus(), err
}

func TestHandler_HealthServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startServer(t, h)

	for _, name := range []string{ServiceServer, ServiceLedger} {
		st, err := check(t, client, name)
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st, "service %q", name)
	}
}

func TestHandler_SetLedgerServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startServer(t, h)

	h.SetLedgerServing(false)
	st, err := check(t, client, ServiceLedger)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)

	// the server itself stays healthy
	st, err = check(t, client, ServiceServer)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)

	h.SetLedgerServing(true)
	st, err = check(t, client, ServiceLedger)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startServer(t, h)

	_, err := check(t, client, "hefin.unknown")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := startServer(t, h)

	h.Shutdown()

	st, err := check(t, client, ServiceServer)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)
}

func TestHandler_UnaryLoggerPassesThrough(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	wantErr := status.Error(codes.Unavailable, "down")

	resp, err := h.UnaryLogger(context.Background(), "req", &gogrpc.UnaryServerInfo{FullMethod: "/svc/Method"},
		func(ctx context.Context, req any) (any, error) {
			return "resp", wantErr
		})

	assert.Equal(t, "resp", resp)
	assert.True(t, errors.Is(err, wantErr))
}
