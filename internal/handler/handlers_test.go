package handler

import (
	"testing"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(httpAddress, grpcAddress string) config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{
			HTTPAddress:  httpAddress,
			GRPCAddress:  grpcAddress,
			RateLimitRPS: -1,
		},
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name        string
		httpAddress string
		grpcAddress string
		wantHTTP    bool
		wantGRPC    bool
		wantErr     error
	}{
		{name: "both addresses", httpAddress: ":3000", grpcAddress: ":9090", wantHTTP: true, wantGRPC: true},
		{name: "only HTTP", httpAddress: ":3000", wantHTTP: true},
		{name: "only gRPC", grpcAddress: ":9090", wantGRPC: true},
		{name: "no addresses", wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, newTestConfig(tt.httpAddress, tt.grpcAddress), metrics.New(), logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := newTestConfig(":3000", ":9090")

	h1, err1 := NewHandlers(&service.Services{}, cfg, metrics.New(), logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, cfg, metrics.New(), logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
