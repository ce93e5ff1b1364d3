package workers

import (
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
)

// DefaultLimiterIdle is how long a client may stay silent before its bucket
// is dropped.
const DefaultLimiterIdle = 10 * time.Minute

// LimiterJanitor removes idle rate-limiter buckets and exports the number
// of tracked clients.
type LimiterJanitor struct {
	limiter LimiterCleaner
	idle    time.Duration
	metrics *metrics.Metrics

	logger *logger.Logger
}

func NewLimiterJanitor(limiter LimiterCleaner, idle time.Duration, m *metrics.Metrics, logger *logger.Logger) *LimiterJanitor {
	if idle <= 0 {
		idle = DefaultLimiterIdle
	}
	return &LimiterJanitor{
		limiter: limiter,
		idle:    idle,
		metrics: m,
		logger:  logger,
	}
}

func (j *LimiterJanitor) Run() {
	removed := j.limiter.Cleanup(j.idle)
	clients := j.limiter.Len()

	j.metrics.LimiterClients.Set(float64(clients))
	if removed > 0 {
		j.logger.Debug().Int("removed", removed).Int("clients", clients).Msg("idle rate limiter buckets dropped")
	}
}
