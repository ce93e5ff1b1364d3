package workers

import (
	"testing"
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeCleaner struct {
	clients int
	removed int
	idle    time.Duration
}

func (f *fakeCleaner) Cleanup(idle time.Duration) int {
	f.idle = idle
	f.clients -= f.removed
	return f.removed
}

func (f *fakeCleaner) Len() int { return f.clients }

func TestLimiterJanitor_Run(t *testing.T) {
	m := metrics.New()
	cleaner := &fakeCleaner{clients: 5, removed: 2}

	NewLimiterJanitor(cleaner, 3*time.Minute, m, logger.Nop()).Run()

	assert.Equal(t, 3*time.Minute, cleaner.idle)
	assert.Equal(t, float64(3), testutil.ToFloat64(m.LimiterClients))
}

func TestLimiterJanitor_DefaultIdle(t *testing.T) {
	cleaner := &fakeCleaner{}

	NewLimiterJanitor(cleaner, 0, metrics.New(), logger.Nop()).Run()

	assert.Equal(t, DefaultLimiterIdle, cleaner.idle)
}
