// Package workers runs the periodic background jobs of the HEFIN server on
// a cron scheduler.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/hefin/models"
)

// Worker is a job run on a schedule. It matches [cron.Job], so workers are
// registered with the scheduler directly.
type Worker interface {
	Run()
}

// LedgerStatusReader reads and verifies the data-pointer ledger.
type LedgerStatusReader interface {
	LedgerStatus(ctx context.Context) (models.LedgerStatus, error)
}

// LedgerHealthReporter receives the outcome of every ledger check.
type LedgerHealthReporter interface {
	SetLedgerServing(ok bool)
}

// LimiterCleaner drops idle rate-limiter buckets.
type LimiterCleaner interface {
	Cleanup(idle time.Duration) int
	Len() int
}
