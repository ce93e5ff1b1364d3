// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
)

const ledgerVerifyTimeout = time.Minute

// LedgerVerifier re-verifies the whole pointer chain and publishes the
// result as metrics and as the ledger's gRPC health status.
type LedgerVerifier struct {
	ledger   LedgerStatusReader
	reporter LedgerHealthReporter
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewLedgerVerifier builds the job. reporter may be nil.
func NewLedgerVerifier(ledger LedgerStatusReader, reporter LedgerHealthReporter, m *metrics.Metrics, logger *logger.Logger) *LedgerVerifier {
	return &LedgerVerifier{
		ledger:   ledger,
		reporter: reporter,
		metrics:  m,
		logger:   logger,
	}
}

func (v *LedgerVerifier) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), ledgerVerifyTimeout)
	defer cancel()

	status, err := v.ledger.LedgerStatus(ctx)

	result := "ok"
	switch {
	case err != nil:
		result = "error"
		v.logger.Err(err).Str("func", "*LedgerVerifier.Run").Msg("error reading ledger status")
	case !status.Verified:
		result = "broken"
		v.logger.Error().Str("func", "*LedgerVerifier.Run").
			Uint64("height", status.Height).
			Str("head_hash", status.HeadHash).
			Msg("ledger chain verification failed")
	default:
		v.logger.Debug().Uint64("height", status.Height).Msg("ledger chain verified")
	}

	v.metrics.LedgerChecks.WithLabelValues(result).Inc()
	if err == nil {
		v.metrics.LedgerHeight.Set(float64(status.Height))
	}
	if v.reporter != nil {
		v.reporter.SetLedgerServing(result == "ok")
	}
}
