package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification tells whether a failed operation may succeed when
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryableCodes lists transient PostgreSQL conditions from classes 08, 40,
// 53 and 57.
var retryableCodes = map[string]struct{}{
	pgerrcode.ConnectionException:                     {},
	pgerrcode.ConnectionDoesNotExist:                  {},
	pgerrcode.ConnectionFailure:                       {},
	pgerrcode.TransactionRollback:                     {},
	pgerrcode.SerializationFailure:                    {},
	pgerrcode.DeadlockDetected:                        {},
	pgerrcode.CannotConnectNow:                        {},
	pgerrcode.AdminShutdown:                           {},
	pgerrcode.TooManyConnections:                      {},
	pgerrcode.SQLClientUnableToEstablishSQLConnection: {},
}

// PostgresErrorClassifier implements [ErrorClassificator] using the pgconn
// error code. Anything that is not a known transient code, including
// non-PostgreSQL errors, is NonRetryable.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	if _, ok := retryableCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
