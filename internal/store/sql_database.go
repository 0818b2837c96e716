package store

import (
	"context"
	"database/sql"

	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// maxExecAttempts bounds how many times a statement is attempted when the
// driver reports transient failures (connection loss, deadlock rollback,
// serialization failure).
const maxExecAttempts = 3

// ExecRetryable executes a statement, re-attempting it while the error
// classificator reports the failure as [Retryable]. Statements passed here
// must be safe to repeat: conditional UPDATEs qualify, plain INSERTs do not.
//
// Known ambiguity: if the statement commits but the connection drops before
// the result arrives, the retry runs against the already-updated row. For a
// conditional UPDATE that retry matches zero rows, so the caller that
// actually won the transition is told it lost. State stays consistent (the
// transition happened exactly once); only the winner's response is wrong.
func (db *DB) ExecRetryable(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	var err error

	for attempt := 1; attempt <= maxExecAttempts; attempt++ {
		result, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator.Classify(err) == NonRetryable {
			return result, err
		}
		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient database error, retrying statement")
	}

	return result, err
}
