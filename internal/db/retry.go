// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	maxRetries     = 3
	retryBaseDelay = 10 * time.Millisecond
)

// Postgres error codes that indicate a retriable write conflict.
const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// WithRetry runs fn inside WithTx and retries the whole unit when the commit
// fails with a write conflict. Re-running fn re-evaluates every precondition,
// stale values from an aborted attempt are never reused. Business errors are
// returned as-is, they are legitimate outcomes, not transient faults.
func (d *DBClient) WithRetry(ctx context.Context, fn func(context.Context) error) error {
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBaseDelay << attempt):
			}
		}

		err = d.WithTx(ctx, fn)
		if err == nil || !isRetriable(err) {
			return err
		}

		d.logger.Debugf("retrying transaction after write conflict (attempt %d): %v", attempt+1, err)
	}

	return err
}

func isRetriable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}
