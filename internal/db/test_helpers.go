package db

import (
	"context"
)

// ResetForTest migrates the schema and empties every table so each test
// starts from a clean database.
func (db *DB) ResetForTest(ctx context.Context) error {
	if err := db.Migrate(ctx); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, `
		TRUNCATE TABLE idempotency_keys;
		TRUNCATE TABLE accounts RESTART IDENTITY;
	`)
	return err
}
