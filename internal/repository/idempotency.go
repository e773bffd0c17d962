package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/account-service/internal/models"
)

// IdempotencyRepository stores responses of already-processed requests.
//
// A request first reserves its key; only the reservation holder runs the
// handler and then either completes the key with the response or releases it.
type IdempotencyRepository interface {
	Reserve(ctx context.Context, key, requestPath string, lease time.Duration) (bool, error)
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Complete(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

type idempotencyRepository struct {
	db DBTX
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(db DBTX) IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

// Reserve claims key for the caller. It reports false when the key is already
// completed or held by a reservation younger than lease.
func (r *idempotencyRepository) Reserve(ctx context.Context, key, requestPath string, lease time.Duration) (bool, error) {
	query := `
		INSERT INTO idempotency_keys (key, request_path, completed, created_at)
		VALUES ($1, $2, FALSE, NOW())
		ON CONFLICT (key, request_path) DO UPDATE
		SET created_at = NOW()
		WHERE NOT idempotency_keys.completed
		  AND idempotency_keys.created_at < NOW() - make_interval(secs => $3)
	`

	result, err := r.db.ExecContext(ctx, query, key, requestPath, lease.Seconds())
	if err != nil {
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// Get returns the row for key and path, or nil when none exists
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, request_path, response_status, response_body, completed, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2
	`

	var idemKey models.IdempotencyKey
	err := r.db.QueryRowContext(ctx, query, key, requestPath).Scan(
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.Completed,
		&idemKey.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Complete records the response on a pending reservation. A key that is
// already completed keeps its first response.
func (r *idempotencyRepository) Complete(ctx context.Context, idemKey *models.IdempotencyKey) error {
	query := `
		INSERT INTO idempotency_keys (key, request_path, response_status, response_body, completed, created_at)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		ON CONFLICT (key, request_path) DO UPDATE
		SET response_status = EXCLUDED.response_status,
		    response_body = EXCLUDED.response_body,
		    completed = TRUE
		WHERE NOT idempotency_keys.completed
	`

	createdAt := idemKey.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}

	return nil
}

// Release drops a pending reservation so the key can be retried.
// Completed keys are left untouched.
func (r *idempotencyRepository) Release(ctx context.Context, key, requestPath string) error {
	query := `DELETE FROM idempotency_keys WHERE key = $1 AND request_path = $2 AND NOT completed`

	if _, err := r.db.ExecContext(ctx, query, key, requestPath); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
