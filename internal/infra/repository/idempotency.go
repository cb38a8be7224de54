package repository

import (
	"context"
	"time"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

const tryInsertIdempotencySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
`

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := tx.Exec(ctx, tryInsertIdempotencySQL, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

const completeIdempotencySQL = `
UPDATE idempotency_keys
SET status = 'completed', response_hash = $3, result_booking_id = $4, updated_at = now()
WHERE key = $1 AND user_id = $2
`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error {
	_, err := tx.Exec(ctx, completeIdempotencySQL, key, userID, resultHash, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

// ClaimExpiredKey takes over an expired key in place so a retried request can
// proceed after an earlier attempt died mid-flight.
const claimExpiredIdempotencySQL = `
UPDATE idempotency_keys
SET request_hash = $3, status = 'processing', response_hash = NULL, result_booking_id = NULL, expires_at = $4, updated_at = now()
WHERE key = $1 AND user_id = $2 AND expires_at < now()
`

func (r *IdempotencyRepository) ClaimExpiredKey(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, claimExpiredIdempotencySQL, key, userID, requestHash, expiresAt)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}
