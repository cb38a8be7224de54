package readstore

import (
	"context"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"
	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefundReadStore struct {
	db db.DBTX
}

func NewRefundReadStore(dbtx db.DBTX) *RefundReadStore {
	return &RefundReadStore{db: dbtx}
}

const listRefundsSQL = `
SELECT r.id, r.booking_id, b.reference, r.amount_cents, r.status, r.reason, r.created_at
FROM refunds r
JOIN bookings b ON b.id = r.booking_id
ORDER BY r.created_at DESC, r.id DESC
LIMIT $1
`

func (r *RefundReadStore) List(ctx context.Context, limit int32) ([]*queries.RefundView, error) {
	rows, err := r.db.Query(ctx, listRefundsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list refunds", err)
	}
	defer rows.Close()

	result := []*queries.RefundView{}
	for rows.Next() {
		view := queries.RefundView{}
		if err := rows.Scan(&view.ID, &view.BookingID, &view.BookingReference,
			&view.AmountCents, &view.Status, &view.Reason, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan refund", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read refunds", err)
	}
	return result, nil
}

const hasOpenRefundSQL = `
SELECT EXISTS (
	SELECT 1 FROM refunds
	WHERE booking_id = $1 AND status IN ('pending', 'processing')
)
`

func (r *RefundReadStore) HasOpenRefund(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasOpenRefundSQL, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check open refund", err)
	}
	return exists, nil
}
