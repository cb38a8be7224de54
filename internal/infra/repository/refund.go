package repository

import (
	"context"

	"venuehub/internal/domain/refund"
	"venuehub/internal/infra"
	"venuehub/internal/infra/db"

	"github.com/google/uuid"
)

type RefundRepository struct {
	db db.DBTX
}

func NewRefundRepository(dbtx db.DBTX) *RefundRepository {
	return &RefundRepository{db: dbtx}
}

const createRefundSQL = `
INSERT INTO refunds (id, booking_id, amount_cents, status, reason)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *RefundRepository) Create(ctx context.Context, tx db.DBTX, ref *refund.Refund) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createRefundSQL,
		ref.ID(),
		ref.BookingID(),
		ref.Amount().Cents(),
		ref.Status().String(),
		ref.Reason(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create refund", err)
	}
	return id, nil
}
