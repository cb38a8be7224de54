package queries

import (
	"context"
)

type RefundQueries interface {
	List(ctx context.Context, limit int) ([]*RefundView, error)
}

type RefundReadStore interface {
	List(ctx context.Context, limit int32) ([]*RefundView, error)
}

type refundQueriesImpl struct {
	store RefundReadStore
}

func NewRefundQueries(store RefundReadStore) RefundQueries {
	return &refundQueriesImpl{store: store}
}

func (q *refundQueriesImpl) List(ctx context.Context, limit int) ([]*RefundView, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = 50
	}
	return q.store.List(ctx, int32(limit))
}
