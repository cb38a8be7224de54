package queries

import (
	"context"

	"github.com/google/uuid"
)

type VendorQueries interface {
	ListAssignedItems(ctx context.Context, vendorID uuid.UUID) ([]*VendorItemView, error)
}

type VendorReadStore interface {
	ItemsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*VendorItemView, error)
}

type vendorQueriesImpl struct {
	store VendorReadStore
}

func NewVendorQueries(store VendorReadStore) VendorQueries {
	return &vendorQueriesImpl{store: store}
}

func (q *vendorQueriesImpl) ListAssignedItems(ctx context.Context, vendorID uuid.UUID) ([]*VendorItemView, error) {
	return q.store.ItemsByVendor(ctx, vendorID)
}
