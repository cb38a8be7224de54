package readstore

import (
	"context"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"
	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
)

type VendorReadStore struct {
	db db.DBTX
}

func NewVendorReadStore(dbtx db.DBTX) *VendorReadStore {
	return &VendorReadStore{db: dbtx}
}

const listVendorItemsSQL = `
SELECT bi.id, bi.booking_id, b.reference, s.name AS space_name, b.starts_at, b.ends_at,
       ci.name AS catalog_item_name, bi.quantity, bi.status
FROM booking_items bi
JOIN bookings b ON b.id = bi.booking_id
JOIN spaces s ON s.id = b.space_id
JOIN catalog_items ci ON ci.id = bi.catalog_item_id
WHERE bi.vendor_id = $1 AND bi.status <> 'cancelled'
ORDER BY b.starts_at, bi.id
`

func (r *VendorReadStore) ItemsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.VendorItemView, error) {
	rows, err := r.db.Query(ctx, listVendorItemsSQL, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor items", err)
	}
	defer rows.Close()

	result := []*queries.VendorItemView{}
	for rows.Next() {
		view := queries.VendorItemView{}
		if err := rows.Scan(&view.ID, &view.BookingID, &view.BookingReference, &view.SpaceName,
			&view.StartsAt, &view.EndsAt, &view.CatalogItemName, &view.Quantity, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vendor item", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vendor items", err)
	}
	return result, nil
}
