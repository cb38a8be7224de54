package readstore

import (
	"context"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"
	"venuehub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const findCatalogItemsSQL = `
SELECT id, name, unit_price_cents, included_hours, extra_hour_rate_cents, default_vendor_id
FROM catalog_items
WHERE id = ANY($1) AND is_active
`

func (r *CatalogReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.CatalogItemSnapshot, error) {
	rows, err := r.db.Query(ctx, findCatalogItemsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load catalog items", err)
	}
	defer rows.Close()

	var items []shared.CatalogItemSnapshot
	for rows.Next() {
		var it shared.CatalogItemSnapshot
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPriceCents, &it.IncludedHours, &it.ExtraHourRateCents, &it.DefaultVendorID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog items", err)
	}
	return items, nil
}
