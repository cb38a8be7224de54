package readstore

import (
	"context"
	"errors"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"
	"venuehub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SpaceReadStore struct {
	db db.DBTX
}

func NewSpaceReadStore(dbtx db.DBTX) *SpaceReadStore {
	return &SpaceReadStore{db: dbtx}
}

const findSpaceSQL = `
SELECT id, venue_id, name, hourly_rate_cents, is_active
FROM spaces
WHERE id = $1
`

// Locks the space row until commit so concurrent conflict checks for the
// same space serialize.
const findSpaceForUpdateSQL = findSpaceSQL + `
FOR UPDATE
`

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	return r.scanSpace(ctx, findSpaceSQL, id)
}

func (r *SpaceReadStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	return r.scanSpace(ctx, findSpaceForUpdateSQL, id)
}

func (r *SpaceReadStore) scanSpace(ctx context.Context, sql string, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	snap := shared.SpaceSnapshot{}
	err := r.db.QueryRow(ctx, sql, id).Scan(&snap.ID, &snap.VenueID, &snap.Name, &snap.HourlyRateCents, &snap.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space", err)
	}
	return &snap, nil
}
