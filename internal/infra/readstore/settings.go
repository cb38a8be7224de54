package readstore

import (
	"context"
	"errors"

	"venuehub/internal/infra"
	"venuehub/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

const getSettingSQL = `
SELECT value FROM admin_settings WHERE key = $1
`

// Get returns the raw setting value. Missing keys surface as KindNotFound so
// the provider can fall back to configured defaults.
func (r *SettingsReadStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.QueryRow(ctx, getSettingSQL, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("setting not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load setting", err)
	}
	return value, nil
}
