//go:build unit

package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuehub/internal/infra/readstore"
	"venuehub/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB serves admin_settings lookups from an in-memory map.
type fakeDB struct {
	values map[string]string
	err    error
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	key, _ := args[0].(string)
	value, ok := f.values[key]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: value}
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if s, ok := dest[0].(*string); ok {
			*s = r.value
		}
	}
	return nil
}

func testSettingsConfig() config.SettingsConfig {
	return config.SettingsConfig{
		CacheTTL:             time.Minute,
		DefaultRefundPercent: 80,
		DefaultAutoApprove:   false,
	}
}

func newTestProvider(db *fakeDB) *Provider {
	return &Provider{
		store: readstore.NewSettingsReadStore(db),
		cfg:   testSettingsConfig(),
	}
}

func TestProvider_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name              string
		values            map[string]string
		wantRefundPercent int
		wantAutoApprove   bool
	}{
		{
			name:              "stored values override defaults",
			values:            map[string]string{"refund_percent": "50", "auto_approve": "true"},
			wantRefundPercent: 50,
			wantAutoApprove:   true,
		},
		{
			name:              "missing rows fall back to defaults",
			values:            map[string]string{},
			wantRefundPercent: 80,
			wantAutoApprove:   false,
		},
		{
			name:              "malformed values fall back to defaults",
			values:            map[string]string{"refund_percent": "eighty", "auto_approve": "maybe"},
			wantRefundPercent: 80,
			wantAutoApprove:   false,
		},
		{
			name:              "out of range percent falls back to default",
			values:            map[string]string{"refund_percent": "150"},
			wantRefundPercent: 80,
			wantAutoApprove:   false,
		},
		{
			name:              "zero percent is a valid stored value",
			values:            map[string]string{"refund_percent": "0"},
			wantRefundPercent: 0,
			wantAutoApprove:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(&fakeDB{values: tt.values})

			pct, err := p.RefundPercent(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRefundPercent, pct)

			auto, err := p.AutoApprove(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAutoApprove, auto)
		})
	}
}

func TestProvider_Cache(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{values: map[string]string{"refund_percent": "60"}}
	p := newTestProvider(db)

	pct, err := p.RefundPercent(ctx)
	require.NoError(t, err)
	require.Equal(t, 60, pct)

	// A change in storage stays invisible until the cache is invalidated.
	db.values["refund_percent"] = "30"

	pct, err = p.RefundPercent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, pct)

	p.Invalidate()

	pct, err = p.RefundPercent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, pct)
}

func TestProvider_DatabaseError(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(&fakeDB{err: errors.New("connection refused")})

	_, err := p.RefundPercent(ctx)
	require.Error(t, err)

	_, err = p.AutoApprove(ctx)
	require.Error(t, err)
}
