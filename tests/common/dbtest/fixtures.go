//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Well-known IDs for seeded reference rows so tests can address them
// without lookups.
var (
	SeedVenueID       = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	SeedSpaceID       = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	SeedCatalogItemID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `
		INSERT INTO venues (id, name, address)
		VALUES ($1, 'Riverside Hall', '1 River St')
		ON CONFLICT (id) DO NOTHING`, SeedVenueID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO spaces (id, venue_id, name, hourly_rate_cents, is_active)
		VALUES ($1, $2, 'Main Hall', 10000, true)
		ON CONFLICT (id) DO NOTHING`, SeedSpaceID, SeedVenueID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO catalog_items (id, name, unit_price_cents, included_hours, extra_hour_rate_cents, is_active)
		VALUES ($1, 'Catering', 5000, 0, 0, true)
		ON CONFLICT (id) DO NOTHING`, SeedCatalogItemID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO admin_settings (key, value) VALUES
			('refund_percent', '80'),
			('auto_approve', 'false')
		ON CONFLICT (key) DO NOTHING`); err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
