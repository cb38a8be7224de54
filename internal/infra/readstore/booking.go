package readstore

import (
	"context"
	"errors"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/infra"
	"venuehub/internal/infra/db"
	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// effectiveStatus derives completion in SQL so list and detail reads agree
// with the domain rule without storing a completed status.
const effectiveStatusExpr = `
CASE WHEN b.status = 'approved' AND b.ends_at <= now() THEN 'completed' ELSE b.status END
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingViewSQL = `
SELECT b.id, b.reference, b.space_id, s.name AS space_name, b.user_id, u.email AS user_email,
       b.starts_at, b.ends_at, b.event_type, ` + effectiveStatusExpr + ` AS status,
       b.total_cents, b.brokerage_cents, NULLIF(b.note, '') AS note, b.created_at, b.updated_at
FROM bookings b
JOIN spaces s ON s.id = b.space_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1
`

const findBookingItemViewsSQL = `
SELECT bi.id, bi.catalog_item_id, ci.name AS catalog_item_name, bi.vendor_id,
       bi.quantity, bi.unit_price_cents, bi.total_cents, bi.status
FROM booking_items bi
JOIN catalog_items ci ON ci.id = bi.catalog_item_id
WHERE bi.booking_id = $1
ORDER BY bi.created_at
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view := queries.BookingView{}
	err := r.db.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&view.ID, &view.Reference, &view.SpaceID, &view.SpaceName,
		&view.UserID, &view.UserEmail,
		&view.StartsAt, &view.EndsAt, &view.EventType, &view.Status,
		&view.TotalCents, &view.BrokerageCents, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	rows, err := r.db.Query(ctx, findBookingItemViewsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking items", err)
	}
	defer rows.Close()

	view.Items = []queries.BookingItemView{}
	for rows.Next() {
		item := queries.BookingItemView{}
		if err := rows.Scan(&item.ID, &item.CatalogItemID, &item.CatalogItemName, &item.VendorID,
			&item.Quantity, &item.UnitPriceCents, &item.TotalCents, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking item", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking items", err)
	}

	return &view, nil
}

const listBookingsByUserFirstPageSQL = `
SELECT b.id, b.reference, b.space_id, s.name AS space_name, b.starts_at, b.ends_at,
       b.event_type, ` + effectiveStatusExpr + ` AS status, b.total_cents, b.created_at
FROM bookings b
JOIN spaces s ON s.id = b.space_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

const listBookingsByUserKeysetSQL = `
SELECT b.id, b.reference, b.space_id, s.name AS space_name, b.starts_at, b.ends_at,
       b.event_type, ` + effectiveStatusExpr + ` AS status, b.total_cents, b.created_at
FROM bookings b
JOIN spaces s ON s.id = b.space_id
WHERE b.user_id = $1 AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsByUserFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsByUserKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return scanBookingListItems(rows)
}

const listBookingsByStatusSQL = `
SELECT b.id, b.reference, b.space_id, s.name AS space_name, b.starts_at, b.ends_at,
       b.event_type, ` + effectiveStatusExpr + ` AS status, b.total_cents, b.created_at
FROM bookings b
JOIN spaces s ON s.id = b.space_id
WHERE ($1::text IS NULL OR ` + effectiveStatusExpr + ` = $1)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

// FindByStatus lists bookings for the admin board, optionally filtered by
// effective status.
func (r *BookingReadStore) FindByStatus(ctx context.Context, status *string, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsByStatusSQL, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}
	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	result := []*queries.BookingListItem{}
	for rows.Next() {
		item := queries.BookingListItem{}
		if err := rows.Scan(&item.ID, &item.Reference, &item.SpaceID, &item.SpaceName,
			&item.StartsAt, &item.EndsAt, &item.EventType, &item.Status,
			&item.TotalCents, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return result, nil
}

const activeWindowsSQL = `
SELECT id, reference, starts_at, ends_at
FROM bookings
WHERE space_id = $1
  AND status IN ('pending', 'approved', 'edited')
  AND event_type <> 'live_show'
`

// ActiveWindows returns the occupied time windows of a space for conflict
// detection. Only statuses that hold the slot count; exempt event types are
// filtered out on the existing side here and on the requested side by the
// domain checker.
func (r *BookingReadStore) ActiveWindows(ctx context.Context, spaceID uuid.UUID) ([]booking.Window, error) {
	rows, err := r.db.Query(ctx, activeWindowsSQL, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active booking windows", err)
	}
	defer rows.Close()

	var windows []booking.Window
	for rows.Next() {
		var (
			id         uuid.UUID
			reference  string
			start, end time.Time
		)
		if err := rows.Scan(&id, &reference, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking window", err)
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking window is invalid", err)
		}
		windows = append(windows, booking.Window{
			BookingID: id,
			Reference: reference,
			Slot:      slot,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking windows", err)
	}
	return windows, nil
}

const bookingIDByItemSQL = `
SELECT booking_id FROM booking_items WHERE id = $1
`

func (r *BookingReadStore) BookingIDByItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, bookingIDByItemSQL, itemID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("booking item not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find booking by item", err)
	}
	return id, nil
}
