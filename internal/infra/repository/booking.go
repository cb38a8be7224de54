package repository

import (
	"context"

	"venuehub/internal/domain/booking"
	"venuehub/internal/infra"
	"venuehub/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO bookings (id, reference, space_id, user_id, starts_at, ends_at, event_type, status, total_cents, brokerage_cents, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

const createBookingItemSQL = `
INSERT INTO booking_items (id, booking_id, catalog_item_id, vendor_id, quantity, unit_price_cents, total_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var brokerage *int64
	if b.Brokerage() != nil {
		cents := b.Brokerage().Cents()
		brokerage = &cents
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.Reference().String(),
		b.SpaceID(),
		b.UserID(),
		b.Slot().Start(),
		b.Slot().End(),
		b.EventType().String(),
		b.Status().String(),
		b.Total().Cents(),
		brokerage,
		b.Note().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	for _, item := range b.Items() {
		_, err := tx.Exec(ctx, createBookingItemSQL,
			item.ID(),
			b.ID(),
			item.CatalogItemID(),
			item.VendorID(),
			item.Quantity(),
			item.UnitPrice().Cents(),
			item.Total().Cents(),
			item.Status().String(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create booking item", err)
		}
	}

	return id, nil
}

const findBookingSQL = `
SELECT id, reference, space_id, user_id, starts_at, ends_at, event_type, status, total_cents, brokerage_cents, note, created_at, updated_at
FROM bookings
WHERE id = $1
`

const findBookingItemsSQL = `
SELECT id, catalog_item_id, vendor_id, quantity, unit_price_cents, total_cents, status
FROM booking_items
WHERE booking_id = $1
ORDER BY created_at
`

const findItemRejectionsSQL = `
SELECT item_id, vendor_id, note, rejected_at
FROM item_rejections
WHERE item_id = ANY($1)
ORDER BY rejected_at
`

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := bookingRow{}
	err := tx.QueryRow(ctx, findBookingSQL, id).Scan(
		&row.ID, &row.Reference, &row.SpaceID, &row.UserID,
		&row.StartsAt, &row.EndsAt, &row.EventType, &row.Status,
		&row.TotalCents, &row.BrokerageCents, &row.Note,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	itemRows, err := tx.Query(ctx, findBookingItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking items", err)
	}
	items, itemIDs, err := scanItemRows(itemRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking items", err)
	}

	rejections := map[uuid.UUID][]booking.VendorRejection{}
	if len(itemIDs) > 0 {
		rejRows, err := tx.Query(ctx, findItemRejectionsSQL, itemIDs)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load item rejections", err)
		}
		rejections, err = scanRejectionRows(rejRows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item rejections", err)
		}
	}

	return buildBookingAggregate(row, items, rejections)
}

const updateBookingSQL = `
UPDATE bookings
SET status = $2, starts_at = $3, ends_at = $4, total_cents = $5, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingSQL,
		b.ID(),
		b.Status().String(),
		b.Slot().Start(),
		b.Slot().End(),
		b.Total().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const saveItemSQL = `
UPDATE booking_items
SET vendor_id = $2, status = $3, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) SaveItem(ctx context.Context, tx db.DBTX, item *booking.LineItem) error {
	tag, err := tx.Exec(ctx, saveItemSQL, item.ID(), item.VendorID(), item.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to save booking item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking item not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBookingItemsSQL = `
DELETE FROM booking_items WHERE booking_id = $1
`

// ReplaceItems swaps the line item set wholesale. Edited bookings get fresh
// item rows; the old items' rejection history goes with them.
func (r *BookingRepository) ReplaceItems(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, items []*booking.LineItem) error {
	if _, err := tx.Exec(ctx, deleteBookingItemsSQL, bookingID); err != nil {
		return infra.WrapRepoErr("failed to delete booking items", err)
	}
	for _, item := range items {
		_, err := tx.Exec(ctx, createBookingItemSQL,
			item.ID(),
			bookingID,
			item.CatalogItemID(),
			item.VendorID(),
			item.Quantity(),
			item.UnitPrice().Cents(),
			item.Total().Cents(),
			item.Status().String(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking item", err)
		}
	}
	return nil
}

const cancelItemsSQL = `
UPDATE booking_items
SET status = 'cancelled', updated_at = now()
WHERE booking_id = $1
`

func (r *BookingRepository) CancelItems(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	if _, err := tx.Exec(ctx, cancelItemsSQL, bookingID); err != nil {
		return infra.WrapRepoErr("failed to cancel booking items", err)
	}
	return nil
}

const addItemRejectionSQL = `
INSERT INTO item_rejections (item_id, vendor_id, note, rejected_at)
VALUES ($1, $2, $3, $4)
`

func (r *BookingRepository) AddItemRejection(ctx context.Context, tx db.DBTX, itemID uuid.UUID, rejection booking.VendorRejection) error {
	_, err := tx.Exec(ctx, addItemRejectionSQL, itemID, rejection.VendorID, rejection.Note, rejection.RejectedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record item rejection", err)
	}
	return nil
}
