package repository

import (
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type bookingRow struct {
	ID             uuid.UUID
	Reference      string
	SpaceID        uuid.UUID
	UserID         uuid.UUID
	StartsAt       time.Time
	EndsAt         time.Time
	EventType      string
	Status         string
	TotalCents     int64
	BrokerageCents *int64
	Note           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type itemRow struct {
	ID             uuid.UUID
	CatalogItemID  uuid.UUID
	VendorID       *uuid.UUID
	Quantity       int32
	UnitPriceCents int64
	TotalCents     int64
	Status         string
}

func scanItemRows(rows pgx.Rows) ([]itemRow, []uuid.UUID, error) {
	defer rows.Close()

	var items []itemRow
	var ids []uuid.UUID
	for rows.Next() {
		var it itemRow
		if err := rows.Scan(&it.ID, &it.CatalogItemID, &it.VendorID, &it.Quantity, &it.UnitPriceCents, &it.TotalCents, &it.Status); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
		ids = append(ids, it.ID)
	}
	return items, ids, rows.Err()
}

func scanRejectionRows(rows pgx.Rows) (map[uuid.UUID][]booking.VendorRejection, error) {
	defer rows.Close()

	out := map[uuid.UUID][]booking.VendorRejection{}
	for rows.Next() {
		var itemID uuid.UUID
		var rej booking.VendorRejection
		if err := rows.Scan(&itemID, &rej.VendorID, &rej.Note, &rej.RejectedAt); err != nil {
			return nil, err
		}
		out[itemID] = append(out[itemID], rej)
	}
	return out, rows.Err()
}

func buildBookingAggregate(row bookingRow, items []itemRow, rejections map[uuid.UUID][]booking.VendorRejection) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(row.StartsAt, row.EndsAt)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking slot is invalid")
	}
	status, err := booking.NormalizeStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking status is invalid")
	}
	eventType, err := booking.NewEventType(row.EventType)
	if err != nil {
		return nil, errs.Wrap(err, "stored event type is invalid")
	}

	lineItems := make([]*booking.LineItem, len(items))
	for i, it := range items {
		itemStatus, err := booking.NewItemStatus(it.Status)
		if err != nil {
			return nil, errs.Wrap(err, "stored item status is invalid")
		}
		lineItems[i] = booking.ReconstructLineItem(
			it.ID,
			it.CatalogItemID,
			it.VendorID,
			it.Quantity,
			booking.NewMoney(it.UnitPriceCents),
			booking.NewMoney(it.TotalCents),
			itemStatus,
			rejections[it.ID],
		)
	}

	var brokerage *booking.Money
	if row.BrokerageCents != nil {
		m := booking.NewMoney(*row.BrokerageCents)
		brokerage = &m
	}

	return booking.ReconstructBooking(
		row.ID,
		booking.ReconstructReference(row.Reference),
		row.SpaceID,
		row.UserID,
		slot,
		eventType,
		status,
		booking.NewMoney(row.TotalCents),
		brokerage,
		booking.NewNote(row.Note),
		lineItems,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
