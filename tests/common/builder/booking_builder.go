//go:build unit || e2e

package builder

import (
	"time"

	"venuehub/internal/domain/booking"

	"github.com/google/uuid"
)

// BaseTime is the fixed "now" used across booking tests; slots are laid out
// relative to it so cancellation-window cases read as offsets.
var BaseTime = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	id        uuid.UUID
	spaceID   uuid.UUID
	userID    uuid.UUID
	start     time.Time
	end       time.Time
	eventType booking.EventType
	status    booking.Status
	total     int64
	note      string
	items     []*booking.LineItem
}

func NewBookingBuilder() *BookingBuilder {
	id := uuid.New()
	return &BookingBuilder{
		id:        id,
		spaceID:   uuid.New(),
		userID:    uuid.New(),
		start:     BaseTime.Add(48 * time.Hour),
		end:       BaseTime.Add(50 * time.Hour),
		eventType: booking.EventTypeStandard,
		status:    booking.StatusPending,
		total:     200_00,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithSpaceID(id uuid.UUID) *BookingBuilder {
	b.spaceID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.userID = id
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.start = start
	b.end = end
	return b
}

// WithStartIn positions the slot to begin the given duration after BaseTime.
func (b *BookingBuilder) WithStartIn(d time.Duration) *BookingBuilder {
	b.start = BaseTime.Add(d)
	b.end = b.start.Add(2 * time.Hour)
	return b
}

func (b *BookingBuilder) WithEventType(t booking.EventType) *BookingBuilder {
	b.eventType = t
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.status = s
	return b
}

func (b *BookingBuilder) WithTotalCents(cents int64) *BookingBuilder {
	b.total = cents
	return b
}

func (b *BookingBuilder) WithItem(item *booking.LineItem) *BookingBuilder {
	b.items = append(b.items, item)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(b.start, b.end)
	if err != nil {
		return nil, err
	}
	items := b.items
	if items == nil {
		items = []*booking.LineItem{NewLineItem()}
	}
	return booking.ReconstructBooking(
		b.id,
		booking.NewReference(b.id),
		b.spaceID,
		b.userID,
		slot,
		b.eventType,
		b.status,
		booking.NewMoney(b.total),
		nil,
		booking.NewNote(b.note),
		items,
		BaseTime,
		BaseTime,
	), nil
}

// NewLineItem returns an unassigned single-quantity item for tests.
func NewLineItem() *booking.LineItem {
	return booking.NewLineItem(uuid.New(), 1, booking.NewMoney(50_00), booking.NewMoney(50_00))
}

// NewAssignedLineItem returns an item already pending with the given vendor.
func NewAssignedLineItem(vendorID uuid.UUID) *booking.LineItem {
	return booking.ReconstructLineItem(
		uuid.New(),
		uuid.New(),
		&vendorID,
		1,
		booking.NewMoney(50_00),
		booking.NewMoney(50_00),
		booking.ItemStatusPending,
		nil,
	)
}
