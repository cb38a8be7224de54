package request

import (
	"strings"
	"time"

	"venuehub/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingItemRequest struct {
	CatalogItemID uuid.UUID `json:"catalog_item_id" binding:"required"`
	Quantity      int32     `json:"quantity" binding:"required,gt=0"`
}

type CreateBookingRequest struct {
	SpaceID   uuid.UUID            `json:"space_id" binding:"required"`
	StartsAt  time.Time            `json:"starts_at" binding:"required"`
	EndsAt    time.Time            `json:"ends_at" binding:"required"`
	EventType string               `json:"event_type" binding:"required"`
	Items     []BookingItemRequest `json:"items,omitempty"`
	Note      *string              `json:"note,omitempty"`
}

type CreateBookingDomain struct {
	Slot      booking.TimeSlot
	EventType booking.EventType
	Note      booking.Note
}

// ToDomain converts the wire request into domain values. The RFC3339
// timestamps keep their offsets on the wire; TimeSlot normalizes to UTC.
func (r CreateBookingRequest) ToDomain() (*CreateBookingDomain, error) {
	slot, err := booking.NewTimeSlot(r.StartsAt, r.EndsAt)
	if err != nil {
		return nil, err
	}

	eventType, err := booking.NewEventType(r.EventType)
	if err != nil {
		return nil, err
	}

	note := booking.NewNote("")
	if r.Note != nil {
		note = booking.NewNote(strings.TrimSpace(*r.Note))
	}

	return &CreateBookingDomain{
		Slot:      slot,
		EventType: eventType,
		Note:      note,
	}, nil
}

type EditBookingRequest struct {
	StartsAt *time.Time            `json:"starts_at,omitempty"`
	EndsAt   *time.Time            `json:"ends_at,omitempty"`
	Items    *[]BookingItemRequest `json:"items,omitempty"`
}

func (r EditBookingRequest) HasChanges() bool {
	return r.StartsAt != nil || r.EndsAt != nil || r.Items != nil
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}

type RejectBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AssignVendorRequest struct {
	VendorID uuid.UUID `json:"vendor_id" binding:"required"`
}

type VendorRejectItemRequest struct {
	Note *string `json:"note,omitempty"`
}

func (r VendorRejectItemRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}
