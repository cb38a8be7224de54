package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is the read-optimized detail projection of a booking. Status
// carries the effective status: approved bookings whose end has passed read
// as completed.
type BookingView struct {
	ID             uuid.UUID         `json:"id"`
	Reference      string            `json:"reference"`
	SpaceID        uuid.UUID         `json:"space_id"`
	SpaceName      string            `json:"space_name"`
	UserID         uuid.UUID         `json:"user_id"`
	UserEmail      string            `json:"user_email"`
	StartsAt       time.Time         `json:"starts_at"`
	EndsAt         time.Time         `json:"ends_at"`
	EventType      string            `json:"event_type"`
	Status         string            `json:"status"`
	TotalCents     int64             `json:"total_cents"`
	BrokerageCents *int64            `json:"brokerage_cents,omitempty"`
	Note           *string           `json:"note,omitempty"`
	Items          []BookingItemView `json:"items"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type BookingItemView struct {
	ID              uuid.UUID  `json:"id"`
	CatalogItemID   uuid.UUID  `json:"catalog_item_id"`
	CatalogItemName string     `json:"catalog_item_name"`
	VendorID        *uuid.UUID `json:"vendor_id,omitempty"`
	Quantity        int32      `json:"quantity"`
	UnitPriceCents  int64      `json:"unit_price_cents"`
	TotalCents      int64      `json:"total_cents"`
	Status          string     `json:"status"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"reference"`
	SpaceID    uuid.UUID `json:"space_id"`
	SpaceName  string    `json:"space_name"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	EventType  string    `json:"event_type"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type RefundView struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	AmountCents      int64     `json:"amount_cents"`
	Status           string    `json:"status"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}

// VendorItemView is a line item as seen by the vendor it is assigned to.
type VendorItemView struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	SpaceName        string    `json:"space_name"`
	StartsAt         time.Time `json:"starts_at"`
	EndsAt           time.Time `json:"ends_at"`
	CatalogItemName  string    `json:"catalog_item_name"`
	Quantity         int32     `json:"quantity"`
	Status           string    `json:"status"`
}

// AuthorizedUserView carries what middleware needs to authorize a request.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
