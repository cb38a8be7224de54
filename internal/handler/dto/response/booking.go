package response

import (
	"time"

	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID             `json:"id"`
	Reference      string                `json:"reference"`
	SpaceID        uuid.UUID             `json:"spaceId"`
	SpaceName      string                `json:"spaceName"`
	UserID         uuid.UUID             `json:"userId"`
	UserEmail      string                `json:"userEmail"`
	StartsAt       time.Time             `json:"startsAt"`
	EndsAt         time.Time             `json:"endsAt"`
	EventType      string                `json:"eventType"`
	Status         string                `json:"status"`
	TotalCents     int64                 `json:"totalCents"`
	BrokerageCents *int64                `json:"brokerageCents,omitempty"`
	Note           *string               `json:"note,omitempty"`
	Items          []BookingItemResponse `json:"items"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type BookingItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	CatalogItemID   uuid.UUID  `json:"catalogItemId"`
	CatalogItemName string     `json:"catalogItemName"`
	VendorID        *uuid.UUID `json:"vendorId,omitempty"`
	Quantity        int32      `json:"quantity"`
	UnitPriceCents  int64      `json:"unitPriceCents"`
	TotalCents      int64      `json:"totalCents"`
	Status          string     `json:"status"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"reference"`
	SpaceID    uuid.UUID `json:"spaceId"`
	SpaceName  string    `json:"spaceName"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	EventType  string    `json:"eventType"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListPage wraps a keyset page; NextCursor is absent on the last page.
type BookingListPage struct {
	Bookings   []*BookingListResponse `json:"bookings"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem, nextCursor *string) *BookingListPage {
	page := &BookingListPage{
		Bookings:   make([]*BookingListResponse, len(items)),
		NextCursor: nextCursor,
	}
	for i, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		page.Bookings[i] = &resp
	}
	return page
}
