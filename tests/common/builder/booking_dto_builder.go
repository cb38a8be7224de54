//go:build unit || e2e

package builder

import (
	"time"

	reqdto "venuehub/internal/handler/dto/request"
	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRequestBuilder struct {
	SpaceID   uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	EventType string
	Items     []reqdto.BookingItemRequest
	Note      *string
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		SpaceID:   uuid.New(),
		StartsAt:  BaseTime.Add(48 * time.Hour),
		EndsAt:    BaseTime.Add(50 * time.Hour),
		EventType: "standard",
		Items: []reqdto.BookingItemRequest{
			{CatalogItemID: uuid.New(), Quantity: 1},
		},
	}
}

func (b *BookingRequestBuilder) WithEventType(t string) *BookingRequestBuilder {
	b.EventType = t
	return b
}

func (b *BookingRequestBuilder) WithSlot(start, end time.Time) *BookingRequestBuilder {
	b.StartsAt = start
	b.EndsAt = end
	return b
}

func (b *BookingRequestBuilder) WithoutItems() *BookingRequestBuilder {
	b.Items = nil
	return b
}

func (b *BookingRequestBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SpaceID:   b.SpaceID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		EventType: b.EventType,
		Items:     b.Items,
		Note:      b.Note,
	}
}

// BuildView returns the read projection a successful create would surface.
func (b *BookingRequestBuilder) BuildView(userID uuid.UUID) *queries.BookingView {
	view := &queries.BookingView{
		ID:         uuid.New(),
		Reference:  "BK-0123456789",
		SpaceID:    b.SpaceID,
		SpaceName:  "Main Hall",
		UserID:     userID,
		UserEmail:  "test@example.com",
		StartsAt:   b.StartsAt,
		EndsAt:     b.EndsAt,
		EventType:  b.EventType,
		Status:     "pending",
		TotalCents: 200_00,
		Items:      []queries.BookingItemView{},
		CreatedAt:  BaseTime,
		UpdatedAt:  BaseTime,
	}
	for _, item := range b.Items {
		view.Items = append(view.Items, queries.BookingItemView{
			ID:              uuid.New(),
			CatalogItemID:   item.CatalogItemID,
			CatalogItemName: "Catering",
			Quantity:        item.Quantity,
			UnitPriceCents:  50_00,
			TotalCents:      50_00 * int64(item.Quantity),
			Status:          "unassigned",
		})
	}
	return view
}
