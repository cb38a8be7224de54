package response

import (
	"time"

	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VendorItemResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"bookingId"`
	BookingReference string    `json:"bookingReference"`
	SpaceName        string    `json:"spaceName"`
	StartsAt         time.Time `json:"startsAt"`
	EndsAt           time.Time `json:"endsAt"`
	CatalogItemName  string    `json:"catalogItemName"`
	Quantity         int32     `json:"quantity"`
	Status           string    `json:"status"`
}

func FromVendorItemViews(views []*queries.VendorItemView) []*VendorItemResponse {
	resps := make([]*VendorItemResponse, len(views))
	for i, v := range views {
		var resp VendorItemResponse
		_ = copier.Copy(&resp, v)
		resps[i] = &resp
	}
	return resps
}
