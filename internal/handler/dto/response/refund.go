package response

import (
	"time"

	"venuehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RefundResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"bookingId"`
	BookingReference string    `json:"bookingReference"`
	AmountCents      int64     `json:"amountCents"`
	Status           string    `json:"status"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromRefundViews(views []*queries.RefundView) []*RefundResponse {
	resps := make([]*RefundResponse, len(views))
	for i, v := range views {
		var resp RefundResponse
		_ = copier.Copy(&resp, v)
		resps[i] = &resp
	}
	return resps
}
