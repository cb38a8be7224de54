package refund

import (
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errs.New("invalid refund status")
	ErrInvalidPercent = errs.New("refund percentage must be between 0 and 100")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the refund still counts against the one-refund-per-
// cancellation guard.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusProcessing
}

// Refund is the bookkeeping record created when a booking is cancelled:
// amount = paid x percent / 100 in whole cents. At most one open refund may
// exist per booking; the command layer skips creation when one does.
type Refund struct {
	id        uuid.UUID
	bookingID uuid.UUID
	amount    booking.Money
	status    Status
	reason    string
	createdAt time.Time
	updatedAt time.Time
}

func NewRefund(bookingID uuid.UUID, paid booking.Money, percent int, reason string) (*Refund, error) {
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidPercent
	}
	return &Refund{
		id:        uuid.New(),
		bookingID: bookingID,
		amount:    paid.Percent(percent),
		status:    StatusPending,
		reason:    reason,
	}, nil
}

func ReconstructRefund(id, bookingID uuid.UUID, amount booking.Money, status Status, reason string, createdAt, updatedAt time.Time) *Refund {
	return &Refund{
		id:        id,
		bookingID: bookingID,
		amount:    amount,
		status:    status,
		reason:    reason,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Refund) ID() uuid.UUID         { return r.id }
func (r *Refund) BookingID() uuid.UUID  { return r.bookingID }
func (r *Refund) Amount() booking.Money { return r.amount }
func (r *Refund) Status() Status        { return r.status }
func (r *Refund) Reason() string        { return r.reason }
func (r *Refund) CreatedAt() time.Time  { return r.createdAt }
func (r *Refund) UpdatedAt() time.Time  { return r.updatedAt }
