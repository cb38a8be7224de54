package queries

import (
	"context"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/user"
	"venuehub/internal/infra"
	"venuehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrInvalidCursor   = errs.New("invalid pagination cursor")
	ErrInvalidStatus   = errs.New("invalid status filter")
)

type Cursor struct {
	After string
}

type BookingQueries interface {
	// GetByID enforces ownership: members see their own bookings, admins
	// see everything.
	GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips access checks; used for read-after-write and
	// idempotent replay inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListByStatus(ctx context.Context, status *string, limit int) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByStatus(ctx context.Context, status *string, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID && !role.AtLeast(user.RoleAdmin) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = 50
	}

	var (
		items []*BookingListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == limit {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

func (q *bookingQueriesImpl) ListByStatus(ctx context.Context, status *string, limit int) ([]*BookingListItem, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = 50
	}
	if status != nil {
		normalized, err := booking.NormalizeStatus(*status)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidStatus)
		}
		s := string(normalized)
		status = &s
	}
	return q.store.FindByStatus(ctx, status, int32(limit))
}
