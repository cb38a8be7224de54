package shared

import (
	"context"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/refund"
	"venuehub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Refunds() RefundRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups commands need before and during writes. When
// obtained via Tx.Reads() they run on the transaction's connection, so
// SpaceForUpdate actually holds its row lock until commit.
type CommandReads interface {
	SpaceByID(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
	// SpaceForUpdate locks the space row (SELECT ... FOR UPDATE); only
	// meaningful on a Tx-bound CommandReads.
	SpaceForUpdate(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
	// ActiveWindows returns the occupied time windows of a space: bookings in
	// pending/approved/edited status whose event type occupies space-time.
	ActiveWindows(ctx context.Context, spaceID uuid.UUID) ([]booking.Window, error)
	CatalogItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]CatalogItemSnapshot, error)
	BookingIDByItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	HasOpenRefund(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// Update persists the mutable booking columns: status, slot, total.
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// SaveItem persists one line item's vendor assignment and status.
	SaveItem(ctx context.Context, tx db.DBTX, item *booking.LineItem) error
	// ReplaceItems swaps the booking's line items for the given set.
	ReplaceItems(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, items []*booking.LineItem) error
	CancelItems(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error
	AddItemRejection(ctx context.Context, tx db.DBTX, itemID uuid.UUID, rejection booking.VendorRejection) error
}

type RefundRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *refund.Refund) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	ClaimExpiredKey(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, email, passwordHash, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
