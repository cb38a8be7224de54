//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/refund"
	"venuehub/internal/domain/user"
	"venuehub/internal/infra"
	"venuehub/internal/infra/db"
	"venuehub/internal/pkg/clock"
	"venuehub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	shared.BookingRepository

	byID        *booking.Booking
	updated     []*booking.Booking
	itemsCancel []uuid.UUID
}

func (s *stubBookingRepo) FindByID(_ context.Context, _ db.DBTX, _ uuid.UUID) (*booking.Booking, error) {
	if s.byID == nil {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.byID, nil
}

func (s *stubBookingRepo) Update(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	s.updated = append(s.updated, b)
	return nil
}

func (s *stubBookingRepo) CancelItems(_ context.Context, _ db.DBTX, bookingID uuid.UUID) error {
	s.itemsCancel = append(s.itemsCancel, bookingID)
	return nil
}

type stubRefundRepo struct {
	created   []*refund.Refund
	createErr error
}

func (s *stubRefundRepo) Create(_ context.Context, _ db.DBTX, r *refund.Refund) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	s.created = append(s.created, r)
	return r.ID(), nil
}

type stubNotificationRepo struct {
	topics []string
}

func (s *stubNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, _, topic string, _ []byte, _ time.Time) error {
	s.topics = append(s.topics, topic)
	return nil
}

type stubCommandReads struct {
	shared.CommandReads

	openRefund bool
}

func (s *stubCommandReads) HasOpenRefund(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.openRefund, nil
}

type stubTx struct {
	bookings      *stubBookingRepo
	refunds       *stubRefundRepo
	notifications *stubNotificationRepo
	reads         *stubCommandReads
}

func (s *stubTx) Bookings() shared.BookingRepository           { return s.bookings }
func (s *stubTx) Refunds() shared.RefundRepository             { return s.refunds }
func (s *stubTx) Idempotency() shared.IdempotencyRepository    { return nil }
func (s *stubTx) Notifications() shared.NotificationRepository { return s.notifications }
func (s *stubTx) Users() shared.UserRepository                 { return nil }
func (s *stubTx) Reads() shared.CommandReads                   { return s.reads }
func (s *stubTx) DB() db.DBTX                                  { return nil }

type stubUnitOfWork struct {
	tx *stubTx
}

func (s *stubUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, s.tx)
}

func (s *stubUnitOfWork) WithinReadOnly(_ context.Context, _ func(ctx context.Context, db db.DBTX) error) error {
	return errors.New("not implemented")
}

func (s *stubUnitOfWork) WithDB(_ context.Context, _ func(ctx context.Context, db db.DBTX) error) error {
	return errors.New("not implemented")
}

func (s *stubUnitOfWork) CommandReads() shared.CommandReads { return s.tx.reads }

type stubSettings struct {
	refundPercent int
}

func (s *stubSettings) RefundPercent(_ context.Context) (int, error) { return s.refundPercent, nil }
func (s *stubSettings) AutoApprove(_ context.Context) (bool, error)  { return false, nil }
func (s *stubSettings) Invalidate()                                  {}

func approvedBooking(t *testing.T, ownerID uuid.UUID, now time.Time, totalCents int64) *booking.Booking {
	t.Helper()

	slot, err := booking.NewTimeSlot(now.Add(48*time.Hour), now.Add(50*time.Hour))
	require.NoError(t, err)

	id := uuid.New()
	return booking.ReconstructBooking(
		id,
		booking.NewReference(id),
		uuid.New(),
		ownerID,
		slot,
		booking.EventTypeStandard,
		booking.StatusApproved,
		booking.NewMoney(totalCents),
		nil,
		booking.NewNote(""),
		nil,
		now, now,
	)
}

func newCancelFixture(t *testing.T, totalCents int64) (*bookingCommandsImpl, *stubTx, uuid.UUID, uuid.UUID) {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	b := approvedBooking(t, ownerID, now, totalCents)

	tx := &stubTx{
		bookings:      &stubBookingRepo{byID: b},
		refunds:       &stubRefundRepo{},
		notifications: &stubNotificationRepo{},
		reads:         &stubCommandReads{},
	}
	cmd := &bookingCommandsImpl{
		uow:      &stubUnitOfWork{tx: tx},
		settings: &stubSettings{refundPercent: 80},
		clock:    clock.NewMockClock(now),
	}
	return cmd, tx, b.ID(), ownerID
}

func TestCancelBooking_CreatesRefundAtConfiguredPercent(t *testing.T) {
	t.Parallel()

	cmd, tx, bookingID, ownerID := newCancelFixture(t, 25000)

	err := cmd.CancelBooking(context.Background(), bookingID, ownerID, user.RoleMember, "change of plans")
	require.NoError(t, err)

	require.Len(t, tx.refunds.created, 1)
	r := tx.refunds.created[0]
	assert.Equal(t, bookingID, r.BookingID())
	assert.Equal(t, int64(20000), r.Amount().Cents())
	assert.Equal(t, "change of plans", r.Reason())
	assert.Equal(t, refund.StatusPending, r.Status())
}

func TestCancelBooking_OpenRefundSuppressesSecondInsert(t *testing.T) {
	t.Parallel()

	cmd, tx, bookingID, ownerID := newCancelFixture(t, 25000)
	tx.reads.openRefund = true

	err := cmd.CancelBooking(context.Background(), bookingID, ownerID, user.RoleMember, "retried cancellation")
	require.NoError(t, err)

	assert.Empty(t, tx.refunds.created, "an open refund must keep a retried cancellation from inserting another")
}

func TestCancelBooking_ZeroTotalSkipsRefund(t *testing.T) {
	t.Parallel()

	cmd, tx, bookingID, ownerID := newCancelFixture(t, 0)

	err := cmd.CancelBooking(context.Background(), bookingID, ownerID, user.RoleMember, "nothing paid")
	require.NoError(t, err)

	assert.Empty(t, tx.refunds.created)
}

func TestCancelBooking_NoAdminOverrideInsideWindow(t *testing.T) {
	t.Parallel()

	cmd, tx, bookingID, _ := newCancelFixture(t, 25000)
	cmd.clock = clock.NewMockClock(tx.bookings.byID.Slot().Start().Add(-2 * time.Hour))

	err := cmd.CancelBooking(context.Background(), bookingID, uuid.New(), user.RoleAdmin, "too late")
	require.ErrorIs(t, err, booking.ErrCancellationWindow)
	assert.Empty(t, tx.bookings.updated)
	assert.Empty(t, tx.refunds.created)
}

func TestCreateRefund_DuplicateKeyRaceIsSwallowed(t *testing.T) {
	t.Parallel()

	cmd, tx, bookingID, _ := newCancelFixture(t, 25000)
	tx.refunds.createErr = infra.WrapRepoErr("refund exists", nil, infra.KindDuplicateKey)

	err := cmd.createRefund(context.Background(), bookingID, booking.NewMoney(25000), "concurrent cancel")
	require.NoError(t, err)

	tx.refunds.createErr = infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)
	err = cmd.createRefund(context.Background(), bookingID, booking.NewMoney(25000), "concurrent cancel")
	require.Error(t, err)
}
