//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCancel(t *testing.T) {
	now := builder.BaseTime

	t.Run("cancellation more than 24 hours before start succeeds", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStartIn(25 * time.Hour).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancellation inside the 24 hour window is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStartIn(23 * time.Hour).BuildDomain()
		require.NoError(t, err)

		err = b.Cancel(now)
		assert.ErrorIs(t, err, booking.ErrCancellationWindow)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("exactly 24 hours before start succeeds", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStartIn(24 * time.Hour).BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, b.Cancel(now))
	})

	t.Run("approved bookings can be cancelled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			WithStatus(booking.StatusApproved).
			WithStartIn(48 * time.Hour).
			BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, b.Cancel(now))
	})

	t.Run("cancelled bookings cannot be cancelled again", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			WithStatus(booking.StatusCancelled).
			WithStartIn(48 * time.Hour).
			BuildDomain()
		require.NoError(t, err)

		err = b.Cancel(now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("cancellation cascades to line items and keeps vendor links", func(t *testing.T) {
		vendorID := uuid.New()
		item := builder.NewAssignedLineItem(vendorID)
		b, err := builder.NewBookingBuilder().
			WithStartIn(48 * time.Hour).
			WithItem(item).
			BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))

		require.Len(t, b.Items(), 1)
		assert.Equal(t, booking.ItemStatusCancelled, b.Items()[0].Status())
		require.NotNil(t, b.Items()[0].VendorID())
		assert.Equal(t, vendorID, *b.Items()[0].VendorID())
	})
}

func TestBookingApproveReject(t *testing.T) {
	t.Run("pending booking can be approved", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Approve())
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("edited booking can be re-approved", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusEdited).BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, b.Approve())
	})

	t.Run("approved booking cannot be rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Reject(), booking.ErrInvalidTransition)
	})
}

func TestBookingApplyEdit(t *testing.T) {
	t.Run("edit replaces slot and total and flags re-review", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildDomain()
		require.NoError(t, err)

		newSlot := mustSlot(t, builder.BaseTime.Add(72*time.Hour), builder.BaseTime.Add(75*time.Hour))
		require.NoError(t, b.ApplyEdit(newSlot, booking.NewMoney(300_00)))

		assert.Equal(t, booking.StatusEdited, b.Status())
		assert.True(t, b.Slot().Equal(newSlot))
		assert.Equal(t, int64(300_00), b.Total().Cents())
	})

	t.Run("cancelled booking cannot be edited", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		require.NoError(t, err)

		newSlot := mustSlot(t, builder.BaseTime.Add(72*time.Hour), builder.BaseTime.Add(75*time.Hour))
		assert.ErrorIs(t, b.ApplyEdit(newSlot, booking.NewMoney(100_00)), booking.ErrInvalidTransition)
	})
}

func TestBookingEffectiveStatus(t *testing.T) {
	t.Run("approved booking past its end reads completed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildDomain()
		require.NoError(t, err)

		afterEnd := b.Slot().End().Add(time.Minute)
		assert.Equal(t, booking.StatusCompleted, b.EffectiveStatus(afterEnd))
		// Stored status is untouched.
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("approved booking before its end stays approved", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildDomain()
		require.NoError(t, err)

		beforeEnd := b.Slot().End().Add(-time.Minute)
		assert.Equal(t, booking.StatusApproved, b.EffectiveStatus(beforeEnd))
	})

	t.Run("pending booking past its end does not complete", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		afterEnd := b.Slot().End().Add(time.Minute)
		assert.Equal(t, booking.StatusPending, b.EffectiveStatus(afterEnd))
	})
}

func TestLineItemVendorAssignment(t *testing.T) {
	now := builder.BaseTime

	t.Run("assign then confirm", func(t *testing.T) {
		vendorID := uuid.New()
		item := builder.NewLineItem()

		require.NoError(t, item.Assign(vendorID))
		assert.Equal(t, booking.ItemStatusPending, item.Status())

		require.NoError(t, item.Confirm(vendorID))
		assert.Equal(t, booking.ItemStatusConfirmed, item.Status())
	})

	t.Run("rejection returns the item to the pool", func(t *testing.T) {
		vendorID := uuid.New()
		item := builder.NewLineItem()
		require.NoError(t, item.Assign(vendorID))

		require.NoError(t, item.Reject(vendorID, "double booked that night", now))

		assert.Equal(t, booking.ItemStatusUnassigned, item.Status())
		assert.Nil(t, item.VendorID())
		require.Len(t, item.Rejections(), 1)
		assert.Equal(t, vendorID, item.Rejections()[0].VendorID)
		assert.Equal(t, now, item.Rejections()[0].RejectedAt)
	})

	t.Run("rejected vendor cannot be assigned again", func(t *testing.T) {
		vendorID := uuid.New()
		item := builder.NewLineItem()
		require.NoError(t, item.Assign(vendorID))
		require.NoError(t, item.Reject(vendorID, "unavailable", now))

		err := item.Assign(vendorID)
		assert.ErrorIs(t, err, booking.ErrVendorPreviouslyRejected)
	})

	t.Run("a different vendor can take over after a rejection", func(t *testing.T) {
		first := uuid.New()
		second := uuid.New()
		item := builder.NewLineItem()
		require.NoError(t, item.Assign(first))
		require.NoError(t, item.Reject(first, "unavailable", now))

		require.NoError(t, item.Assign(second))
		assert.Equal(t, booking.ItemStatusPending, item.Status())
		require.NotNil(t, item.VendorID())
		assert.Equal(t, second, *item.VendorID())
	})

	t.Run("confirm by the wrong vendor fails", func(t *testing.T) {
		vendorID := uuid.New()
		item := builder.NewLineItem()
		require.NoError(t, item.Assign(vendorID))

		assert.ErrorIs(t, item.Confirm(uuid.New()), booking.ErrVendorMismatch)
	})

	t.Run("unassigned item cannot be confirmed", func(t *testing.T) {
		item := builder.NewLineItem()
		assert.ErrorIs(t, item.Confirm(uuid.New()), booking.ErrItemNotPending)
	})

	t.Run("cancelled item cannot be reassigned", func(t *testing.T) {
		vendorID := uuid.New()
		item := builder.NewAssignedLineItem(vendorID)
		b, err := builder.NewBookingBuilder().
			WithStartIn(48 * time.Hour).
			WithItem(item).
			BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel(now))

		assert.ErrorIs(t, item.Assign(uuid.New()), booking.ErrItemNotAssignable)
	})
}
