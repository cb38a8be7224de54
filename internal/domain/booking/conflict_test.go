//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venuehub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestFindConflict(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	existingID := uuid.New()
	existing := []booking.Window{
		{
			BookingID: existingID,
			Reference: "BK-EXISTING01",
			Slot:      mustSlot(t, at(10), at(12)),
		},
	}

	t.Run("overlapping request conflicts with the existing booking", func(t *testing.T) {
		requested := mustSlot(t, at(11), at(13))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, existing, uuid.Nil)

		require.NotNil(t, conflict)
		assert.Equal(t, existingID, conflict.BookingID)
		assert.Equal(t, "BK-EXISTING01", conflict.Reference)
	})

	t.Run("request starting exactly at the existing end is allowed", func(t *testing.T) {
		requested := mustSlot(t, at(12), at(13))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, existing, uuid.Nil)

		assert.Nil(t, conflict)
	})

	t.Run("request ending exactly at the existing start is allowed", func(t *testing.T) {
		requested := mustSlot(t, at(8), at(10))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, existing, uuid.Nil)

		assert.Nil(t, conflict)
	})

	t.Run("fully contained request conflicts", func(t *testing.T) {
		requested := mustSlot(t, at(10).Add(30*time.Minute), at(11))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, existing, uuid.Nil)

		require.NotNil(t, conflict)
	})

	t.Run("live show requests never occupy space-time", func(t *testing.T) {
		requested := mustSlot(t, at(11), at(13))

		conflict := booking.FindConflict(requested, booking.EventTypeLiveShow, existing, uuid.Nil)

		assert.Nil(t, conflict)
	})

	t.Run("excluded booking is skipped when editing against itself", func(t *testing.T) {
		requested := mustSlot(t, at(11), at(13))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, existing, existingID)

		assert.Nil(t, conflict)
	})

	t.Run("first overlapping window is returned", func(t *testing.T) {
		secondID := uuid.New()
		windows := append(existing, booking.Window{
			BookingID: secondID,
			Reference: "BK-EXISTING02",
			Slot:      mustSlot(t, at(12), at(14)),
		})
		requested := mustSlot(t, at(11), at(15))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, windows, uuid.Nil)

		require.NotNil(t, conflict)
		assert.Equal(t, existingID, conflict.BookingID)
	})

	t.Run("empty window set never conflicts", func(t *testing.T) {
		requested := mustSlot(t, at(11), at(13))

		conflict := booking.FindConflict(requested, booking.EventTypeStandard, nil, uuid.Nil)

		assert.Nil(t, conflict)
	})
}

func TestExtensionTail(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }
	old := mustSlot(t, at(10), at(12))

	t.Run("end extension within one hour yields the tail only", func(t *testing.T) {
		updated := mustSlot(t, at(10), at(12).Add(45*time.Minute))

		tail, ok := booking.ExtensionTail(old, updated)

		require.True(t, ok)
		assert.Equal(t, at(12), tail.Start())
		assert.Equal(t, at(12).Add(45*time.Minute), tail.End())
	})

	t.Run("exactly one hour extension still qualifies", func(t *testing.T) {
		updated := mustSlot(t, at(10), at(13))

		_, ok := booking.ExtensionTail(old, updated)

		assert.True(t, ok)
	})

	t.Run("extension beyond one hour falls back to full-range check", func(t *testing.T) {
		updated := mustSlot(t, at(10), at(13).Add(time.Minute))

		_, ok := booking.ExtensionTail(old, updated)

		assert.False(t, ok)
	})

	t.Run("changed start disqualifies the optimization", func(t *testing.T) {
		updated := mustSlot(t, at(9), at(12).Add(30*time.Minute))

		_, ok := booking.ExtensionTail(old, updated)

		assert.False(t, ok)
	})

	t.Run("shrinking the slot disqualifies the optimization", func(t *testing.T) {
		updated := mustSlot(t, at(10), at(11))

		_, ok := booking.ExtensionTail(old, updated)

		assert.False(t, ok)
	})
}
