//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"venuehub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	t.Run("normalizes offsets to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		start := time.Date(2026, 9, 14, 19, 0, 0, 0, jst)
		end := time.Date(2026, 9, 14, 21, 0, 0, 0, jst)

		slot, err := booking.NewTimeSlot(start, end)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, slot.Start().Location())
		assert.Equal(t, time.UTC, slot.End().Location())
		assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC), slot.Start())
	})

	t.Run("rejects start not before end", func(t *testing.T) {
		at := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

		_, err := booking.NewTimeSlot(at, at)
		assert.Error(t, err)

		_, err = booking.NewTimeSlot(at.Add(time.Hour), at)
		assert.Error(t, err)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

		a := mustSlot(t, at(10), at(12))

		assert.True(t, a.Overlaps(mustSlot(t, at(11), at(13))))
		assert.True(t, a.Overlaps(mustSlot(t, at(9), at(11))))
		assert.True(t, a.Overlaps(mustSlot(t, at(10), at(12))))
		assert.True(t, a.Overlaps(mustSlot(t, at(9), at(13))))

		// Back-to-back slots share a boundary instant but not an occupied one.
		assert.False(t, a.Overlaps(mustSlot(t, at(12), at(14))))
		assert.False(t, a.Overlaps(mustSlot(t, at(8), at(10))))
	})

	t.Run("overlap compares instants across zones", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		utcSlot := mustSlot(t,
			time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
		)
		jstSlot := mustSlot(t,
			time.Date(2026, 9, 14, 20, 0, 0, 0, jst), // 11:00 UTC
			time.Date(2026, 9, 14, 22, 0, 0, 0, jst),
		)

		assert.True(t, utcSlot.Overlaps(jstSlot))
	})

	t.Run("tstzrange renders a half-open range literal", func(t *testing.T) {
		slot := mustSlot(t,
			time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
		)

		assert.Equal(t, "[2026-09-14T10:00:00Z,2026-09-14T12:00:00Z)", slot.ToTstzrange())
	})
}

func TestMoney(t *testing.T) {
	t.Run("percent truncates to whole cents", func(t *testing.T) {
		assert.Equal(t, int64(80_00), booking.NewMoney(100_00).Percent(80).Cents())
		assert.Equal(t, int64(83), booking.NewMoney(101).Percent(83).Cents())
		assert.Equal(t, int64(0), booking.NewMoney(99).Percent(0).Cents())
		assert.Equal(t, int64(99), booking.NewMoney(99).Percent(100).Cents())
		// 33% of 101 cents is 33.33 cents; the fraction is dropped.
		assert.Equal(t, int64(33), booking.NewMoney(101).Percent(33).Cents())
	})

	t.Run("non-negative constructor rejects negatives", func(t *testing.T) {
		_, err := booking.NewNonNegativeMoney(-1)
		assert.Error(t, err)

		m, err := booking.NewNonNegativeMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, int64(150), booking.NewMoney(100).Add(booking.NewMoney(50)).Cents())
	})
}

func TestReference(t *testing.T) {
	id := uuid.New()
	ref := booking.NewReference(id)

	assert.True(t, strings.HasPrefix(ref.String(), "BK-"))
	assert.Len(t, ref.String(), len("BK-")+10)
	assert.Equal(t, ref.String(), strings.ToUpper(ref.String()))
}
