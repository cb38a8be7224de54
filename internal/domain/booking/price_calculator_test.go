//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/space"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpace(t *testing.T, hourlyRateCents int64) *space.Space {
	t.Helper()
	sp, err := space.NewSpace(uuid.New(), uuid.New(), "Main Hall", hourlyRateCents, true)
	require.NoError(t, err)
	return sp
}

func TestStandardQuoteCalculator(t *testing.T) {
	calc := booking.NewStandardQuoteCalculator()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	t.Run("base is duration times hourly rate", func(t *testing.T) {
		sp := testSpace(t, 100_00)
		slot := mustSlot(t, at(10), at(13))

		quote := calc.Quote(sp, slot, nil, booking.EventTypeStandard)

		want := booking.Quote{BaseCents: 300_00, AddonsCents: 0, TotalCents: 300_00}
		assert.Empty(t, cmp.Diff(want, quote))
	})

	t.Run("fractional hours are priced proportionally", func(t *testing.T) {
		sp := testSpace(t, 100_00)
		slot := mustSlot(t, at(10), at(10).Add(90*time.Minute))

		quote := calc.Quote(sp, slot, nil, booking.EventTypeStandard)

		assert.Equal(t, int64(150_00), quote.BaseCents)
	})

	t.Run("flat add-ons contribute unit price times quantity", func(t *testing.T) {
		sp := testSpace(t, 100_00)
		slot := mustSlot(t, at(10), at(12))
		addons := []booking.AddOn{
			{CatalogItemID: uuid.New(), Quantity: 2, UnitPriceCents: 25_00},
			{CatalogItemID: uuid.New(), Quantity: 1, UnitPriceCents: 40_00},
		}

		quote := calc.Quote(sp, slot, addons, booking.EventTypeStandard)

		want := booking.Quote{BaseCents: 200_00, AddonsCents: 90_00, TotalCents: 290_00}
		assert.Empty(t, cmp.Diff(want, quote))
	})

	t.Run("tiered add-on bills whole extra hours beyond the included bundle", func(t *testing.T) {
		sp := testSpace(t, 100_00)
		// 5.5 hours of use against a 4-hour bundle: 1.5h excess bills as 2 extra hours.
		slot := mustSlot(t, at(10), at(15).Add(30*time.Minute))
		addons := []booking.AddOn{
			{
				CatalogItemID:      uuid.New(),
				Quantity:           1,
				UnitPriceCents:     80_00,
				IncludedHours:      4,
				ExtraHourRateCents: 15_00,
			},
		}

		quote := calc.Quote(sp, slot, addons, booking.EventTypeStandard)

		assert.Equal(t, int64(80_00+2*15_00), quote.AddonsCents)
	})

	t.Run("tiered add-on within the bundle bills the unit price only", func(t *testing.T) {
		sp := testSpace(t, 100_00)
		slot := mustSlot(t, at(10), at(13))
		addons := []booking.AddOn{
			{
				CatalogItemID:      uuid.New(),
				Quantity:           1,
				UnitPriceCents:     80_00,
				IncludedHours:      4,
				ExtraHourRateCents: 15_00,
			},
		}

		quote := calc.Quote(sp, slot, addons, booking.EventTypeStandard)

		assert.Equal(t, int64(80_00), quote.AddonsCents)
	})

	t.Run("class programs are fully zeroed regardless of duration and add-ons", func(t *testing.T) {
		sp := testSpace(t, 500_00)
		slot := mustSlot(t, at(8), at(20))
		addons := []booking.AddOn{
			{CatalogItemID: uuid.New(), Quantity: 10, UnitPriceCents: 100_00},
		}

		quote := calc.Quote(sp, slot, addons, booking.EventTypeClassProgram)

		assert.Empty(t, cmp.Diff(booking.Quote{}, quote))
	})

	t.Run("live shows price normally", func(t *testing.T) {
		sp := testSpace(t, 100_00)
		slot := mustSlot(t, at(19), at(22))

		quote := calc.Quote(sp, slot, nil, booking.EventTypeLiveShow)

		assert.Equal(t, int64(300_00), quote.TotalCents)
	})
}
