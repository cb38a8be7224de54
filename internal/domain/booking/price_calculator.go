package booking

import (
	"math"

	"venuehub/internal/domain/space"

	"github.com/google/uuid"
)

// AddOn is a priced catalog item attached to a quote request. Items with
// IncludedHours > 0 bundle that many hours of use into the unit price and
// bill whole extra hours at ExtraHourRateCents once the booking runs longer.
type AddOn struct {
	CatalogItemID      uuid.UUID
	Quantity           int32
	UnitPriceCents     int64
	IncludedHours      int32
	ExtraHourRateCents int64
}

type Quote struct {
	BaseCents   int64
	AddonsCents int64
	TotalCents  int64
}

type QuoteCalculator interface {
	Quote(sp *space.Space, slot TimeSlot, addons []AddOn, eventType EventType) Quote
}

// StandardQuoteCalculator prices duration x hourly rate plus add-ons.
type StandardQuoteCalculator struct{}

func NewStandardQuoteCalculator() *StandardQuoteCalculator {
	return &StandardQuoteCalculator{}
}

func (c *StandardQuoteCalculator) Quote(sp *space.Space, slot TimeSlot, addons []AddOn, eventType EventType) Quote {
	// Class-style programs are free: the override zeroes the base amount and
	// the grand total, not just the hourly component.
	if eventType.IsFree() {
		return Quote{}
	}

	hours := slot.Duration().Hours()
	base := int64(hours * float64(sp.HourlyRateCents()))

	var addonsTotal int64
	for _, a := range addons {
		addonsTotal += AddOnTotalCents(a, hours)
	}

	return Quote{
		BaseCents:   base,
		AddonsCents: addonsTotal,
		TotalCents:  base + addonsTotal,
	}
}

func AddOnTotalCents(a AddOn, usageHours float64) int64 {
	total := a.UnitPriceCents * int64(a.Quantity)
	if a.IncludedHours > 0 && usageHours > float64(a.IncludedHours) {
		extraHours := int64(math.Ceil(usageHours - float64(a.IncludedHours)))
		total += extraHours * a.ExtraHourRateCents * int64(a.Quantity)
	}
	return total
}
