package booking

import (
	"venuehub/internal/domain/space"
	"venuehub/internal/pkg/clock"

	"github.com/google/uuid"
)

// ItemSpec carries the priced catalog snapshot for one requested line item.
type ItemSpec struct {
	CatalogItemID      uuid.UUID
	Quantity           int32
	UnitPriceCents     int64
	IncludedHours      int32
	ExtraHourRateCents int64
}

func (s ItemSpec) AddOn() AddOn {
	return AddOn{
		CatalogItemID:      s.CatalogItemID,
		Quantity:           s.Quantity,
		UnitPriceCents:     s.UnitPriceCents,
		IncludedHours:      s.IncludedHours,
		ExtraHourRateCents: s.ExtraHourRateCents,
	}
}

type Factory struct {
	clock clock.Clock
	calc  QuoteCalculator
}

func NewFactory(clk clock.Clock, calc QuoteCalculator) *Factory {
	return &Factory{clock: clk, calc: calc}
}

// CreateBooking validates the request, prices it, and assembles the
// aggregate. Admin-originated bookings skip the pending step when the
// auto-approve setting is on.
func (f *Factory) CreateBooking(
	sp *space.Space,
	userID uuid.UUID,
	slot TimeSlot,
	eventType EventType,
	items []ItemSpec,
	note Note,
	adminOriginated bool,
	autoApprove bool,
) (*Booking, error) {
	if !sp.IsActive() {
		return nil, ErrSpaceInactive
	}
	if !slot.Start().After(f.clock.Now()) {
		return nil, ErrStartInPast
	}

	addons := make([]AddOn, len(items))
	for i, it := range items {
		addons[i] = it.AddOn()
	}
	quote := f.calc.Quote(sp, slot, addons, eventType)
	if quote.TotalCents < 0 {
		return nil, ErrNegativePrice
	}

	hours := slot.Duration().Hours()
	lineItems := make([]*LineItem, len(items))
	for i, it := range items {
		unit := NewMoney(it.UnitPriceCents)
		total := NewMoney(AddOnTotalCents(it.AddOn(), hours))
		lineItems[i] = NewLineItem(it.CatalogItemID, it.Quantity, unit, total)
	}

	status := StatusPending
	if adminOriginated && autoApprove {
		status = StatusApproved
	}

	id := uuid.New()
	return &Booking{
		id:        id,
		reference: NewReference(id),
		spaceID:   sp.ID(),
		userID:    userID,
		slot:      slot,
		eventType: eventType,
		status:    status,
		total:     NewMoney(quote.TotalCents),
		note:      note,
		items:     lineItems,
	}, nil
}
