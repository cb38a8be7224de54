package booking

import (
	"time"

	"venuehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus            = errs.New("invalid booking status")
	ErrInvalidEventType         = errs.New("invalid event type")
	ErrInvalidTransition        = errs.New("invalid status transition")
	ErrStartInPast              = errs.New("booking start cannot be in the past")
	ErrSpaceInactive            = errs.New("space is not accepting bookings")
	ErrNegativePrice            = errs.New("price cannot be negative")
	ErrCancellationWindow       = errs.New("bookings cannot be cancelled less than 24 hours before start")
	ErrItemNotFound             = errs.New("line item not found")
	ErrItemNotAssignable        = errs.New("line item cannot be assigned in its current status")
	ErrItemNotPending           = errs.New("line item is not awaiting vendor response")
	ErrVendorMismatch           = errs.New("line item is assigned to a different vendor")
	ErrVendorPreviouslyRejected = errs.New("vendor has previously rejected this line item")
)

// CancellationWindow is the hard business rule: no cancellation inside 24
// hours of the booking start, with no override path.
const CancellationWindow = 24 * time.Hour

// VendorRejection records a vendor declining a line item. The history is
// permanent: once a vendor rejected an item, re-assigning that vendor to
// that item is blocked even after the item's status is reset.
type VendorRejection struct {
	VendorID   uuid.UUID
	Note       string
	RejectedAt time.Time
}

// LineItem is a catalog item (equipment/service) attached to a booking,
// optionally fulfilled by a vendor. Its assignment sub-state is independent
// of the parent booking status.
type LineItem struct {
	id            uuid.UUID
	catalogItemID uuid.UUID
	vendorID      *uuid.UUID
	quantity      int32
	unitPrice     Money
	total         Money
	status        ItemStatus
	rejections    []VendorRejection
}

func NewLineItem(catalogItemID uuid.UUID, quantity int32, unitPrice, total Money) *LineItem {
	return &LineItem{
		id:            uuid.New(),
		catalogItemID: catalogItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		total:         total,
		status:        ItemStatusUnassigned,
	}
}

func ReconstructLineItem(
	id, catalogItemID uuid.UUID,
	vendorID *uuid.UUID,
	quantity int32,
	unitPrice, total Money,
	status ItemStatus,
	rejections []VendorRejection,
) *LineItem {
	return &LineItem{
		id:            id,
		catalogItemID: catalogItemID,
		vendorID:      vendorID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		total:         total,
		status:        status,
		rejections:    rejections,
	}
}

func (li *LineItem) ID() uuid.UUID                 { return li.id }
func (li *LineItem) CatalogItemID() uuid.UUID      { return li.catalogItemID }
func (li *LineItem) VendorID() *uuid.UUID          { return li.vendorID }
func (li *LineItem) Quantity() int32               { return li.quantity }
func (li *LineItem) UnitPrice() Money              { return li.unitPrice }
func (li *LineItem) Total() Money                  { return li.total }
func (li *LineItem) Status() ItemStatus            { return li.status }
func (li *LineItem) Rejections() []VendorRejection { return li.rejections }

func (li *LineItem) HasVendorRejected(vendorID uuid.UUID) bool {
	for _, r := range li.rejections {
		if r.VendorID == vendorID {
			return true
		}
	}
	return false
}

// Assign puts the item under a vendor and moves it to pending confirmation.
// Assigning a vendor that already declined this item fails regardless of the
// item's current status.
func (li *LineItem) Assign(vendorID uuid.UUID) error {
	if li.HasVendorRejected(vendorID) {
		return ErrVendorPreviouslyRejected
	}
	switch li.status {
	case ItemStatusUnassigned, ItemStatusPending:
		li.vendorID = &vendorID
		li.status = ItemStatusPending
		return nil
	default:
		return ErrItemNotAssignable
	}
}

func (li *LineItem) Confirm(vendorID uuid.UUID) error {
	if li.status != ItemStatusPending {
		return ErrItemNotPending
	}
	if li.vendorID == nil || *li.vendorID != vendorID {
		return ErrVendorMismatch
	}
	li.status = ItemStatusConfirmed
	return nil
}

// Reject records the vendor's refusal and returns the item to the pool. The
// rejection entry is what makes re-assignment of the same vendor sticky.
func (li *LineItem) Reject(vendorID uuid.UUID, note string, now time.Time) error {
	if li.status != ItemStatusPending {
		return ErrItemNotPending
	}
	if li.vendorID == nil || *li.vendorID != vendorID {
		return ErrVendorMismatch
	}
	li.rejections = append(li.rejections, VendorRejection{
		VendorID:   vendorID,
		Note:       note,
		RejectedAt: now,
	})
	li.vendorID = nil
	li.status = ItemStatusUnassigned
	return nil
}

// cancel cascades a booking cancellation onto the item. The vendor link is
// kept for historical visibility.
func (li *LineItem) cancel() {
	li.status = ItemStatusCancelled
}

// Booking is a request to use a space for a half-open time interval with an
// associated price and approval status.
type Booking struct {
	id        uuid.UUID
	reference Reference
	spaceID   uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot
	eventType EventType
	status    Status
	total     Money
	brokerage *Money
	note      Note
	items     []*LineItem
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	reference Reference,
	spaceID, userID uuid.UUID,
	slot TimeSlot,
	eventType EventType,
	status Status,
	total Money,
	brokerage *Money,
	note Note,
	items []*LineItem,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		reference: reference,
		spaceID:   spaceID,
		userID:    userID,
		slot:      slot,
		eventType: eventType,
		status:    status,
		total:     total,
		brokerage: brokerage,
		note:      note,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Reference() Reference { return b.reference }
func (b *Booking) SpaceID() uuid.UUID   { return b.spaceID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) EventType() EventType { return b.eventType }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Total() Money         { return b.total }
func (b *Booking) Brokerage() *Money    { return b.brokerage }
func (b *Booking) Note() Note           { return b.note }
func (b *Booking) Items() []*LineItem   { return b.items }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsOwner(userID uuid.UUID) bool {
	return b.userID == userID
}

// EffectiveStatus derives completion from the wall clock instead of storing
// it: an approved booking whose end has passed reads as completed.
func (b *Booking) EffectiveStatus(now time.Time) Status {
	if b.status == StatusApproved && !now.Before(b.slot.End()) {
		return StatusCompleted
	}
	return b.status
}

func (b *Booking) ItemByID(itemID uuid.UUID) (*LineItem, error) {
	for _, item := range b.items {
		if item.id == itemID {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (b *Booking) Approve() error {
	return b.transition(StatusApproved)
}

func (b *Booking) Reject() error {
	return b.transition(StatusRejected)
}

// Cancel enforces the 24h window, moves the booking to cancelled, and
// cascades cancellation to line items while keeping their vendor links.
// Refund creation is the caller's side effect, not the aggregate's.
func (b *Booking) Cancel(now time.Time) error {
	if !CanTransition(b.status, StatusCancelled) {
		return ErrInvalidTransition
	}
	if b.slot.Start().Sub(now) < CancellationWindow {
		return ErrCancellationWindow
	}
	b.status = StatusCancelled
	for _, item := range b.items {
		item.cancel()
	}
	return nil
}

// ApplyEdit replaces the slot and recomputed total and flags the booking for
// re-review. Conflict checking of the new slot is the caller's job.
func (b *Booking) ApplyEdit(slot TimeSlot, total Money) error {
	if err := b.transition(StatusEdited); err != nil {
		return err
	}
	b.slot = slot
	b.total = total
	return nil
}

func (b *Booking) transition(to Status) error {
	if !CanTransition(b.status, to) {
		return ErrInvalidTransition
	}
	b.status = to
	return nil
}
