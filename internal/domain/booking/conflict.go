package booking

import (
	"time"

	"github.com/google/uuid"
)

// Window is the slice of an existing booking that conflict detection needs:
// identity for the 409 payload and the occupied interval. Callers load the
// windows of a space's active bookings (pending/approved/edited, space-
// occupying event types only) and hold the space row locked while checking.
type Window struct {
	BookingID uuid.UUID
	Reference string
	Slot      TimeSlot
}

// FindConflict returns the first existing window that overlaps the requested
// slot, or nil when the slot is free. excludeID skips a booking when it is
// being checked against itself on edit; pass uuid.Nil otherwise.
//
// Requested slots of a non-occupying event type never conflict; callers are
// expected to branch before loading windows, this is the backstop.
func FindConflict(requested TimeSlot, eventType EventType, existing []Window, excludeID uuid.UUID) *Window {
	if !eventType.OccupiesSpace() {
		return nil
	}
	for i := range existing {
		if existing[i].BookingID == excludeID {
			continue
		}
		if requested.Overlaps(existing[i].Slot) {
			return &existing[i]
		}
	}
	return nil
}

// MaxTailCheckExtension bounds the edit optimization below.
const MaxTailCheckExtension = time.Hour

// ExtensionTail reports whether an edit from old to updated is a pure end
// extension of at most MaxTailCheckExtension, and if so returns the newly
// added tail interval. Only the tail needs a conflict check in that case;
// the original range is already held by the booking itself. Checking the
// full updated range instead is always safe, just wasteful.
func ExtensionTail(old, updated TimeSlot) (TimeSlot, bool) {
	if !old.Start().Equal(updated.Start()) {
		return TimeSlot{}, false
	}
	if !updated.End().After(old.End()) {
		return TimeSlot{}, false
	}
	if updated.End().Sub(old.End()) > MaxTailCheckExtension {
		return TimeSlot{}, false
	}
	tail, err := NewTimeSlot(old.End(), updated.End())
	if err != nil {
		return TimeSlot{}, false
	}
	return tail, true
}
