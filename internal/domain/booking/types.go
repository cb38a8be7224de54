package booking

// Status is the closed booking lifecycle enum. Loosely-typed status strings
// from clients or legacy records must pass through NormalizeStatus before
// they are compared to anything.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusEdited    Status = "edited"

	// StatusCompleted is derived (approved booking whose end has passed).
	// It is never stored; see Booking.EffectiveStatus.
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusEdited, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status occupies its space-time
// for conflict purposes.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusApproved, StatusEdited:
		return true
	default:
		return false
	}
}

// ActiveStatuses is the set used by conflict queries.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusEdited}
}

// NormalizeStatus maps the synonym drift of the original data model
// ("confirm", "confirmed", "approved" were compared interchangeably; US and
// UK spellings of cancelled both occur) onto the closed enum.
func NormalizeStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusEdited, StatusCompleted:
		return Status(raw), nil
	}

	switch raw {
	case "confirm", "confirmed", "approve":
		return StatusApproved, nil
	case "canceled", "cancel":
		return StatusCancelled, nil
	case "reject":
		return StatusRejected, nil
	case "edit":
		return StatusEdited, nil
	case "complete":
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// CanTransition encodes the stored-state transition table. StatusCompleted
// never appears on either side because it is derived, not stored.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		switch to {
		case StatusApproved, StatusRejected, StatusCancelled, StatusEdited:
			return true
		}
	case StatusApproved:
		switch to {
		case StatusCancelled, StatusEdited:
			return true
		}
	case StatusEdited:
		switch to {
		case StatusApproved, StatusRejected, StatusCancelled:
			return true
		}
	}
	return false
}

// EventType categorizes the booking for pricing and conflict exemptions.
type EventType string

const (
	EventTypeStandard EventType = "standard"
	// EventTypeLiveShow sells tickets against a produced show; it does not
	// reserve the physical space-time and is exempt from conflict checks.
	EventTypeLiveShow EventType = "live_show"
	// EventTypeClassProgram is a recurring class-style program; base price
	// and grand total are forced to zero.
	EventTypeClassProgram EventType = "class_program"
)

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeStandard, EventTypeLiveShow, EventTypeClassProgram:
		return true
	default:
		return false
	}
}

// OccupiesSpace reports whether bookings of this type reserve space-time and
// therefore participate in conflict detection.
func (t EventType) OccupiesSpace() bool {
	return t != EventTypeLiveShow
}

// IsFree reports whether the pricing exemption applies.
func (t EventType) IsFree() bool {
	return t == EventTypeClassProgram
}

func NewEventType(raw string) (EventType, error) {
	t := EventType(raw)
	if !t.IsValid() {
		return "", ErrInvalidEventType
	}
	return t, nil
}

// ItemStatus is the vendor-assignment sub-state of a line item. It moves
// independently of the parent booking status.
type ItemStatus string

const (
	ItemStatusUnassigned ItemStatus = "unassigned"
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusConfirmed  ItemStatus = "confirmed"
	ItemStatusCancelled  ItemStatus = "cancelled"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusUnassigned, ItemStatusPending, ItemStatusConfirmed, ItemStatusCancelled:
		return true
	default:
		return false
	}
}

func NewItemStatus(raw string) (ItemStatus, error) {
	s := ItemStatus(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
