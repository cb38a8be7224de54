package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a half-open interval [start, end). Both instants are held in
// UTC; constructors convert whatever offset the caller supplied so that every
// comparison in the system happens on a single reference timeline.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return TimeSlot{}, errors.New("start time must be before end time")
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps implements the half-open interval test: slots that merely touch
// at a boundary (one ends exactly when the other starts) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Money is an integer cent amount. Currency conversion and rounding beyond
// 2-decimal display are out of scope.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Percent returns pct% of the amount, truncating to whole cents.
func (m Money) Percent(pct int) Money {
	return Money{cents: m.cents * int64(pct) / 100}
}

// Reference is the human-readable booking code shown in conflict errors,
// notifications and invoices.
type Reference struct {
	value string
}

const referencePrefix = "BK-"

func NewReference(id uuid.UUID) Reference {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10])
	return Reference{value: referencePrefix + short}
}

func ReconstructReference(value string) Reference {
	return Reference{value: value}
}

func (r Reference) String() string {
	return r.value
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
