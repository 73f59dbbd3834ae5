package booking

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is an inclusive range of whole days. [2025-08-10, 2025-08-12]
// spans three days. Both endpoints are truncated to midnight UTC so that two
// ranges built from different wall-clock times still compare by day.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days returns the number of billable days, counting both endpoints.
func (r DateRange) Days() int64 {
	return int64(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// Overlaps reports whether the two inclusive ranges share at least one day:
// s1 <= e2 AND s2 <= e1.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// ToDaterange renders the range in the canonical half-open form the database
// stores: [start, end+1day). The exclusion constraint on reservations
// compares ranges in this form.
func (r DateRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.DateOnly), r.end.AddDate(0, 0, 1).Format(time.DateOnly))
}

// DateRangeFromBounds rebuilds a DateRange from the half-open bounds stored
// in the database (upper bound exclusive).
func DateRangeFromBounds(lower, upperExclusive time.Time) (DateRange, error) {
	return NewDateRange(lower, upperExclusive.AddDate(0, 0, -1))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const MaxReasonLength = 1000

type Reason struct {
	value string
}

func NewReason(s string) (Reason, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxReasonLength {
		return Reason{}, ErrReasonTooLong
	}
	return Reason{value: t}, nil
}

func (n Reason) String() string {
	return n.value
}

func (n Reason) IsEmpty() bool {
	return n.value == ""
}
