package dates

import (
	"fmt"
	"time"
)

// Range is a pair of calendar days. Either endpoint may be absent, which is
// represented by the zero time.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange returns the range spanning a and b in chronological order.
func NewRange(a, b time.Time) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// HasStart reports whether the start endpoint is set.
func (r Range) HasStart() bool { return !r.Start.IsZero() }

// HasEnd reports whether the end endpoint is set.
func (r Range) HasEnd() bool { return !r.End.IsZero() }

// IsEmpty reports whether neither endpoint is set.
func (r Range) IsEmpty() bool { return !r.HasStart() && !r.HasEnd() }

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool { return r.HasStart() && r.HasEnd() }

// Nights returns the day count from Start to End, or zero for a partial range.
func (r Range) Nights() int {
	if !r.IsComplete() {
		return 0
	}
	return Nights(r.Start, r.End)
}

// Days calls fn for each day from Start to End inclusive. It stops early
// when fn returns false.
func (r Range) Days(fn func(time.Time) bool) {
	if !r.IsComplete() {
		return
	}
	for d := r.Start; !d.After(r.End); d = AddDays(d, 1) {
		if !fn(d) {
			return
		}
	}
}

func (r Range) String() string {
	iso := func(t time.Time) string {
		if t.IsZero() {
			return "…"
		}
		return ToISOString(t)
	}
	return fmt.Sprintf("%s/%s", iso(r.Start), iso(r.End))
}

// IsDateInRange reports whether t lies between from and to inclusive. The
// earlier of from and to is used as the lower bound.
func IsDateInRange(t, from, to time.Time) bool {
	lo, hi := from, to
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	d := StartOfDay(t)
	return !d.Before(StartOfDay(lo)) && !d.After(StartOfDay(hi))
}
