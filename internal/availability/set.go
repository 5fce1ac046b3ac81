// Package availability loads the blocked days and minimum stay that a host
// application feeds into the picker's constraint predicates.
package availability

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/errors"

	"github.com/lululau/datepick/internal/dates"
)

// Set is an in-memory index of blocked days. Single days are keyed by ISO
// date; ranges are kept as inclusive intervals so that a long range costs
// one entry.
type Set struct {
	minimumNights int
	days          map[string]string
	spans         []span // file order; later entries win on overlap
	merged        []span // sorted, non-overlapping
	count         int
}

// span is an inclusive run of days held as UTC midnights.
type span struct {
	start, end time.Time
	reason     string
}

func (sp span) contains(day time.Time) bool {
	return !day.Before(sp.start) && !day.After(sp.end)
}

// utcDay re-expresses t's calendar day as UTC midnight for comparisons.
func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewSet builds a Set from a decoded File, reporting every malformed entry.
func NewSet(f File) (*Set, error) {
	s := &Set{
		minimumNights: f.MinimumNights,
		days:          make(map[string]string, len(f.Blocked)),
	}
	errs := &errors.M{}
	if f.MinimumNights < 0 {
		errs.Append(fmt.Errorf("minimumNights %d is negative", f.MinimumNights))
	}
	for _, b := range f.Blocked {
		d, err := dates.FromISOString(b.Date, time.UTC)
		if err != nil {
			errs.Append(fmt.Errorf("blocked: %w", err))
			continue
		}
		s.days[dates.ToISOString(d)] = b.Reason
	}
	for _, r := range f.Ranges {
		start, err := dates.FromISOString(r.Start, time.UTC)
		if err != nil {
			errs.Append(fmt.Errorf("range start: %w", err))
			continue
		}
		end, err := dates.FromISOString(r.End, time.UTC)
		if err != nil {
			errs.Append(fmt.Errorf("range end: %w", err))
			continue
		}
		if end.Before(start) {
			errs.Append(fmt.Errorf("range %s..%s ends before it starts", r.Start, r.End))
			continue
		}
		reason := r.Reason
		if reason == "" && r.Maintenance {
			reason = "maintenance"
		}
		s.spans = append(s.spans, span{start: start, end: end, reason: reason})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	s.merged = mergeSpans(s.spans)
	for _, sp := range s.merged {
		s.count += dates.Nights(sp.start, sp.end) + 1
	}
	for key := range s.days {
		d, _ := dates.FromISOString(key, time.UTC)
		if !s.inMerged(d) {
			s.count++
		}
	}
	return s, nil
}

func mergeSpans(spans []span) []span {
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b span) int { return a.start.Compare(b.start) })
	var out []span
	for _, sp := range sorted {
		if n := len(out); n > 0 && !sp.start.After(dates.AddDays(out[n-1].end, 1)) {
			if sp.end.After(out[n-1].end) {
				out[n-1].end = sp.end
			}
			continue
		}
		out = append(out, span{start: sp.start, end: sp.end})
	}
	return out
}

func (s *Set) inMerged(day time.Time) bool {
	i, found := slices.BinarySearchFunc(s.merged, day, func(sp span, d time.Time) int {
		return sp.start.Compare(d)
	})
	if found {
		return true
	}
	return i > 0 && s.merged[i-1].contains(day)
}

// MinimumNights returns the minimum stay declared by the file.
func (s *Set) MinimumNights() int {
	if s == nil {
		return 0
	}
	return s.minimumNights
}

// Len returns the number of distinct blocked days.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// IsDayBlocked reports whether t's calendar day is unavailable.
func (s *Set) IsDayBlocked(t time.Time) bool {
	_, ok := s.Reason(t)
	return ok
}

// Reason returns why t is blocked. A range reason takes precedence over a
// single-day entry for the same date.
func (s *Set) Reason(t time.Time) (string, bool) {
	if s == nil {
		return "", false
	}
	day := utcDay(t)
	if s.inMerged(day) {
		for i := len(s.spans) - 1; i >= 0; i-- {
			if s.spans[i].contains(day) {
				return s.spans[i].reason, true
			}
		}
	}
	reason, ok := s.days[dates.ToISOString(day)]
	return reason, ok
}

// IsBlockedBetween reports whether a blocked day lies strictly between the
// endpoints of r.
func (s *Set) IsBlockedBetween(r dates.Range) bool {
	if s.Len() == 0 || !r.IsComplete() {
		return false
	}
	lo, hi := utcDay(r.Start), utcDay(r.End)
	if dates.Nights(lo, hi) < 2 {
		return false
	}
	for _, sp := range s.merged {
		if sp.start.Before(hi) && sp.end.After(lo) {
			return true
		}
	}
	loKey, hiKey := dates.ToISOString(lo), dates.ToISOString(hi)
	for key := range s.days {
		if key > loKey && key < hiKey {
			return true
		}
	}
	return false
}
