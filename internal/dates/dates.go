// Package dates implements calendar-day arithmetic on time.Time values that
// are normalized to local midnight.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"cloudeng.io/datetime"
)

// Supported year bounds for focus movement and parsing.
const (
	MinYear = 0
	MaxYear = 9999
)

// ISOLayout is the YYYY-MM-DD layout used for keys and round trips.
const ISOLayout = "2006-01-02"

const usLayout = "1/2/2006"

// ErrInvalidDate is returned for strings that are not a real calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Midnight returns the first instant of the calendar day y-m-d in loc.
// Out-of-range fields are normalized as by time.Date. Where a DST gap
// swallows local midnight, time.Date lands on the previous day; the result
// is moved forward to the first wall-clock instant that belongs to the day.
func Midnight(y int, m time.Month, d int, loc *time.Location) time.Time {
	wy, wm, wd := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Date()
	t := time.Date(wy, wm, wd, 0, 0, 0, 0, loc)
	if onDay(t, wy, wm, wd) {
		return t
	}
	for !onDay(t, wy, wm, wd) {
		t = t.Add(time.Hour)
	}
	for p := t.Add(-time.Minute); onDay(p, wy, wm, wd); p = p.Add(-time.Minute) {
		t = p
	}
	return t
}

func onDay(t time.Time, y int, m time.Month, d int) bool {
	ty, tm, td := t.Date()
	return ty == y && tm == m && td == d
}

// StartOfDay strips the time of day from t in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return Midnight(y, m, d, t.Location())
}

// AddDays shifts t by n calendar days. The arithmetic is done on the
// year/month/day fields so it never skips or repeats a day across DST changes.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return Midnight(y, m, d+n, t.Location())
}

// SubDays shifts t back by n calendar days.
func SubDays(t time.Time, n int) time.Time {
	return AddDays(t, -n)
}

// FirstOfMonth returns the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return Midnight(t.Year(), t.Month(), 1, t.Location())
}

// LastOfMonth returns the last day of t's month.
func LastOfMonth(t time.Time) time.Time {
	return Midnight(t.Year(), t.Month(), DaysInMonth(t.Year(), t.Month()), t.Location())
}

// NextMonth returns the first day of the month after t's month.
func NextMonth(t time.Time) time.Time {
	return Midnight(t.Year(), t.Month()+1, 1, t.Location())
}

// PreviousMonth returns the first day of the month before t's month.
func PreviousMonth(t time.Time) time.Time {
	return Midnight(t.Year(), t.Month()-1, 1, t.Location())
}

// AddMonths moves t by n months keeping the day of month, clamped to the
// length of the target month (Jan 31 + 1 month is Feb 28 or 29).
func AddMonths(t time.Time, n int) time.Time {
	fy, fm, _ := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC).Date()
	day := min(t.Day(), DaysInMonth(fy, fm))
	return Midnight(fy, fm, day, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Nights returns the number of days from start to end; it is negative when
// end precedes start.
func Nights(start, end time.Time) int {
	return int(dayNumber(end) - dayNumber(start))
}

// dayNumber counts days since the Unix epoch using t's wall-clock date so
// that the offset of t's location does not leak into the count.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// ToISOString formats t as YYYY-MM-DD.
func ToISOString(t time.Time) string {
	if t.Year() >= MinYear && t.Year() <= MaxYear {
		return t.Format(ISOLayout)
	}
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}

// FromISOString parses a YYYY-MM-DD string as local midnight in loc.
// A malformed string or an impossible date yields ErrInvalidDate.
func FromISOString(s string, loc *time.Location) (time.Time, error) {
	if !isoRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return parseDay(ISOLayout, s, loc)
}

// parseDay parses s in UTC so that a DST gap in loc cannot shift the day,
// then rebuilds the date in loc.
func parseDay(layout, s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return Midnight(t.Year(), t.Month(), t.Day(), locationOrLocal(loc)), nil
}

var (
	isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	usRe  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// IsValidDateString reports whether s is YYYY-MM-DD or MM/DD/YYYY and
// names a real calendar date.
func IsValidDateString(s string) bool {
	_, err := ParseDateString(s, time.UTC)
	return err == nil
}

// ParseDateString parses either of the forms accepted by IsValidDateString.
func ParseDateString(s string, loc *time.Location) (time.Time, error) {
	switch {
	case isoRe.MatchString(s):
		return FromISOString(s, loc)
	case usRe.MatchString(s):
		return parseDay(usLayout, s, loc)
	}
	return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
