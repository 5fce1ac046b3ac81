package calendar

import (
	"time"

	"github.com/lululau/datepick/internal/dates"
	"github.com/lululau/datepick/internal/locale"
)

// Day is one grid cell together with the flags a renderer needs.
type Day struct {
	Date time.Time
	// Key is the ISO date used to route UI events back via SelectKey.
	Key          string
	InMonth      bool
	IsFocus      bool
	IsSelected   bool
	InRange      bool
	InPreview    bool
	IsRangeStart bool
	IsRangeEnd   bool
	IsDisabled   bool
	IsToday      bool
}

// IsOverflow reports whether the day belongs to an adjacent month.
func (d Day) IsOverflow() bool { return !d.InMonth }

// MonthView describes one panel laid out into weeks.
type MonthView struct {
	Year  int
	Month time.Month
	Title string
	Weeks [][]Day
}

// Panels returns the previous, current and next month around the focus.
func (m *Machine) Panels() [3]MonthView {
	cur := dates.FirstOfMonth(m.focus)
	return [3]MonthView{
		m.Month(dates.PreviousMonth(cur)),
		m.Month(cur),
		m.Month(dates.NextMonth(cur)),
	}
}

// Month builds the view for the month containing t. It does not change any
// state.
func (m *Machine) Month(t time.Time) MonthView {
	first := dates.FirstOfMonth(m.normalize(t))
	grid := dates.CalendarGrid(first, m.firstDay)
	now := m.today()
	preview := m.previewCandidate()

	weeks := make([][]Day, len(grid))
	for i, week := range grid {
		row := make([]Day, len(week))
		for j, d := range week {
			row[j] = m.buildDay(d, first.Month(), now, preview)
		}
		weeks[i] = row
	}
	return MonthView{
		Year:  first.Year(),
		Month: first.Month(),
		Title: locale.MonthTitle(first, m.cfg.Locale),
		Weeks: weeks,
	}
}

// pendingStart returns the chosen endpoint while exactly one is set.
func (m *Machine) pendingStart() (time.Time, bool) {
	if !m.cfg.Range || !m.rng.HasStart() || m.rng.HasEnd() {
		return time.Time{}, false
	}
	return m.rng.Start, true
}

// previewCandidate is the prospective second endpoint: the hovered day when
// the pointer is active, otherwise the keyboard focus. It is zero unless a
// single endpoint is pending and the candidate could complete the range.
func (m *Machine) previewCandidate() time.Time {
	start, ok := m.pendingStart()
	if !ok {
		return time.Time{}
	}
	candidate := m.focus
	if m.pointer {
		candidate = m.hover
	}
	if candidate.IsZero() || m.isDayBlocked(candidate) {
		return time.Time{}
	}
	r := dates.NewRange(start, candidate)
	if !m.hasMinimumNights(r) || m.isBlockedBetween(r) {
		return time.Time{}
	}
	return candidate
}

func (m *Machine) buildDay(d time.Time, month time.Month, now, preview time.Time) Day {
	day := Day{
		Date:       d,
		Key:        dates.ToISOString(d),
		InMonth:    d.Month() == month,
		IsFocus:    dates.IsSameDay(d, m.focus),
		IsToday:    dates.IsSameDay(d, now),
		IsDisabled: m.isDayBlocked(d),
	}
	if !m.cfg.Range {
		day.IsSelected = !m.date.IsZero() && dates.IsSameDay(d, m.date)
		return day
	}
	day.IsRangeStart = m.rng.HasStart() && dates.IsSameDay(d, m.rng.Start)
	day.IsRangeEnd = m.rng.HasEnd() && dates.IsSameDay(d, m.rng.End)
	day.IsSelected = day.IsRangeStart || day.IsRangeEnd
	if m.rng.IsComplete() {
		day.InRange = dates.IsDateInRange(d, m.rng.Start, m.rng.End)
	}
	if start, ok := m.pendingStart(); ok {
		if !day.IsDisabled && !m.hasMinimumNights(dates.NewRange(start, d)) {
			day.IsDisabled = true
		}
		if !preview.IsZero() {
			day.InPreview = dates.IsDateInRange(d, start, preview)
		}
	}
	return day
}
