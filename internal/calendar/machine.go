// Package calendar implements the date picker state machine: focus movement,
// single-date and range selection validated against caller predicates, the
// keyboard map and the one-month slide transition.
package calendar

import (
	"log/slog"
	"time"

	"github.com/lululau/datepick/internal/dates"
	"github.com/lululau/datepick/internal/locale"
)

// Endpoint identifies one end of a range.
type Endpoint int

const (
	Start Endpoint = iota
	End
)

func (e Endpoint) String() string {
	if e == End {
		return "end"
	}
	return "start"
}

// Machine owns the picker state. It is not safe for concurrent use; every
// method is expected to run inside a single interaction handler.
type Machine struct {
	cfg      Config
	now      func() time.Time
	logger   *slog.Logger
	loc      *time.Location
	firstDay time.Weekday

	focus time.Time
	date  time.Time
	rng   dates.Range

	hover   time.Time
	pointer bool // hover, rather than focus, drives the range preview

	transition Transition
}

// New validates cfg and returns a Machine focused on cfg.StartDate.
func New(cfg Config, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		cfg:    cfg,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
		loc:    cfg.Location,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.loc == nil {
		m.loc = time.Local
	}
	m.firstDay = locale.FirstDayOfWeek(cfg.Locale)
	if cfg.FirstDayOfWeek != nil {
		m.firstDay = *cfg.FirstDayOfWeek
	}

	m.date = m.normalize(cfg.Initial.Date)
	m.rng = dates.Range{Start: m.normalize(cfg.Initial.Range.Start), End: m.normalize(cfg.Initial.Range.End)}

	switch {
	case cfg.StartDate != "":
		m.focus, _ = dates.FromISOString(cfg.StartDate, m.loc)
	case !m.date.IsZero():
		m.focus = m.date
	case m.rng.HasStart():
		m.focus = m.rng.Start
	default:
		m.focus = m.today()
	}
	return m, nil
}

// normalize re-expresses t's wall-clock date as midnight in the machine's
// location; the zero time stays zero.
func (m *Machine) normalize(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, mo, d := t.Date()
	return dates.Midnight(y, mo, d, m.loc)
}

func (m *Machine) today() time.Time {
	return m.normalize(m.now())
}

// IsRange reports whether the machine selects ranges.
func (m *Machine) IsRange() bool { return m.cfg.Range }

// FirstDayOfWeek returns the resolved week start.
func (m *Machine) FirstDayOfWeek() time.Weekday { return m.firstDay }

// Locale returns the configured locale.
func (m *Machine) Locale() string { return m.cfg.Locale }

// Location returns the zone dates are normalized in.
func (m *Machine) Location() *time.Location { return m.loc }

// Focus returns the keyboard focus date.
func (m *Machine) Focus() time.Time { return m.focus }

// Value returns the committed selection.
func (m *Machine) Value() Value {
	if m.cfg.Range {
		return Value{Range: m.rng}
	}
	return Value{Date: m.date}
}

// Select applies a click or keyboard activation on date. It reports whether
// the value changed; rejected selections are silent no-ops.
func (m *Machine) Select(date time.Time) bool {
	date = m.normalize(date)
	if date.IsZero() {
		return false
	}
	if m.isDayBlocked(date) {
		m.logger.Debug("selection rejected", "date", dates.ToISOString(date), "reason", "blocked")
		return false
	}
	if !m.cfg.Range {
		if !m.date.IsZero() && dates.IsSameDay(m.date, date) {
			return false
		}
		m.date = date
		m.setFocus(date)
		m.emit()
		return true
	}
	if m.rng.IsEmpty() || m.rng.IsComplete() {
		m.startRange(date)
		return true
	}
	return m.complete(m.rng.Start, date)
}

// SelectKey selects the day identified by an ISO key as emitted in Day.Key.
func (m *Machine) SelectKey(key string) bool {
	d, err := dates.FromISOString(key, m.loc)
	if err != nil {
		return false
	}
	return m.Select(d)
}

// ReplaceEndpoint retypes one endpoint of the range while keeping the
// other; the result is validated exactly as a second click would be.
func (m *Machine) ReplaceEndpoint(which Endpoint, date time.Time) bool {
	if !m.cfg.Range {
		return m.Select(date)
	}
	date = m.normalize(date)
	if date.IsZero() {
		return false
	}
	if m.isDayBlocked(date) {
		m.logger.Debug("selection rejected", "date", dates.ToISOString(date), "reason", "blocked")
		return false
	}
	other := m.rng.End
	if which == End {
		other = m.rng.Start
	}
	if other.IsZero() {
		m.startRange(date)
		return true
	}
	return m.complete(other, date)
}

// ClearEndpoint removes one endpoint of the range. The remaining endpoint,
// if any, becomes the start of a partial range.
func (m *Machine) ClearEndpoint(which Endpoint) bool {
	if !m.cfg.Range {
		return false
	}
	remaining := m.rng.Start
	if which == Start {
		remaining = m.rng.End
	}
	next := dates.Range{Start: remaining}
	if next == m.rng {
		return false
	}
	m.rng = next
	m.emit()
	return true
}

// Clear empties the value and notifies OnChange.
func (m *Machine) Clear() {
	m.date = time.Time{}
	m.rng = dates.Range{}
	m.emit()
}

// MoveFocus moves keyboard focus to date without touching the selection.
// Dates outside the supported years are ignored.
func (m *Machine) MoveFocus(date time.Time) bool {
	m.pointer = false
	return m.setFocus(m.normalize(date))
}

// JumpToToday moves focus to the current date.
func (m *Machine) JumpToToday() bool {
	return m.MoveFocus(m.now())
}

// Hover records the day under the pointer; it takes over the range preview
// until ClearHover or the next keyboard movement.
func (m *Machine) Hover(date time.Time) {
	m.hover = m.normalize(date)
	m.pointer = !m.hover.IsZero()
}

// ClearHover forgets the hovered day.
func (m *Machine) ClearHover() {
	m.hover = time.Time{}
	m.pointer = false
}

func (m *Machine) setFocus(date time.Time) bool {
	if date.IsZero() || date.Year() < dates.MinYear || date.Year() > dates.MaxYear {
		m.logger.Debug("focus rejected", "year", date.Year())
		return false
	}
	prev := m.focus
	m.focus = date
	if prev.Year() != date.Year() || prev.Month() != date.Month() {
		first := dates.FirstOfMonth(date)
		m.logger.Debug("month changed", "month", dates.ToISOString(first))
		if m.cfg.OnMonthChange != nil {
			m.cfg.OnMonthChange(first)
		}
	}
	return true
}

func (m *Machine) startRange(date time.Time) {
	m.rng = dates.Range{Start: date}
	m.setFocus(date)
	m.emit()
}

// complete combines anchor with date into a range and commits it when it
// satisfies the minimum-nights rule. Re-committing the current range is a
// no-op. A range spanning a blocked day is
// discarded and date starts a new range instead.
func (m *Machine) complete(anchor, date time.Time) bool {
	candidate := dates.NewRange(anchor, date)
	if !m.hasMinimumNights(candidate) {
		m.logger.Debug("selection rejected", "range", candidate.String(), "reason", "minimum nights")
		return false
	}
	if m.rng.IsComplete() && candidate.Start.Equal(m.rng.Start) && candidate.End.Equal(m.rng.End) {
		m.setFocus(date)
		return false
	}
	if m.isBlockedBetween(candidate) {
		m.logger.Debug("range discarded", "range", candidate.String(), "reason", "blocked between")
		m.startRange(date)
		return true
	}
	m.rng = candidate
	m.setFocus(date)
	m.emit()
	return true
}

func (m *Machine) emit() {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.Value())
	}
}

func (m *Machine) isDayBlocked(d time.Time) bool {
	return m.cfg.IsDayBlocked != nil && m.cfg.IsDayBlocked(d)
}

func (m *Machine) hasMinimumNights(r dates.Range) bool {
	if m.cfg.HasMinimumNights != nil {
		return m.cfg.HasMinimumNights(r)
	}
	return m.cfg.MinimumNights <= 0 || r.Nights()-1 >= m.cfg.MinimumNights
}

// isBlockedBetween falls back to scanning the days strictly inside r with
// IsDayBlocked when no range predicate is configured.
func (m *Machine) isBlockedBetween(r dates.Range) bool {
	if m.cfg.IsBlockedBetween != nil {
		return m.cfg.IsBlockedBetween(r)
	}
	if m.cfg.IsDayBlocked == nil {
		return false
	}
	blocked := false
	r.Days(func(d time.Time) bool {
		if dates.IsSameDay(d, r.Start) || dates.IsSameDay(d, r.End) {
			return true
		}
		blocked = m.cfg.IsDayBlocked(d)
		return !blocked
	})
	return blocked
}
