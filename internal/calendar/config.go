package calendar

import (
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/errors"

	"github.com/lululau/datepick/internal/dates"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid calendar configuration")

// Value is the committed selection. Date is used in single-date mode and
// Range in range mode; the zero Value is the empty selection.
type Value struct {
	Date  time.Time
	Range dates.Range
}

// IsEmpty reports whether nothing is selected.
func (v Value) IsEmpty() bool {
	return v.Date.IsZero() && v.Range.IsEmpty()
}

func (v Value) String() string {
	switch {
	case !v.Date.IsZero():
		return dates.ToISOString(v.Date)
	case !v.Range.IsEmpty():
		return v.Range.String()
	}
	return ""
}

// Config describes a picker. Every predicate and callback is optional.
type Config struct {
	// Range selects start/end picking instead of a single date.
	Range bool
	// FirstDayOfWeek (0 = Sunday) defaults to the locale's week start.
	FirstDayOfWeek *time.Weekday
	// MinimumNights is the number of days that must lie strictly between
	// the endpoints of a range. Ignored when HasMinimumNights is set.
	MinimumNights int
	// StartDate is the ISO date that receives focus initially. It defaults
	// to the initial value, then to today.
	StartDate string
	// Initial is the value the picker is mounted with.
	Initial Value
	// Locale names the language used for titles and week start.
	Locale string
	// Location is the zone dates are normalized in; time.Local if nil.
	Location *time.Location

	IsDayBlocked     func(time.Time) bool
	IsBlockedBetween func(dates.Range) bool
	HasMinimumNights func(dates.Range) bool

	// OnChange is called once per committed selection or clear.
	OnChange func(Value)
	// OnMonthChange receives the first day of the newly visible month.
	OnMonthChange func(time.Time)
}

// Validate reports every configuration error at once.
func (c Config) Validate() error {
	errs := &errors.M{}
	if c.FirstDayOfWeek != nil && (*c.FirstDayOfWeek < time.Sunday || *c.FirstDayOfWeek > time.Saturday) {
		errs.Append(fmt.Errorf("first day of week %d not in 0..6: %w", *c.FirstDayOfWeek, ErrInvalidConfig))
	}
	if c.MinimumNights < 0 {
		errs.Append(fmt.Errorf("minimum nights %d is negative: %w", c.MinimumNights, ErrInvalidConfig))
	}
	if c.StartDate != "" {
		if _, err := dates.FromISOString(c.StartDate, c.Location); err != nil {
			errs.Append(fmt.Errorf("start date: %v: %w", err, ErrInvalidConfig))
		}
	}
	if c.Range && !c.Initial.Date.IsZero() {
		errs.Append(fmt.Errorf("single initial date given in range mode: %w", ErrInvalidConfig))
	}
	if !c.Range && !c.Initial.Range.IsEmpty() {
		errs.Append(fmt.Errorf("initial range given in single-date mode: %w", ErrInvalidConfig))
	}
	if r := c.Initial.Range; r.IsComplete() && r.End.Before(r.Start) {
		errs.Append(fmt.Errorf("initial range %v ends before it starts: %w", r, ErrInvalidConfig))
	}
	if r := c.Initial.Range; r.HasEnd() && !r.HasStart() {
		errs.Append(fmt.Errorf("initial range %v has an end but no start: %w", r, ErrInvalidConfig))
	}
	return errs.Err()
}

// Option configures a Machine beyond its Config.
type Option func(*Machine)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithLogger sets the logger used to report rejected interactions.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}
