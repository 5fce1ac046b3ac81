package field

import (
	"fmt"
	"strings"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/dates"
)

// Range pairs start and end text inputs with a range calendar.
type Range struct {
	popup
	inputs    [2]Input
	cal       *calendar.Machine
	blocked   func(time.Time) bool
	format    func(time.Time) string
	text      [2]string
	committed dates.Range
	active    calendar.Endpoint
}

// NewRange creates the range calendar described by cfg and binds the start
// and end inputs to it.
func NewRange(start, end Input, cfg calendar.Config, opts Options, calOpts ...calendar.Option) (*Range, error) {
	if err := start.validate("start"); err != nil {
		return nil, err
	}
	if err := end.validate("end"); err != nil {
		return nil, err
	}
	if !cfg.Range {
		return nil, fmt.Errorf("range field given a single-date configuration: %w", calendar.ErrInvalidConfig)
	}
	r := &Range{
		inputs:  [2]Input{start, end},
		blocked: cfg.IsDayBlocked,
		format:  formatter(opts, cfg.Locale),
	}
	notify := cfg.OnChange
	cfg.OnChange = func(v calendar.Value) {
		r.sync(v)
		if notify != nil {
			notify(v)
		}
	}
	cal, err := calendar.New(cfg, calOpts...)
	if err != nil {
		return nil, err
	}
	r.cal = cal
	r.sync(cal.Value())
	return r, nil
}

// Calendar returns the underlying machine.
func (r *Range) Calendar() *calendar.Machine { return r.cal }

// Input returns the description of one input.
func (r *Range) Input(which calendar.Endpoint) Input { return r.inputs[which] }

// Text returns the text shown in one input.
func (r *Range) Text(which calendar.Endpoint) string { return r.text[which] }

// ActiveField returns the input that should hold keyboard focus.
func (r *Range) ActiveField() calendar.Endpoint { return r.active }

// FocusField moves keyboard focus to one input.
func (r *Range) FocusField(which calendar.Endpoint) { r.active = which }

// SetText handles an edit of one input. Emptying it clears that endpoint
// only; a valid, unblocked date replaces that endpoint, keeping the other
// one, and closes the popup; anything else is kept as typed.
func (r *Range) SetText(which calendar.Endpoint, text string) {
	if strings.TrimSpace(text) == "" {
		r.text[which] = ""
		r.cal.ClearEndpoint(which)
		return
	}
	d, ok := parse(r.cal, r.blocked, text)
	if !ok {
		r.text[which] = text
		return
	}
	if !r.cal.ReplaceEndpoint(which, d) {
		r.text[which] = text
		if cur := r.endpoint(which); !cur.IsZero() && !changed(cur, d) {
			r.text[which] = formatOrEmpty(r.format, cur)
		}
		return
	}
	r.Close()
}

func (r *Range) endpoint(which calendar.Endpoint) time.Time {
	v := r.cal.Value().Range
	if which == calendar.End {
		return v.End
	}
	return v.Start
}

// Pick handles a click in the popup grid. The popup closes once both
// endpoints are chosen.
func (r *Range) Pick(date time.Time) bool {
	if !r.cal.Select(date) {
		return false
	}
	if r.cal.Value().Range.IsComplete() {
		r.Close()
	}
	return true
}

func (r *Range) sync(v calendar.Value) {
	next := v.Range
	if changed(r.committed.Start, next.Start) {
		r.text[calendar.Start] = formatOrEmpty(r.format, next.Start)
	}
	if changed(r.committed.End, next.End) {
		r.text[calendar.End] = formatOrEmpty(r.format, next.End)
	}
	r.committed = next
	if next.IsComplete() {
		r.active = calendar.End
	}
}

func changed(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() != b.IsZero()
	}
	return !dates.IsSameDay(a, b)
}
