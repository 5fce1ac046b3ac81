package field

import (
	"fmt"
	"strings"
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

// Single pairs one text input with a single-date calendar.
type Single struct {
	popup
	input     Input
	cal       *calendar.Machine
	blocked   func(time.Time) bool
	format    func(time.Time) string
	text      string
	committed time.Time
}

// NewSingle creates the calendar described by cfg and binds input to it.
// cfg.OnChange still receives every committed value.
func NewSingle(input Input, cfg calendar.Config, opts Options, calOpts ...calendar.Option) (*Single, error) {
	if err := input.validate("date"); err != nil {
		return nil, err
	}
	if cfg.Range {
		return nil, fmt.Errorf("single-date field given a range configuration: %w", calendar.ErrInvalidConfig)
	}
	s := &Single{
		input:   input,
		blocked: cfg.IsDayBlocked,
		format:  formatter(opts, cfg.Locale),
	}
	notify := cfg.OnChange
	cfg.OnChange = func(v calendar.Value) {
		s.sync(v)
		if notify != nil {
			notify(v)
		}
	}
	cal, err := calendar.New(cfg, calOpts...)
	if err != nil {
		return nil, err
	}
	s.cal = cal
	s.sync(cal.Value())
	return s, nil
}

// Calendar returns the underlying machine.
func (s *Single) Calendar() *calendar.Machine { return s.cal }

// Input returns the input description.
func (s *Single) Input() Input { return s.input }

// Text returns the text currently shown in the input.
func (s *Single) Text() string { return s.text }

// SetText handles an edit of the input. Emptying it clears the value; a
// valid, unblocked date is selected and closes the popup; anything else is
// kept as typed without committing.
func (s *Single) SetText(text string) {
	if strings.TrimSpace(text) == "" {
		s.text = ""
		if !s.cal.Value().IsEmpty() {
			s.cal.Clear()
		}
		return
	}
	d, ok := parse(s.cal, s.blocked, text)
	if !ok {
		s.text = text
		return
	}
	s.cal.Select(d)
	s.text = formatOrEmpty(s.format, s.cal.Value().Date)
	s.Close()
}

// Pick selects date from the popup grid and closes the popup on success.
func (s *Single) Pick(date time.Time) bool {
	if !s.cal.Select(date) {
		return false
	}
	s.Close()
	return true
}

func (s *Single) sync(v calendar.Value) {
	if changed(s.committed, v.Date) {
		s.text = formatOrEmpty(s.format, v.Date)
	}
	s.committed = v.Date
}
