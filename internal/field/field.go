// Package field keeps free-text date inputs in step with a calendar.Machine
// and tracks the open/closed state of the picker popup.
package field

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/dates"
	"github.com/lululau/datepick/internal/locale"
)

// ErrMissingID is returned when a label is configured without the id that
// associates it with its input.
var ErrMissingID = errors.New("label requires an id")

// Input describes one text input.
type Input struct {
	ID    string
	Label string
}

func (in Input) validate(name string) error {
	if in.Label != "" && in.ID == "" {
		return fmt.Errorf("%s input %q: %w", name, in.Label, ErrMissingID)
	}
	return nil
}

// Options configures an adapter.
type Options struct {
	// Format renders committed dates; defaults to the numeric format of the
	// calendar's locale.
	Format func(time.Time) string
}

// popup is the open/closed flag shared by both adapters.
type popup struct {
	open bool
}

// IsOpen reports whether the calendar popup is showing.
func (p *popup) IsOpen() bool { return p.open }

// Open shows the popup.
func (p *popup) Open() { p.open = true }

// Close hides the popup. Uncommitted text is kept.
func (p *popup) Close() { p.open = false }

// Toggle flips the popup on click or keyboard activation.
func (p *popup) Toggle() { p.open = !p.open }

// Blur closes the popup when the input loses focus.
func (p *popup) Blur() { p.open = false }

// OutsideInteraction closes the popup after a click or touch outside it.
func (p *popup) OutsideInteraction() { p.open = false }

// parse returns the date typed in text when it is a valid date string that
// is not blocked.
func parse(m *calendar.Machine, blocked func(time.Time) bool, text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if !dates.IsValidDateString(text) {
		return time.Time{}, false
	}
	d, err := dates.ParseDateString(text, m.Location())
	if err != nil {
		return time.Time{}, false
	}
	if blocked != nil && blocked(d) {
		return time.Time{}, false
	}
	return d, true
}

func formatter(opts Options, loc string) func(time.Time) string {
	if opts.Format != nil {
		return opts.Format
	}
	return locale.Formatter(loc)
}

func formatOrEmpty(format func(time.Time) string, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return format(t)
}
