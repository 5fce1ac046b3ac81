package calendar

import (
	"time"

	"github.com/lululau/datepick/internal/dates"
)

// Key names a navigation key independent of any UI toolkit.
type Key string

const (
	KeyLeft      Key = "ArrowLeft"
	KeyRight     Key = "ArrowRight"
	KeyUp        Key = "ArrowUp"
	KeyDown      Key = "ArrowDown"
	KeyPageUp    Key = "PageUp"
	KeyPageDown  Key = "PageDown"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeySpace     Key = "Space"
	KeyEnter     Key = "Enter"
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "Backspace"
)

type action int

const (
	actionFocus action = iota
	actionSelect
	actionClear
)

type binding struct {
	action action
	step   func(time.Time) time.Time
}

func days(n int) func(time.Time) time.Time {
	return func(t time.Time) time.Time { return dates.AddDays(t, n) }
}

func months(n int) func(time.Time) time.Time {
	return func(t time.Time) time.Time { return dates.AddMonths(t, n) }
}

var keyTable = map[Key]binding{
	KeyLeft:      {actionFocus, days(-1)},
	KeyRight:     {actionFocus, days(1)},
	KeyUp:        {actionFocus, days(-7)},
	KeyDown:      {actionFocus, days(7)},
	KeyPageUp:    {actionFocus, months(-1)},
	KeyPageDown:  {actionFocus, months(1)},
	KeyHome:      {actionFocus, dates.FirstOfMonth},
	KeyEnd:       {actionFocus, dates.LastOfMonth},
	KeySpace:     {action: actionSelect},
	KeyEnter:     {action: actionSelect},
	KeyDelete:    {action: actionClear},
	KeyBackspace: {action: actionClear},
}

// Keys lists every key Navigate understands.
func Keys() []Key {
	keys := make([]Key, 0, len(keyTable))
	for k := range keyTable {
		keys = append(keys, k)
	}
	return keys
}

// Navigate applies key to the machine and reports whether state changed.
// In range mode activation only picks endpoints while the range is
// incomplete; a finished range is changed by clearing it or by clicking.
func (m *Machine) Navigate(key Key) bool {
	b, ok := keyTable[key]
	if !ok {
		return false
	}
	switch b.action {
	case actionSelect:
		if m.cfg.Range && m.rng.IsComplete() {
			return false
		}
		return m.Select(m.focus)
	case actionClear:
		if m.Value().IsEmpty() {
			return false
		}
		m.Clear()
		return true
	}
	return m.MoveFocus(b.step(m.focus))
}
