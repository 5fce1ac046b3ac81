package calendar

import (
	"testing"
	"time"

	"github.com/lululau/datepick/internal/dates"
)

func findDay(t *testing.T, view MonthView, d time.Time) Day {
	t.Helper()
	for _, week := range view.Weeks {
		for _, cell := range week {
			if cell.InMonth && dates.IsSameDay(cell.Date, d) {
				return cell
			}
		}
	}
	t.Fatalf("%v not in %v %d", d, view.Month, view.Year)
	return Day{}
}

func TestPanelsSurroundFocus(t *testing.T) {
	m, _ := newMachine(t, Config{StartDate: "2024-01-15", Locale: "en-US"})
	panels := m.Panels()
	want := []time.Month{time.December, time.January, time.February}
	for i, p := range panels {
		if p.Month != want[i] {
			t.Fatalf("panel %d is %v, want %v", i, p.Month, want[i])
		}
		for _, week := range p.Weeks {
			if len(week) != 7 {
				t.Fatalf("ragged week in %v", p.Month)
			}
		}
	}
	if panels[0].Year != 2023 || panels[1].Title != "January 2024" {
		t.Fatalf("unexpected panels %d %q", panels[0].Year, panels[1].Title)
	}
	if first := panels[1].Weeks[0][0].Date.Weekday(); first != time.Sunday {
		t.Fatalf("en-US grid should start on Sunday, got %v", first)
	}
}

func TestFirstDayOfWeekOverride(t *testing.T) {
	sat := time.Saturday
	m, _ := newMachine(t, Config{StartDate: "2024-06-15", FirstDayOfWeek: &sat, Locale: "de"})
	if got := m.Month(m.Focus()).Weeks[0][0].Date.Weekday(); got != time.Saturday {
		t.Fatalf("grid starts on %v", got)
	}
	m, _ = newMachine(t, Config{StartDate: "2024-06-15", Locale: "de"})
	if got := m.FirstDayOfWeek(); got != time.Monday {
		t.Fatalf("locale week start = %v", got)
	}
}

func TestDayFlagsSingle(t *testing.T) {
	blocked := day(time.June, 20)
	m, _ := newMachine(t, Config{
		StartDate:    "2024-06-15",
		Initial:      Value{Date: day(time.June, 3)},
		IsDayBlocked: func(d time.Time) bool { return d.Equal(blocked) },
	})
	view := m.Month(m.Focus())
	if d := findDay(t, view, day(time.June, 15)); !d.IsFocus || d.IsSelected {
		t.Fatalf("June 15 flags %+v", d)
	}
	if d := findDay(t, view, day(time.June, 3)); !d.IsSelected || d.IsFocus || d.Key != "2024-06-03" {
		t.Fatalf("June 3 flags %+v", d)
	}
	if d := findDay(t, view, day(time.June, 10)); !d.IsToday {
		t.Fatalf("June 10 should be today")
	}
	if d := findDay(t, view, blocked); !d.IsDisabled {
		t.Fatalf("blocked day not disabled")
	}
	overflow := view.Weeks[0][0]
	if !overflow.IsOverflow() || overflow.Date.Month() != time.May {
		t.Fatalf("first cell %+v should overflow from May", overflow)
	}
}

func TestDayFlagsRange(t *testing.T) {
	m, _ := newMachine(t, Config{Range: true, StartDate: "2024-06-15"})
	m.Select(day(time.June, 12))
	m.Select(day(time.June, 18))
	view := m.Month(m.Focus())
	for d := 1; d <= 30; d++ {
		cell := findDay(t, view, day(time.June, d))
		inside := d >= 12 && d <= 18
		if cell.InRange != inside {
			t.Fatalf("June %d InRange = %v", d, cell.InRange)
		}
		if cell.IsRangeStart != (d == 12) || cell.IsRangeEnd != (d == 18) {
			t.Fatalf("June %d endpoint flags %+v", d, cell)
		}
		if cell.InPreview {
			t.Fatalf("no preview expected for a complete range")
		}
	}
}

func TestMinimumNightsPreview(t *testing.T) {
	m, _ := newMachine(t, Config{Range: true, StartDate: "2024-06-10", MinimumNights: 2})
	m.Select(day(time.June, 10))

	view := m.Month(m.Focus())
	for d := 8; d <= 12; d++ {
		if !findDay(t, view, day(time.June, d)).IsDisabled {
			t.Fatalf("June %d should be disabled inside the minimum-nights window", d)
		}
	}
	if findDay(t, view, day(time.June, 13)).IsDisabled {
		t.Fatalf("June 13 satisfies the minimum")
	}

	// Keyboard focus drives the preview.
	m.MoveFocus(day(time.June, 14))
	view = m.Month(m.Focus())
	if !findDay(t, view, day(time.June, 12)).InPreview || findDay(t, view, day(time.June, 15)).InPreview {
		t.Fatalf("focus preview should span June 10-14")
	}

	// Hover takes over from focus.
	m.Hover(day(time.June, 20))
	view = m.Month(m.Focus())
	if !findDay(t, view, day(time.June, 19)).InPreview {
		t.Fatalf("hover preview should span to June 20")
	}

	// A hovered day that violates the minimum shows no preview, even though
	// the keyboard focus would be valid.
	m.Hover(day(time.June, 11))
	view = m.Month(m.Focus())
	if findDay(t, view, day(time.June, 13)).InPreview || findDay(t, view, day(time.June, 10)).InPreview {
		t.Fatalf("invalid hover must not fall back to focus preview")
	}

	m.ClearHover()
	view = m.Month(m.Focus())
	if !findDay(t, view, day(time.June, 14)).InPreview {
		t.Fatalf("clearing hover should restore the focus preview")
	}
}
