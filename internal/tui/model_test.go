package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/field"
)

var fixedNow = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestModel(t *testing.T, cfg calendar.Config) model {
	t.Helper()
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })
	cfg.Location = time.UTC
	if cfg.Locale == "" {
		cfg.Locale = "en-US"
	}
	m, err := newModel(Options{
		Config:          cfg,
		CalendarOptions: []calendar.Option{calendar.WithNow(func() time.Time { return fixedNow })},
	})
	if err != nil {
		t.Fatalf("newModel failed: %v", err)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func TestKeyMapping(t *testing.T) {
	km := defaultKeyMap()
	for _, tc := range []struct {
		msg  tea.KeyMsg
		want calendar.Key
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, calendar.KeyLeft},
		{runes("l"), calendar.KeyRight},
		{tea.KeyMsg{Type: tea.KeyUp}, calendar.KeyUp},
		{runes("j"), calendar.KeyDown},
		{tea.KeyMsg{Type: tea.KeyPgUp}, calendar.KeyPageUp},
		{tea.KeyMsg{Type: tea.KeyPgDown}, calendar.KeyPageDown},
		{tea.KeyMsg{Type: tea.KeyHome}, calendar.KeyHome},
		{tea.KeyMsg{Type: tea.KeyEnd}, calendar.KeyEnd},
		{tea.KeyMsg{Type: tea.KeyEnter}, calendar.KeyEnter},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, calendar.KeyEnter},
		{tea.KeyMsg{Type: tea.KeyBackspace}, calendar.KeyDelete},
	} {
		got, ok := km.calendarKey(tc.msg)
		if !ok || got != tc.want {
			t.Errorf("%q: got %q (%v), want %q", tc.msg.String(), got, ok, tc.want)
		}
	}
	if _, ok := km.calendarKey(runes("x")); ok {
		t.Fatal("unbound key should not map to a calendar key")
	}
}

func TestSelectWithKeyboard(t *testing.T) {
	m := newTestModel(t, calendar.Config{})
	if !m.popup().IsOpen() {
		t.Fatal("picker should start open")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.cal.Value().Date; !got.Equal(day(6, 12)) {
		t.Fatalf("selected %v, want 2024-06-12", got)
	}
	if m.single.Text() != "06/12/2024" {
		t.Fatalf("field text %q", m.single.Text())
	}
	if m.popup().IsOpen() {
		t.Fatal("picker should close after a selection")
	}
	// Navigation is ignored while closed.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if !m.cal.Focus().Equal(day(6, 12)) {
		t.Fatalf("focus moved while closed: %v", m.cal.Focus())
	}
	m, _ = send(t, m, runes("o"), tea.KeyMsg{Type: tea.KeyDelete})
	if !m.cal.Value().IsEmpty() || m.single.Text() != "" {
		t.Fatalf("delete should clear, got %v %q", m.cal.Value(), m.single.Text())
	}
}

func TestSlideLockAndCompletion(t *testing.T) {
	m := newTestModel(t, calendar.Config{})
	m, cmd := send(t, m, runes("]"))
	if cmd == nil {
		t.Fatal("slide should schedule its completion")
	}
	if m.cal.Transition() != calendar.SlideNext {
		t.Fatalf("transition = %v", m.cal.Transition())
	}
	m, cmd = send(t, m, runes("["))
	if cmd != nil || m.cal.Transition() != calendar.SlideNext {
		t.Fatal("slide request during a slide should be dropped")
	}
	m, _ = send(t, m, slideDoneMsg{})
	if m.cal.Transition() != calendar.Idle {
		t.Fatalf("transition = %v after completion", m.cal.Transition())
	}
	if !m.cal.Focus().Equal(day(7, 10)) {
		t.Fatalf("focus = %v, want 2024-07-10", m.cal.Focus())
	}
	m, _ = send(t, m, runes("."))
	if !m.cal.Focus().Equal(day(6, 10)) {
		t.Fatalf("today moved focus to %v", m.cal.Focus())
	}
}

func TestTypedDate(t *testing.T) {
	m := newTestModel(t, calendar.Config{})
	m, _ = send(t, m, runes("e"))
	if !m.editing {
		t.Fatal("e should start editing")
	}
	m, _ = send(t, m, runes("2024-07-01"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Fatal("enter should finish editing")
	}
	if got := m.cal.Value().Date; !got.Equal(day(7, 1)) {
		t.Fatalf("typed date selected %v", got)
	}
	if m.single.Text() != "07/01/2024" {
		t.Fatalf("field text %q", m.single.Text())
	}

	m, _ = send(t, m, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("soon"), tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.status, "not a date") {
		t.Fatalf("status %q", m.status)
	}
	if got := m.cal.Value().Date; !got.Equal(day(7, 1)) {
		t.Fatalf("invalid text changed the value to %v", got)
	}
}

func TestRangeFields(t *testing.T) {
	m := newTestModel(t, calendar.Config{Range: true})
	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	r := m.cal.Value().Range
	if !r.Start.Equal(day(6, 10)) || !r.End.Equal(day(6, 13)) {
		t.Fatalf("range = %v", r)
	}
	if m.popup().IsOpen() {
		t.Fatal("picker should close once the range is complete")
	}
	if m.rng.ActiveField() != calendar.End {
		t.Fatalf("active field = %v", m.rng.ActiveField())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.rng.ActiveField() != calendar.Start {
		t.Fatalf("tab should switch fields, active = %v", m.rng.ActiveField())
	}
	view := m.View()
	for _, want := range []string{"Start: 06/10/2024", "End: 06/13/2024"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "June 2024") {
		t.Fatalf("closed picker should not draw panels:\n%s", view)
	}
}

func TestViewShowsPanelsWhenOpen(t *testing.T) {
	m := newTestModel(t, calendar.Config{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	view := m.View()
	for _, want := range []string{"Date:", "May 2024", "June 2024", "July 2024", ">10<"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestCancelAndQuit(t *testing.T) {
	m := newTestModel(t, calendar.Config{})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.canceled || cmd == nil {
		t.Fatal("ctrl+c should cancel and quit")
	}
	m = newTestModel(t, calendar.Config{})
	m, cmd = send(t, m, runes("q"))
	if m.canceled || cmd == nil {
		t.Fatal("q should quit without canceling")
	}
}

func TestNewModelRejectsBadInput(t *testing.T) {
	_, err := newModel(Options{Inputs: [2]field.Input{{Label: "Date"}}})
	if err == nil {
		t.Fatal("expected an error for a label without an id")
	}
}

func TestHomeEndJumpWithinMonth(t *testing.T) {
	m := newTestModel(t, calendar.Config{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if !m.cal.Focus().Equal(day(6, 1)) {
		t.Fatalf("home moved focus to %v", m.cal.Focus())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if !m.cal.Focus().Equal(day(6, 30)) {
		t.Fatalf("end moved focus to %v", m.cal.Focus())
	}
	if got := m.keys.Home.Help().Desc; got != "month start" {
		t.Fatalf("home help = %q", got)
	}
	if got := m.keys.End.Help().Desc; got != "month end" {
		t.Fatalf("end help = %q", got)
	}
}
