// Package tui hosts a date picker in a Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/dates"
	"github.com/lululau/datepick/internal/field"
	"github.com/lululau/datepick/internal/render"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

// ErrCanceled is returned by Run when the user aborts the picker.
var ErrCanceled = errors.New("date selection canceled")

// DefaultSlideDuration is how long a month slide takes before the panels
// settle.
const DefaultSlideDuration = 150 * time.Millisecond

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#60A5FA"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
)

// Options configures Run.
type Options struct {
	Config          calendar.Config
	Field           field.Options
	CalendarOptions []calendar.Option
	// Inputs label the text fields; one is used in single-date mode.
	Inputs        [2]field.Input
	SlideDuration time.Duration
}

// slideDoneMsg tells the model the running slide animation finished.
type slideDoneMsg struct{}

// picker is the popup state both adapters expose.
type picker interface {
	IsOpen() bool
	Open()
	Close()
	Toggle()
}

// Run starts the interactive picker and returns the value committed when
// the user quits.
func Run(ctx context.Context, opts Options) (calendar.Value, error) {
	m, err := newModel(opts)
	if err != nil {
		return calendar.Value{}, err
	}
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return calendar.Value{}, err
	}
	fm := final.(model)
	if fm.canceled {
		return calendar.Value{}, ErrCanceled
	}
	return fm.cal.Value(), nil
}

type model struct {
	cal      *calendar.Machine
	single   *field.Single
	rng      *field.Range
	keys     keyMap
	help     help.Model
	input    textinput.Model
	editing  bool
	slide    time.Duration
	width    int
	status   string
	canceled bool
}

func newModel(opts Options) (model, error) {
	inputs := opts.Inputs
	if inputs[0] == (field.Input{}) {
		if opts.Config.Range {
			inputs = [2]field.Input{{ID: "start", Label: "Start"}, {ID: "end", Label: "End"}}
		} else {
			inputs[0] = field.Input{ID: "date", Label: "Date"}
		}
	}
	m := model{
		keys:  defaultKeyMap(),
		help:  help.New(),
		slide: opts.SlideDuration,
	}
	if m.slide <= 0 {
		m.slide = DefaultSlideDuration
	}
	if opts.Config.Range {
		r, err := field.NewRange(inputs[0], inputs[1], opts.Config, opts.Field, opts.CalendarOptions...)
		if err != nil {
			return model{}, err
		}
		m.rng, m.cal = r, r.Calendar()
	} else {
		s, err := field.NewSingle(inputs[0], opts.Config, opts.Field, opts.CalendarOptions...)
		if err != nil {
			return model{}, err
		}
		m.single, m.cal = s, s.Calendar()
	}
	m.popup().Open()

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Prompt = "> "
	m.input = ti
	return m, nil
}

func (m model) popup() picker {
	if m.rng != nil {
		return m.rng
	}
	return m.single
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case slideDoneMsg:
		m.cal.CompleteSlide()
	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.popup().Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.popup().Close()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.activateInput()
		return m, nil
	case key.Matches(msg, m.keys.Switch):
		if m.rng != nil {
			m.rng.FocusField(other(m.rng.ActiveField()))
		}
		return m, nil
	}
	if !m.popup().IsOpen() {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		return m, m.startSlide(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m, m.startSlide(1)
	case key.Matches(msg, m.keys.Today):
		m.cal.JumpToToday()
	default:
		if k, ok := m.keys.calendarKey(msg); ok {
			m.navigate(k)
		}
	}
	return m, nil
}

// startSlide begins a month slide and schedules its completion. A request
// made while a slide is running is dropped.
func (m *model) startSlide(direction int) tea.Cmd {
	if !m.cal.Slide(direction) {
		return nil
	}
	return tea.Tick(m.slide, func(time.Time) tea.Msg {
		return slideDoneMsg{}
	})
}

func (m *model) navigate(k calendar.Key) {
	if !m.cal.Navigate(k) || k != calendar.KeyEnter {
		return
	}
	v := m.cal.Value()
	if (m.single != nil && !v.Date.IsZero()) || v.Range.IsComplete() {
		m.popup().Close()
	}
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		m.canceled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) activateInput() {
	m.editing = true
	m.input.SetValue(m.fieldText())
	m.input.CursorEnd()
	m.input.Focus()
	m.status = ""
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if m.rng != nil {
		m.rng.SetText(m.rng.ActiveField(), value)
	} else {
		m.single.SetText(value)
	}
	m.editing = false
	m.input.Blur()
	if value != "" && !dates.IsValidDateString(value) {
		m.status = fmt.Sprintf("%q is not a date (YYYY-MM-DD or MM/DD/YYYY)", value)
	}
}

func (m model) fieldText() string {
	if m.rng != nil {
		return m.rng.Text(m.rng.ActiveField())
	}
	return m.single.Text()
}

func (m model) View() string {
	sb := strings.Builder{}
	sb.WriteString(m.fieldsView())
	if m.popup().IsOpen() {
		body, err := render.Panels(m.cal, m.renderWidth())
		if err != nil {
			m.status = err.Error()
		}
		sb.WriteString("\n\n")
		sb.WriteString(body)
		sb.WriteString("\n\n")
		sb.WriteString(render.Legend())
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(style(statusStyle, m.status))
	}
	return sb.String()
}

func (m model) renderWidth() int {
	if m.width <= 0 {
		return 100
	}
	return m.width
}

func (m model) fieldsView() string {
	if m.single != nil {
		return m.fieldView(m.single.Input(), m.single.Text(), true)
	}
	active := m.rng.ActiveField()
	return m.fieldView(m.rng.Input(calendar.Start), m.rng.Text(calendar.Start), active == calendar.Start) +
		"  →  " +
		m.fieldView(m.rng.Input(calendar.End), m.rng.Text(calendar.End), active == calendar.End)
}

func (m model) fieldView(in field.Input, text string, active bool) string {
	label := style(labelStyle, in.Label+":")
	if active && m.editing {
		return label + " " + m.input.View()
	}
	if text == "" {
		text = "-"
	}
	if active && m.rng != nil {
		text = style(activeStyle, text)
	}
	return label + " " + text
}

func style(s lipgloss.Style, text string) string {
	if noColorMode {
		return text
	}
	return s.Render(text)
}

func other(e calendar.Endpoint) calendar.Endpoint {
	if e == calendar.Start {
		return calendar.End
	}
	return calendar.Start
}
