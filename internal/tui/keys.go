package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lululau/datepick/internal/calendar"
)

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	Clear     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Toggle    key.Binding
	Close     key.Binding
	Edit      key.Binding
	Switch    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup/K", "prev month")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn/J", "next month")),
		Home:      key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "month start")),
		End:       key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "month end")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Clear:     key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "slide back")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "slide on")),
		Today:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "today")),
		Toggle:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open/close")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Edit:      key.NewBinding(key.WithKeys("e", "i"), key.WithHelp("e", "type date")),
		Switch:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "start/end")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// calendarKey maps a key press to the machine's keyboard table.
func (k keyMap) calendarKey(msg tea.KeyMsg) (calendar.Key, bool) {
	pairs := []struct {
		binding key.Binding
		key     calendar.Key
	}{
		{k.Left, calendar.KeyLeft},
		{k.Right, calendar.KeyRight},
		{k.Up, calendar.KeyUp},
		{k.Down, calendar.KeyDown},
		{k.PageUp, calendar.KeyPageUp},
		{k.PageDown, calendar.KeyPageDown},
		{k.Home, calendar.KeyHome},
		{k.End, calendar.KeyEnd},
		{k.Select, calendar.KeyEnter},
		{k.Clear, calendar.KeyDelete},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			return p.key, true
		}
	}
	return "", false
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.Today, k.Edit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Clear, k.PrevMonth, k.NextMonth, k.Today},
		{k.Toggle, k.Close, k.Edit, k.Switch, k.Help, k.Quit, k.Cancel},
	}
}
