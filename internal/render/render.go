package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/textwidth"
)

const (
	cellPadding = 1
	cellWidth   = 4
	panelGap    = 2
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	cellStyle     = lipgloss.NewStyle()
	todayStyle    = cellStyle.Foreground(lipgloss.Color("#34D399"))
	disabledStyle = cellStyle.Foreground(lipgloss.Color("#6B7280")).Strikethrough(true)
	rangeStyle    = cellStyle.Background(lipgloss.Color("#1E3A8A"))
	previewStyle  = cellStyle.Background(lipgloss.Color("#334155"))
	selectedStyle = cellStyle.Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#60A5FA"))
	focusStyle        = cellStyle.Bold(true).Reverse(true)
	legendStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	tableWrapperStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#475569")).
				Padding(0, 1)
)

// Options controls how panels are labelled.
type Options struct {
	Locale         string
	FirstDayOfWeek time.Weekday
}

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks converts month views into renderable blocks.
func BuildBlocks(views []calendar.MonthView, opts Options) ([]MonthBlock, error) {
	blocks := make([]MonthBlock, len(views))
	for i, view := range views {
		block, err := buildMonthBlock(view, opts)
		if err != nil {
			return nil, err
		}
		blocks[i] = block
	}
	return blocks, nil
}

// Layout places blocks side by side when they fit in width columns and
// stacks them otherwise.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	total := 0
	for _, b := range blocks {
		total += b.Width
	}
	total += panelGap * (len(blocks) - 1)
	if width > 0 && total <= width {
		columns := make([]string, 0, len(blocks)*2)
		for idx, block := range blocks {
			if idx > 0 {
				columns = append(columns, strings.Repeat(" ", panelGap))
			}
			columns = append(columns, padBlock(block))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	}
	lines := make([]string, 0, len(blocks)*(blocks[0].Height+1))
	for idx, block := range blocks {
		lines = append(lines, block.Lines...)
		if idx != len(blocks)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func padBlock(block MonthBlock) string {
	lines := make([]string, len(block.Lines))
	for i, line := range block.Lines {
		lines[i] = textwidth.PadRight(line, block.Width)
	}
	return strings.Join(lines, "\n")
}

func buildMonthBlock(view calendar.MonthView, opts Options) (MonthBlock, error) {
	if len(view.Weeks) == 0 {
		return MonthBlock{}, fmt.Errorf("%v %d has no weeks", view.Month, view.Year)
	}
	names := locale.WeekdayNames(opts.FirstDayOfWeek, opts.Locale)
	colWidth := cellWidth
	for _, n := range names {
		colWidth = max(colWidth, textwidth.StringWidth(n[0]))
	}
	columns := make([]table.Column, len(names))
	for i, n := range names {
		columns[i] = table.Column{
			Title: textwidth.Center(n[0], colWidth),
			Width: colWidth,
		}
	}

	rows := make([]table.Row, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		row := make(table.Row, len(week))
		for idx, day := range week {
			row[idx] = textwidth.Center(CellText(day), colWidth)
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(tableStyles())
	t.Blur()

	var tableView string
	if noColorMode {
		tableView = strings.TrimRight(t.View(), "\n")
	} else {
		// Styles are applied after the table is laid out so that escape
		// sequences do not count towards column widths.
		tableView = tableWrapperStyle.Render(applyStyles(strings.TrimRight(t.View(), "\n"), view))
	}

	title := textwidth.Center(view.Title, textwidth.StringWidth(tableView))
	if !noColorMode {
		title = titleStyle.Render(title)
	}
	lines := append([]string{title, ""}, strings.Split(tableView, "\n")...)

	width := 0
	for _, line := range lines {
		width = max(width, textwidth.StringWidth(line))
	}
	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}, nil
}

// CellText renders one grid cell. Overflow days are blank; markers make the
// state readable without color:
//
//	>15<  keyboard focus
//	[15]  selected day or range endpoint
//	·15·  inside the selected or previewed range
//	 15x  unavailable
func CellText(day calendar.Day) string {
	if !day.InMonth {
		return ""
	}
	left, right := " ", " "
	switch {
	case day.IsFocus:
		left, right = ">", "<"
	case day.IsSelected:
		left, right = "[", "]"
	case day.IsDisabled:
		right = "x"
	case day.InRange || day.InPreview:
		left, right = "·", "·"
	}
	return fmt.Sprintf("%s%2d%s", left, day.Date.Day(), right)
}

// dayStyle picks the style for a cell; ok is false for unstyled days.
func dayStyle(day calendar.Day) (lipgloss.Style, bool) {
	switch {
	case day.IsFocus:
		return focusStyle, true
	case day.IsSelected:
		return selectedStyle, true
	case day.IsDisabled:
		return disabledStyle, true
	case day.InRange:
		return rangeStyle, true
	case day.InPreview:
		return previewStyle, true
	case day.IsToday:
		return todayStyle, true
	}
	return cellStyle, false
}

// applyStyles colours each styled in-month cell. Cell text is unique within
// a month because it embeds the day number.
func applyStyles(output string, view calendar.MonthView) string {
	for _, week := range view.Weeks {
		for _, day := range week {
			if !day.InMonth {
				continue
			}
			style, ok := dayStyle(day)
			if !ok {
				continue
			}
			token := CellText(day)
			output = strings.Replace(output, token, style.Render(token), 1)
		}
	}
	return output
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	if noColorMode {
		styles.Header = lipgloss.NewStyle().Padding(0, cellPadding)
	} else {
		styles.Header = headerStyle.Padding(0, cellPadding)
	}
	styles.Selected = lipgloss.NewStyle()
	styles.Cell = lipgloss.NewStyle().Padding(0, cellPadding)
	return styles
}

// Legend explains the cell markers.
func Legend() string {
	legend := ">d< focus  [d] selected  ·d· in range  dx unavailable"
	if noColorMode {
		return legend
	}
	return legendStyle.Render(legend)
}
