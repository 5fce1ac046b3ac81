package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/datepick/internal/calendar"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer  io.Writer
	Machine *calendar.Machine
	Width   int
}

// RunPlain renders the picker's three panels once, followed by the legend
// and the current value.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Machine == nil {
		return fmt.Errorf("render: no calendar to draw")
	}
	output, err := Panels(opts.Machine, opts.Width)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(opts.Writer, "\n"+Legend()); err != nil {
		return err
	}
	if v := opts.Machine.Value(); !v.IsEmpty() {
		_, err = fmt.Fprintln(opts.Writer, v.String())
	}
	return err
}

// Panels renders the previous, current and next months of m laid out for
// width columns; a zero width is detected from the terminal.
func Panels(m *calendar.Machine, width int) (string, error) {
	panels := m.Panels()
	blocks, err := BuildBlocks(panels[:], Options{
		Locale:         m.Locale(),
		FirstDayOfWeek: m.FirstDayOfWeek(),
	})
	if err != nil {
		return "", err
	}
	if width == 0 {
		width = DetectWidth()
	}
	return Layout(blocks, width), nil
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}
