// Package textwidth measures the monospace display width of month and
// weekday names so panels line up when they mix Latin and CJK text.
package textwidth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// wideFrom is the first code point (Hangul Jamo) that may render double width.
const wideFrom = 0x1100

// StringWidth returns the widest line of s in terminal columns, ignoring
// ANSI escape sequences.
func StringWidth(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		maxWidth = max(maxWidth, lineWidth(line))
	}
	return maxWidth
}

// PadRight appends spaces until s is width columns wide.
func PadRight(s string, width int) string {
	return s + padding(s, width)
}

// PadLeft prepends spaces until s is width columns wide.
func PadLeft(s string, width int) string {
	return padding(s, width) + s
}

// Center surrounds s with spaces so it is centred in width columns; any
// odd column goes to the right.
func Center(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}

func padding(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return ""
	}
	return strings.Repeat(" ", diff)
}

func lineWidth(s string) int {
	width := 0
	encoder := simplifiedchinese.GBK.NewEncoder()
	buf := make([]byte, 4)
	for _, r := range ansiRegexp.ReplaceAllString(s, "") {
		if r == '\r' {
			continue
		}
		if r < wideFrom {
			width++
			continue
		}
		// GBK encodes CJK ideographs and full-width forms in two bytes,
		// which matches their column width.
		n := utf8.EncodeRune(buf, r)
		out, err := encoder.Bytes(buf[:n])
		if err != nil {
			width += 2
			continue
		}
		width += len(out)
	}
	return width
}
