// Package locale supplies month and weekday names and date formatting for
// the handful of locales the picker ships with.
package locale

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Style selects how FormatDate renders a date.
type Style int

const (
	// Numeric renders a date in a form accepted back by the text fields:
	// MM/DD/YYYY for US English, YYYY-MM-DD everywhere else.
	Numeric Style = iota
	// Long spells out the month name.
	Long
	// MonthYear renders only the month and year, for panel titles.
	MonthYear
)

// FormatOptions controls FormatDate.
type FormatOptions struct {
	Locale string
	Style  Style
}

type names struct {
	tag       monday.Locale
	weekStart time.Weekday
	numeric   string
	// long and monthYear are Go layouts whose month names monday translates.
	long      string
	monthYear string
	short     func(long string) string
}

// firstRunes abbreviates a weekday to its leading two letters.
func firstRunes(long string) string {
	r := []rune(long)
	return string(r[:min(2, len(r))])
}

// lastRune keeps the numeral of a Chinese weekday such as 星期一.
func lastRune(long string) string {
	r := []rune(long)
	if len(r) == 0 {
		return ""
	}
	return string(r[len(r)-1:])
}

var table = []*names{
	{
		tag:       monday.LocaleEnUS,
		weekStart: time.Sunday,
		numeric:   "01/02/2006",
		long:      "January 2, 2006",
		monthYear: "January 2006",
		short:     firstRunes,
	},
	{
		tag:       monday.LocaleEnGB,
		weekStart: time.Monday,
		numeric:   "2006-01-02",
		long:      "2 January 2006",
		monthYear: "January 2006",
		short:     firstRunes,
	},
	{
		tag:       monday.LocaleZhCN,
		weekStart: time.Monday,
		numeric:   "2006-01-02",
		long:      "2006年1月2日",
		monthYear: "2006 年 1 月",
		short:     lastRune,
	},
	{
		tag:       monday.LocaleFrFR,
		weekStart: time.Monday,
		numeric:   "2006-01-02",
		long:      "2 January 2006",
		monthYear: "January 2006",
		short:     firstRunes,
	},
	{
		tag:       monday.LocaleDeDE,
		weekStart: time.Monday,
		numeric:   "2006-01-02",
		long:      "2. January 2006",
		monthYear: "January 2006",
		short:     firstRunes,
	},
}

// referenceSunday anchors weekday name lookups.
var referenceSunday = time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)

// supported is index aligned with table; the first entry is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.SimplifiedChinese,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

func lookup(locale string) *names {
	_, idx := language.MatchStrings(matcher, locale)
	if idx < 0 || idx >= len(table) {
		idx = 0
	}
	return table[idx]
}

// Tag returns the supported language tag that best matches locale.
func Tag(locale string) language.Tag {
	_, idx := language.MatchStrings(matcher, locale)
	if idx < 0 || idx >= len(supported) {
		idx = 0
	}
	return supported[idx]
}

// MonthNames returns the twelve month names, January first.
func MonthNames(locale string) [12]string {
	n := lookup(locale)
	var out [12]string
	for i := range out {
		out[i] = monday.Format(time.Date(2023, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC), "January", n.tag)
	}
	return out
}

// WeekdayNames returns short and long weekday names starting at
// firstDayOfWeek (0 = Sunday).
func WeekdayNames(firstDayOfWeek time.Weekday, locale string) [7][2]string {
	n := lookup(locale)
	var out [7][2]string
	for i := range out {
		d := referenceSunday.AddDate(0, 0, (int(firstDayOfWeek)+i)%7)
		long := monday.Format(d, "Monday", n.tag)
		out[i] = [2]string{n.short(long), long}
	}
	return out
}

// FirstDayOfWeek returns the customary first day of the week for locale.
func FirstDayOfWeek(locale string) time.Weekday {
	return lookup(locale).weekStart
}

// FormatDate renders t according to opts.
func FormatDate(t time.Time, opts FormatOptions) string {
	n := lookup(opts.Locale)
	switch opts.Style {
	case Long:
		return monday.Format(t, n.long, n.tag)
	case MonthYear:
		return monday.Format(t, n.monthYear, n.tag)
	default:
		return t.Format(n.numeric)
	}
}

// MonthTitle is shorthand for FormatDate with the MonthYear style.
func MonthTitle(t time.Time, locale string) string {
	return FormatDate(t, FormatOptions{Locale: locale, Style: MonthYear})
}

// Formatter returns a numeric date formatter bound to locale.
func Formatter(locale string) func(time.Time) string {
	return func(t time.Time) string {
		return FormatDate(t, FormatOptions{Locale: locale})
	}
}
