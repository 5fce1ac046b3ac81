package dates

import "time"

// Week is one grid row of exactly seven consecutive days.
type Week [7]time.Time

// isoWeekday maps time.Weekday onto Monday=1..Sunday=7.
func isoWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

// CalendarGrid returns the weeks covering t's month. The first row starts on
// firstDayOfWeek (0 = Sunday) and both ends are padded with days of the
// adjacent months so that every row is complete.
func CalendarGrid(t time.Time, firstDayOfWeek time.Weekday) []Week {
	fdw := isoWeekday(time.Weekday((int(firstDayOfWeek)%7 + 7) % 7))
	first := FirstOfMonth(t)
	last := LastOfMonth(t)
	lead := (7 - fdw + isoWeekday(first.Weekday())) % 7
	trail := (7 - isoWeekday(last.Weekday()) + fdw - 1) % 7

	total := lead + last.Day() + trail
	weeks := make([]Week, 0, total/7)
	cursor := SubDays(first, lead)
	for i := 0; i < total/7; i++ {
		var w Week
		for d := range w {
			w[d] = cursor
			cursor = AddDays(cursor, 1)
		}
		weeks = append(weeks, w)
	}
	return weeks
}
