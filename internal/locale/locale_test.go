package locale

import (
	"testing"
	"time"

	"github.com/lululau/datepick/internal/dates"
)

func TestLocaleMatching(t *testing.T) {
	tests := []struct {
		locale    string
		june      string
		weekStart time.Weekday
	}{
		{"en-US", "June", time.Sunday},
		{"", "June", time.Sunday},
		{"not a locale", "June", time.Sunday},
		{"en-GB", "June", time.Monday},
		{"zh-CN", "六月", time.Monday},
		{"fr-CA", "juin", time.Monday},
		{"de", "Juni", time.Monday},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := MonthNames(tt.locale)[time.June-1]; got != tt.june {
				t.Fatalf("MonthNames[June] = %q, want %q", got, tt.june)
			}
			if got := FirstDayOfWeek(tt.locale); got != tt.weekStart {
				t.Fatalf("FirstDayOfWeek = %v, want %v", got, tt.weekStart)
			}
		})
	}
}

func TestWeekdayNamesRotate(t *testing.T) {
	names := WeekdayNames(time.Monday, "en-US")
	if names[0][1] != "Monday" || names[6][1] != "Sunday" {
		t.Fatalf("unexpected rotation: %v", names)
	}
	names = WeekdayNames(time.Sunday, "zh")
	if names[0][0] != "日" || names[0][1] != "星期日" {
		t.Fatalf("unexpected Chinese names %v", names[0])
	}
	for _, tt := range []struct {
		locale      string
		short, long string
	}{
		{"en-GB", "Mo", "Monday"},
		{"fr", "lu", "lundi"},
		{"de", "Mo", "Montag"},
	} {
		if got := WeekdayNames(time.Monday, tt.locale)[0]; got != [2]string{tt.short, tt.long} {
			t.Errorf("%s: Monday names = %v", tt.locale, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		opts FormatOptions
		want string
	}{
		{FormatOptions{Locale: "en-US"}, "06/05/2024"},
		{FormatOptions{Locale: "de-DE"}, "2024-06-05"},
		{FormatOptions{Locale: "en-US", Style: Long}, "June 5, 2024"},
		{FormatOptions{Locale: "fr", Style: Long}, "5 juin 2024"},
		{FormatOptions{Locale: "de", Style: Long}, "5. Juni 2024"},
		{FormatOptions{Locale: "zh", Style: Long}, "2024年6月5日"},
		{FormatOptions{Locale: "zh", Style: MonthYear}, "2024 年 6 月"},
		{FormatOptions{Locale: "en", Style: MonthYear}, "June 2024"},
	}
	for _, tt := range tests {
		if got := FormatDate(d, tt.opts); got != tt.want {
			t.Errorf("FormatDate(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestNumericFormatParsesBack(t *testing.T) {
	d := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	for _, loc := range []string{"en-US", "en-GB", "zh", "fr", "de"} {
		text := Formatter(loc)(d)
		got, err := dates.ParseDateString(text, time.UTC)
		if err != nil {
			t.Fatalf("%s: %q does not parse: %v", loc, text, err)
		}
		if !got.Equal(d) {
			t.Fatalf("%s: %q parsed as %v", loc, text, got)
		}
	}
}
