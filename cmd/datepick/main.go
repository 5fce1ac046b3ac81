package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/lululau/datepick/internal/availability"
	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/render"
	"github.com/lululau/datepick/internal/tui"
)

// staleAfter is how old the default availability file may get before a
// reminder is printed.
const staleAfter = 180 * 24 * time.Hour

var (
	rangeMode        = flag.Bool("r", false, "pick a start and end date")
	rangeModeLong    = flag.Bool("range", false, "pick a start and end date")
	minNights        = flag.Int("m", 0, "days that must lie between start and end")
	minNightsLong    = flag.Int("min-nights", 0, "days that must lie between start and end")
	start            = flag.String("s", "", "date to focus first (YYYY-MM-DD)")
	startLong        = flag.String("start", "", "date to focus first (YYYY-MM-DD)")
	weekStart        = flag.Int("w", -1, "first day of the week, 0 (Sunday) to 6; default from locale")
	weekStartLong    = flag.Int("week-start", -1, "first day of the week, 0 (Sunday) to 6; default from locale")
	localeName       = flag.String("l", "", "locale for names and formats; default from $LANG")
	localeNameLong   = flag.String("locale", "", "locale for names and formats; default from $LANG")
	availabilityFile = flag.String("a", "", "availability JSON file")
	availabilityLong = flag.String("availability", "", "availability JSON file")
	plain            = flag.Bool("n", false, "render once and exit (non-interactive)")
	noColor          = flag.Bool("N", false, "disable all color output")
	noColorLong      = flag.Bool("no-color", false, "disable all color output")
	verbose          = flag.Bool("v", false, "log to stderr as JSON")
	verboseLong      = flag.Bool("verbose", false, "log to stderr as JSON")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), `
  no options     pick a single date
  -r             pick a date range
  -r -m 2        pick a range with at least 2 days between the endpoints
  -n -s 2024-06-10  print three months around a date and exit

options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noColor || *noColorLong {
		render.SetNoColor(true)
		tui.SetNoColor(true)
	}

	ctx := context.Background()
	if *verbose || *verboseLong {
		ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	if err := run(ctx); err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	set, err := loadAvailability(ctx)
	if err != nil {
		return err
	}
	if set != nil {
		cfg.IsDayBlocked = set.IsDayBlocked
		cfg.IsBlockedBetween = set.IsBlockedBetween
		cfg.MinimumNights = max(cfg.MinimumNights, set.MinimumNights())
	}
	calOpts := []calendar.Option{calendar.WithLogger(ctxlog.Logger(ctx))}

	if *plain {
		m, err := calendar.New(cfg, calOpts...)
		if err != nil {
			return err
		}
		return render.RunPlain(render.PlainOptions{Machine: m})
	}

	value, err := tui.Run(ctx, tui.Options{
		Config:          cfg,
		CalendarOptions: calOpts,
	})
	if err != nil {
		return err
	}
	if !value.IsEmpty() {
		fmt.Println(value.String())
	}
	return nil
}

func configFromFlags() (calendar.Config, error) {
	cfg := calendar.Config{
		Range:         *rangeMode || *rangeModeLong,
		MinimumNights: max(*minNights, *minNightsLong),
		StartDate:     firstNonEmpty(*start, *startLong),
		Locale:        firstNonEmpty(*localeName, *localeNameLong, localeFromEnv()),
	}
	ws := *weekStart
	if ws < 0 {
		ws = *weekStartLong
	}
	if ws >= 0 {
		wd := time.Weekday(ws)
		cfg.FirstDayOfWeek = &wd
	}
	return cfg, cfg.Validate()
}

// loadAvailability reads the file named on the command line or, failing
// that, the default file if one exists.
func loadAvailability(ctx context.Context) (*availability.Set, error) {
	if path := firstNonEmpty(*availabilityFile, *availabilityLong); path != "" {
		return availability.LoadFromFile(ctx, path)
	}
	path, err := availability.DefaultPath()
	if err != nil {
		ctxlog.Logger(ctx).Debug("no default availability path", "error", err)
		return nil, nil
	}
	set, err := availability.LoadFromFile(ctx, path)
	if err != nil {
		if errors.Is(err, availability.ErrNotFound) {
			return nil, nil
		}
		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", path, err)
		return nil, nil
	}
	if fresh, err := availability.IsFresh(path, staleAfter, time.Now()); err == nil && !fresh {
		fmt.Fprintf(os.Stderr, "warning: %s has not been updated for over 6 months\n", path)
	}
	return set, nil
}

// localeFromEnv turns a POSIX locale such as en_GB.UTF-8 into a BCP 47 tag.
func localeFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
