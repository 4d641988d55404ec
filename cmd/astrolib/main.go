// Command astrolib is a terminal almanac: it shows the civil/sidereal
// clock chain and the sky position of a bright star for a chosen
// observing site.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/sigfpe8/astrolib/internal/caltime"
	"github.com/sigfpe8/astrolib/internal/catalog"
	"github.com/sigfpe8/astrolib/internal/coords"
	"github.com/sigfpe8/astrolib/internal/locations"
	"github.com/sigfpe8/astrolib/internal/logging"
	"github.com/sigfpe8/astrolib/internal/ui"
	"github.com/sigfpe8/astrolib/internal/version"
)

func main() {
	siteName := flag.String("site", "Greenwich", "Observing site from the built-in table")
	starName := flag.String("star", "Sirius", "Target star from the built-in catalog")
	dateStr := flag.String("date", "", "UT date as YYYY-MM-DD (default: now)")
	timeStr := flag.String("time", "", "UT time as HH:MM:SS (default: now)")
	tzStr := flag.String("tz", "", "Override the site timezone, as ±HH:MM (default: the site's own)")
	summaryMode := flag.Bool("summary", false, "Print a plain-text summary instead of the TUI")
	epochName := flag.String("epoch", "J2000", "Epoch constants: J2000 or B1950")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("astrolib", version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel)).WithPrefix("astrolib")

	site, ok := locations.Find(*siteName)
	if !ok {
		logger.Error("Unknown site %q; known sites:", *siteName)
		for _, loc := range locations.Table {
			fmt.Fprintf(os.Stderr, "  %s (%s)\n", loc.Name, loc.Country)
		}
		os.Exit(1)
	}

	star, ok := catalog.Find(*starName)
	if !ok {
		logger.Error("Unknown star %q; known stars:", *starName)
		for _, s := range catalog.Stars {
			fmt.Fprintf(os.Stderr, "  %s\n", s.Name)
		}
		os.Exit(1)
	}

	if *tzStr != "" {
		zone, err := parseZone(*tzStr)
		if err != nil {
			logger.Error("Bad timezone: %v", err)
			os.Exit(1)
		}
		site.Zone = zone
	}

	ut, err := instant(*dateStr, *timeStr)
	if err != nil {
		logger.Error("Bad date/time: %v", err)
		os.Exit(1)
	}

	epoch := coords.J2000
	if *epochName == "B1950" {
		epoch = coords.B1950
	}

	logger.Debug("Computing almanac for %s / %s at %v", site.Name, star.Name, ut)

	// Headless when asked for, or when stdout is not a terminal.
	if *summaryMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.WriteSummary(os.Stdout, ui.BuildReport(site, star, ut, epoch))
		return
	}

	model := ui.New(ut, site, star, epoch)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// instant builds the universal DateTime from the -date/-time flags,
// defaulting missing parts to the current system clock.
func instant(dateStr, timeStr string) (caltime.DateTime, error) {
	now := time.Now().UTC()
	dt := caltime.DateTime{
		Date: caltime.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()},
		Time: caltime.Time{Hour: now.Hour(), Min: now.Minute(), Sec: now.Second()},
	}

	if dateStr != "" {
		var d caltime.Date
		if _, err := fmt.Sscanf(dateStr, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil {
			return caltime.DateTime{}, fmt.Errorf("date %q: %w", dateStr, err)
		}
		dt.Date = d
	}

	if timeStr != "" {
		var t caltime.Time
		if _, err := fmt.Sscanf(timeStr, "%d:%d:%d", &t.Hour, &t.Min, &t.Sec); err != nil {
			return caltime.DateTime{}, fmt.Errorf("time %q: %w", timeStr, err)
		}
		dt.Time = t
	}

	return dt, nil
}

// parseZone parses a -tz value like "+05:30" or "-8:00".
func parseZone(s string) (caltime.Timezone, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return caltime.Timezone{}, fmt.Errorf("timezone %q: %w", s, err)
	}
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		h, m = -abs(h), -m
	}
	zone, err := caltime.NewTimezone(h, m, false)
	if err != nil {
		return caltime.Timezone{}, fmt.Errorf("timezone %q: %w", s, err)
	}
	return zone, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
