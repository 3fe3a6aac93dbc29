package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/polycal/polycal/internal/calendar"
)

// calinfo prints the full breakdown of a date in a chosen calendar, plus its
// conversion into every other registered calendar. Useful for eyeballing
// boundary behavior without starting the API server.

func main() {
	name := flag.String("calendar", calendar.GregorianName, "Calendar the date is expressed in")
	year := flag.Int("year", 2024, "Year (negative for years before the epoch)")
	month := flag.Int("month", 1, "Month (or week-cycle month)")
	day := flag.Int("day", 1, "Day of month")
	list := flag.Bool("list", false, "List registered calendars and exit")
	flag.Parse()

	if *list {
		fmt.Println("Registered calendars:")
		for _, n := range calendar.Names() {
			cal, _ := calendar.Lookup(n)
			fmt.Printf("  %-12s cycle=%-6s cldr=%s\n", n, cal.Cycle(), cal.CldrCalendarType())
		}
		return
	}

	cal, ok := calendar.Lookup(*name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown calendar %q (use -list to see the registered ones)\n", *name)
		os.Exit(1)
	}

	if err := cal.ValidDate(*year, *month, *day); err != nil {
		fmt.Fprintf(os.Stderr, "invalid date: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== %s %d-%d-%d ===\n\n", cal.Name(), *year, *month, *day)

	era, eraYear := cal.Era(*year)
	dow, _ := cal.DayOfWeek(*year, *month, *day)
	doy, _ := cal.DayOfYear(*year, *month, *day)
	days, _ := cal.ToISODays(*year, *month, *day)
	dim, _ := cal.DaysInMonth(*year, *month)

	fmt.Printf("  Era:            %d (year %d)\n", era, eraYear)
	fmt.Printf("  Day of week:    %s\n", dow)
	fmt.Printf("  Day of year:    %d of %d\n", doy, cal.DaysInYear(*year))
	fmt.Printf("  Days in month:  %d\n", dim)
	fmt.Printf("  Leap year:      %v\n", cal.LeapYear(*year))
	fmt.Printf("  Day count:      %d\n", days)

	if q, err := cal.QuarterOfYear(*year, *month, *day); err == nil {
		fmt.Printf("  Quarter:        Q%d\n", q)
	}
	if wk, err := cal.WeekOfYear(*year, *month, *day); err == nil {
		fmt.Printf("  Week:           %d-W%02d\n", wk.Year, wk.Week)
	}
	if iso, err := cal.ISOWeekOfYear(*year, *month, *day); err == nil {
		fmt.Printf("  ISO week:       %d-W%02d\n", iso.Year, iso.Week)
	}

	fmt.Println()
	fmt.Println("Conversions:")
	for _, n := range calendar.Names() {
		if n == cal.Name() {
			continue
		}
		other, _ := calendar.Lookup(n)
		conv := other.FromISODays(days)
		fmt.Printf("  %-12s %s\n", n+":", formatDate(conv))
	}
}

func formatDate(d calendar.Date) string {
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}
