package calendar

import (
	"fmt"
	"slices"
)

// Cycle is the addressing scheme of a variant: dates are either
// (year, month, day-of-month) or (year, week-month, day-of-week-month).
type Cycle string

// Supported cycles.
const (
	CycleMonth Cycle = "month"
	CycleWeek  Cycle = "week"
)

// LeapRule selects the leap-year predicate of a month-cycle variant.
type LeapRule string

// Supported leap rules.
const (
	// LeapGregorian marks years divisible by 4 as leap unless divisible by
	// 100, with years divisible by 400 leap again.
	LeapGregorian LeapRule = "gregorian"
	// LeapJulian marks every year divisible by 4 as leap, with no century
	// exception. Calendars under this rule follow the historical convention
	// of having no year zero.
	LeapJulian LeapRule = "julian"
	// LeapNone disables leap days entirely.
	LeapNone LeapRule = "none"
)

// Options carries factory options as a plain key/value map so definitions can
// travel through JSON unchanged. The recognized key set is closed and
// cycle-specific; New rejects anything else with a ValidationError naming
// every offending key.
type Options map[string]any

// Option keys recognized by New.
const (
	// OptFirstDay is the weekday a week starts on, 1=Monday..7=Sunday.
	OptFirstDay = "first_day"
	// OptMinDays is the minimum number of days of a partial first week that
	// must fall inside a year for it to count as that year's week 1. On
	// week-cycle calendars it must be 4, the one value whose year rule
	// assigns every week to exactly one year.
	OptMinDays = "min_days"
	// OptEpochOffset shifts the variant's day count relative to the shared
	// reference epoch (signed days).
	OptEpochOffset = "epoch_offset"
	// OptLeapRule selects the leap-year predicate: "gregorian", "julian" or
	// "none". Month cycle only.
	OptLeapRule = "leap_rule"
	// OptMonthDays overrides the per-month day counts of a common year.
	// Month cycle only.
	OptMonthDays = "month_days"
	// OptLeapMonth is the 1-based month that receives the leap day.
	// Month cycle only.
	OptLeapMonth = "leap_month"
	// OptWeeksInMonth is the weeks-per-month layout of a week-cycle variant:
	// either 3 entries repeated per quarter (e.g. [4,4,5]) or 12 entries for
	// the whole year. Entries must sum to 52 weeks per year; a long year's
	// extra week extends the final month. Week cycle only.
	OptWeeksInMonth = "weeks_in_month"
	// OptLocale is an informational tag recording which locale the first-day
	// and min-days values were resolved from. The core never consults locale
	// data itself.
	OptLocale = "locale"
)

var (
	monthCycleKeys = []string{OptFirstDay, OptMinDays, OptEpochOffset, OptLeapRule, OptMonthDays, OptLeapMonth, OptLocale}
	weekCycleKeys  = []string{OptFirstDay, OptMinDays, OptEpochOffset, OptWeeksInMonth, OptLocale}
)

// standardMonthDays is the common-year month pattern shared by the Gregorian
// and Julian calendars.
var standardMonthDays = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// config is the compiled, immutable form of a variant's options. Once built
// it is never mutated; all operations are pure functions of a config and
// their numeric arguments.
type config struct {
	name  string
	cycle Cycle

	firstDay    int // 0 on month cycle means weeks are not modeled
	minDays     int
	epochOffset int64
	locale      string

	// month cycle
	leapRule  LeapRule
	monthDays []int
	leapMonth int

	// week cycle
	weeksInMonth []int

	// derived
	daysBefore  []int // common-year prefix sums of monthDays
	yearDays    int   // common-year length in days
	weeksBefore []int // prefix sums of weeksInMonth
	gregorian   bool  // plain proleptic Gregorian configuration
	hasYearZero bool
}

// hasWeeks reports whether the variant models weeks at all.
func (c *config) hasWeeks() bool {
	return c.firstDay != 0
}

func (c *config) months() int {
	if c.cycle == CycleWeek {
		return len(c.weeksInMonth)
	}
	return len(c.monthDays)
}

// arithYear maps a calendar year to the signed year used by the day-count
// formulas. For calendars without a year zero, year -1 is arithmetic year 0.
func (c *config) arithYear(year int) int64 {
	if !c.hasYearZero && year < 0 {
		return int64(year) + 1
	}
	return int64(year)
}

// displayYear is the inverse of arithYear.
func (c *config) displayYear(ay int64) int {
	if !c.hasYearZero && ay <= 0 {
		return int(ay) - 1
	}
	return int(ay)
}

func (c *config) equal(o *config) bool {
	return c.name == o.name &&
		c.cycle == o.cycle &&
		c.firstDay == o.firstDay &&
		c.minDays == o.minDays &&
		c.epochOffset == o.epochOffset &&
		c.locale == o.locale &&
		c.leapRule == o.leapRule &&
		c.leapMonth == o.leapMonth &&
		slices.Equal(c.monthDays, o.monthDays) &&
		slices.Equal(c.weeksInMonth, o.weeksInMonth)
}

// =============================================================================
// Option parsing
// =============================================================================

// optionReader collects issues while pulling typed values out of an Options
// map, so a ValidationError can report every problem at once.
type optionReader struct {
	opts   Options
	issues []Issue
}

func (r *optionReader) bad(key string, value any, reason string) {
	r.issues = append(r.issues, Issue{Key: key, Value: value, Reason: reason})
}

// intAt returns the integer at key, or def when absent. JSON decoding hands
// numbers over as float64, so integral floats are accepted too.
func (r *optionReader) intAt(key string, def int) int {
	v, ok := r.opts[key]
	if !ok {
		return def
	}
	n, ok := asInt(v)
	if !ok {
		r.bad(key, v, "must be an integer")
		return def
	}
	return n
}

func (r *optionReader) stringAt(key, def string) string {
	v, ok := r.opts[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.bad(key, v, "must be a string")
		return def
	}
	return s
}

func (r *optionReader) intSliceAt(key string, def []int) []int {
	v, ok := r.opts[key]
	if !ok {
		return def
	}
	out, ok := asIntSlice(v)
	if !ok {
		r.bad(key, v, "must be a list of integers")
		return def
	}
	return out
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asIntSlice(v any) ([]int, bool) {
	switch s := v.(type) {
	case []int:
		return slices.Clone(s), true
	case []any:
		out := make([]int, len(s))
		for i, e := range s {
			n, ok := asInt(e)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	}
	return nil, false
}

// rejectUnknown records an issue for every option key outside the allowed
// set.
func (r *optionReader) rejectUnknown(allowed []string) {
	var unknown []string
	for key := range r.opts {
		if !slices.Contains(allowed, key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown) // deterministic error output
	for _, key := range unknown {
		r.bad(key, nil, "unknown option")
	}
}

// =============================================================================
// Compilation
// =============================================================================

// compileConfig validates options against the cycle's closed key set and
// builds the immutable config a variant runs on.
func compileConfig(name string, cycle Cycle, opts Options) (*config, error) {
	r := &optionReader{opts: opts}

	cfg := &config{name: name, cycle: cycle}
	if name == "" {
		r.bad("name", nil, "must not be empty")
	}

	switch cycle {
	case CycleMonth:
		compileMonthOptions(cfg, r)
	case CycleWeek:
		compileWeekOptions(cfg, r)
	default:
		r.bad("cycle", string(cycle), `must be "month" or "week"`)
	}

	if len(r.issues) > 0 {
		return nil, &ValidationError{Calendar: name, Issues: r.issues}
	}
	return cfg, nil
}

func compileMonthOptions(cfg *config, r *optionReader) {
	r.rejectUnknown(monthCycleKeys)

	cfg.firstDay = r.intAt(OptFirstDay, 0)
	cfg.minDays = r.intAt(OptMinDays, 0)
	cfg.epochOffset = int64(r.intAt(OptEpochOffset, 0))
	cfg.locale = r.stringAt(OptLocale, "")

	// Week support is opt-in for month calendars: both parameters or neither.
	switch {
	case cfg.firstDay == 0 && cfg.minDays == 0:
		// weeks not modeled
	case cfg.firstDay == 0:
		r.bad(OptFirstDay, nil, "required when min_days is set")
		checkDayRange(r, OptMinDays, cfg.minDays)
	case cfg.minDays == 0:
		r.bad(OptMinDays, nil, "required when first_day is set")
		checkDayRange(r, OptFirstDay, cfg.firstDay)
	default:
		checkDayRange(r, OptFirstDay, cfg.firstDay)
		checkDayRange(r, OptMinDays, cfg.minDays)
	}

	cfg.leapRule = LeapRule(r.stringAt(OptLeapRule, string(LeapGregorian)))
	switch cfg.leapRule {
	case LeapGregorian, LeapJulian, LeapNone:
	default:
		r.bad(OptLeapRule, string(cfg.leapRule), `must be "gregorian", "julian" or "none"`)
		cfg.leapRule = LeapGregorian
	}
	cfg.hasYearZero = cfg.leapRule != LeapJulian

	cfg.monthDays = r.intSliceAt(OptMonthDays, standardMonthDays)
	if len(cfg.monthDays) < 1 || len(cfg.monthDays) > 13 {
		r.bad(OptMonthDays, len(cfg.monthDays), "must have between 1 and 13 months")
		cfg.monthDays = standardMonthDays
	}
	for _, n := range cfg.monthDays {
		if n < 1 {
			r.bad(OptMonthDays, n, "every month needs at least one day")
			cfg.monthDays = standardMonthDays
			break
		}
	}

	defaultLeapMonth := 2
	if len(cfg.monthDays) < 2 {
		defaultLeapMonth = 1
	}
	cfg.leapMonth = r.intAt(OptLeapMonth, defaultLeapMonth)
	if cfg.leapMonth < 1 || cfg.leapMonth > len(cfg.monthDays) {
		r.bad(OptLeapMonth, cfg.leapMonth, fmt.Sprintf("must be between 1 and %d", len(cfg.monthDays)))
		cfg.leapMonth = defaultLeapMonth
	}

	cfg.daysBefore = prefixSums(cfg.monthDays)
	cfg.yearDays = cfg.daysBefore[len(cfg.daysBefore)-1]

	cfg.gregorian = cfg.leapRule == LeapGregorian &&
		cfg.epochOffset == 0 &&
		slices.Equal(cfg.monthDays, standardMonthDays) &&
		cfg.leapMonth == 2
}

func compileWeekOptions(cfg *config, r *optionReader) {
	r.rejectUnknown(weekCycleKeys)

	// ISO-8601 parameters unless the configuration says otherwise.
	cfg.firstDay = r.intAt(OptFirstDay, int(Monday))
	cfg.minDays = r.intAt(OptMinDays, 4)
	checkDayRange(r, OptFirstDay, cfg.firstDay)
	checkDayRange(r, OptMinDays, cfg.minDays)

	// Weeks are the addressing unit here, so the year rule must hand every
	// week to exactly one year. The last-week anchor of one year and the
	// first-week anchor of the next sit 2*min_days-1 days apart; that gap is
	// a single week for every weekday alignment only when min_days is 4.
	// Any other value lets consecutive years claim the same week (min_days
	// below 4) or leave days owned by neither year (above 4), and day-count
	// conversion stops being invertible.
	if cfg.minDays >= 1 && cfg.minDays <= 7 && cfg.minDays != 4 {
		r.bad(OptMinDays, cfg.minDays, "must be 4 on week-cycle calendars so every week belongs to exactly one year")
	}
	cfg.epochOffset = int64(r.intAt(OptEpochOffset, 0))
	cfg.locale = r.stringAt(OptLocale, "")
	cfg.hasYearZero = true

	layout := r.intSliceAt(OptWeeksInMonth, nil)
	switch len(layout) {
	case 0:
		r.bad(OptWeeksInMonth, nil, "required for week-cycle calendars")
		return
	case 3:
		// quarter layout, repeated four times
		layout = slices.Concat(layout, layout, layout, layout)
	case 12:
	default:
		r.bad(OptWeeksInMonth, len(layout), "must have 3 entries (per quarter) or 12 (per year)")
		return
	}

	total := 0
	for _, n := range layout {
		if n < 1 {
			r.bad(OptWeeksInMonth, n, "every month needs at least one week")
			return
		}
		total += n
	}
	// Ordinary years carry exactly 52 weeks; the long year's 53rd week
	// extends the final month, so any other total can never be consistent
	// with the computed week count of some year.
	if total != 52 {
		r.bad(OptWeeksInMonth, total, "layout must sum to 52 weeks per year")
		return
	}

	cfg.weeksInMonth = layout
	cfg.weeksBefore = prefixSums(layout)
}

func checkDayRange(r *optionReader, key string, v int) {
	if v < 1 || v > 7 {
		r.bad(key, v, "must be between 1 and 7")
	}
}

// prefixSums returns sums[i] = xs[0] + ... + xs[i-1], with the grand total at
// the end.
func prefixSums(xs []int) []int {
	sums := make([]int, len(xs)+1)
	for i, n := range xs {
		sums[i+1] = sums[i] + n
	}
	return sums
}
