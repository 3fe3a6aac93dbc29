package calendar

// weekCalendar is the generic week-cycle variant: a date is (year, month,
// day-of-month) where every month is a whole number of weeks per the
// configured layout. Year boundaries come from the configurable week rule
// anchored on the proleptic Gregorian January, so a year holds exactly 52
// weeks (364 days) or, in long years, 53 (371 days) with the extra week
// extending the final month. The ISO-8601 week calendar built-in is a plain
// configuration of this type.
type weekCalendar struct {
	cfg *config
}

func newWeekCalendar(cfg *config) *weekCalendar {
	return &weekCalendar{cfg: cfg}
}

func (c *weekCalendar) Name() string { return c.cfg.name }
func (c *weekCalendar) Cycle() Cycle { return CycleWeek }

func (c *weekCalendar) CldrCalendarType() string { return cldrTypeOther }

// yearStart is the iso-day the week-year begins on, before the epoch offset.
func (c *weekCalendar) yearStart(year int) int64 {
	return builtinGregorian.firstWeekStarts(year, c.cfg.firstDay, c.cfg.minDays)
}

// =============================================================================
// Structure queries
// =============================================================================

func (c *weekCalendar) MonthsInYear(int) int { return c.cfg.months() }

func (c *weekCalendar) WeeksInYear(year int) (int, error) {
	return builtinGregorian.weeksInYear(year, c.cfg.firstDay, c.cfg.minDays), nil
}

func (c *weekCalendar) LongYear(year int) (bool, error) {
	n, _ := c.WeeksInYear(year)
	return n == 53, nil
}

// LeapYear on a week calendar means a long year: the 53-week, 371-day kind.
func (c *weekCalendar) LeapYear(year int) bool {
	long, _ := c.LongYear(year)
	return long
}

func (c *weekCalendar) DaysInYear(year int) int {
	n, _ := c.WeeksInYear(year)
	return n * 7
}

func (c *weekCalendar) weeksInMonth(year, month int) int {
	n := c.cfg.weeksInMonth[month-1]
	if month == c.cfg.months() && c.LeapYear(year) {
		n++
	}
	return n
}

func (c *weekCalendar) DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > c.cfg.months() {
		return 0, &DomainError{Calendar: c.cfg.name, Field: "month", Value: month, Min: 1, Max: c.cfg.months()}
	}
	return c.weeksInMonth(year, month) * 7, nil
}

func (c *weekCalendar) ValidDate(year, month, day int) error {
	if month < 1 || month > c.cfg.months() {
		return &DomainError{Calendar: c.cfg.name, Field: "month", Value: month, Min: 1, Max: c.cfg.months()}
	}
	if dim := c.weeksInMonth(year, month) * 7; day < 1 || day > dim {
		return &DomainError{Calendar: c.cfg.name, Field: "day", Value: day, Min: 1, Max: dim}
	}
	return nil
}

func (c *weekCalendar) Era(year int) (int, int) {
	return eraOf(c.cfg, year)
}

// =============================================================================
// Day-count conversion
// =============================================================================

func (c *weekCalendar) isoDays(year, month, day int) int64 {
	return c.yearStart(year) + int64(c.cfg.weeksBefore[month-1])*7 + int64(day) - 1 + c.cfg.epochOffset
}

func (c *weekCalendar) ToISODays(year, month, day int) (int64, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return 0, err
	}
	return c.isoDays(year, month, day), nil
}

func (c *weekCalendar) FromISODays(days int64) Date {
	d := days - c.cfg.epochOffset

	// Bucket the day into its week-year, which can differ from the Gregorian
	// year at both boundaries.
	year := builtinGregorian.FromISODays(d).Year
	if d < c.yearStart(year) {
		year--
	} else if d > c.lastDay(year) {
		year++
	}

	off := int(d - c.yearStart(year)) // 0-based day of year
	month := 1
	for off >= (c.cfg.weeksBefore[month-1]+c.weeksInMonth(year, month))*7 {
		month++
	}
	return Date{Year: year, Month: month, Day: off - c.cfg.weeksBefore[month-1]*7 + 1}
}

// lastDay is the iso-day the week-year ends on, before the epoch offset.
func (c *weekCalendar) lastDay(year int) int64 {
	return c.yearStart(year) + int64(c.DaysInYear(year)) - 1
}

// =============================================================================
// Derived queries
// =============================================================================

func (c *weekCalendar) DayOfWeek(year, month, day int) (Weekday, error) {
	d, err := c.ToISODays(year, month, day)
	if err != nil {
		return 0, err
	}
	return weekdayOf(d), nil
}

func (c *weekCalendar) DayOfYear(year, month, day int) (int, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return 0, err
	}
	return c.cfg.weeksBefore[month-1]*7 + day, nil
}

func (c *weekCalendar) QuarterOfYear(year, month, day int) (int, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return 0, err
	}
	return (month-1)/(c.cfg.months()/4) + 1, nil
}

// WeekOfYear reads straight off the layout: week numbers and months are two
// addressings of the same structure.
func (c *weekCalendar) WeekOfYear(year, month, day int) (YearWeek, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return YearWeek{}, err
	}
	return YearWeek{Year: year, Week: c.cfg.weeksBefore[month-1] + (day-1)/7 + 1}, nil
}

func (c *weekCalendar) ISOWeekOfYear(year, month, day int) (YearWeek, error) {
	d, err := c.ToISODays(year, month, day)
	if err != nil {
		return YearWeek{}, err
	}
	return isoWeekFromDays(d), nil
}

// =============================================================================
// Arithmetic
// =============================================================================

func (c *weekCalendar) Plus(date Date, unit Unit, amount int, coerce bool) (Date, error) {
	return plusMonths(c.cfg, date, unit, amount, coerce, func(year, month int) int {
		return c.weeksInMonth(year, month) * 7
	})
}

// =============================================================================
// Ranges
// =============================================================================

func (c *weekCalendar) YearRange(year int) (Range, error) {
	last := c.cfg.months()
	return Range{
		Start: Date{Year: year, Month: 1, Day: 1},
		End:   Date{Year: year, Month: last, Day: c.weeksInMonth(year, last) * 7},
	}, nil
}

func (c *weekCalendar) QuarterRange(year, quarter int) (Range, error) {
	if quarter < 1 || quarter > 4 {
		return Range{}, &DomainError{Calendar: c.cfg.name, Field: "quarter", Value: quarter, Min: 1, Max: 4}
	}
	per := c.cfg.months() / 4
	first := (quarter-1)*per + 1
	last := quarter * per
	return Range{
		Start: Date{Year: year, Month: first, Day: 1},
		End:   Date{Year: year, Month: last, Day: c.weeksInMonth(year, last) * 7},
	}, nil
}

func (c *weekCalendar) MonthRange(year, month int) (Range, error) {
	dim, err := c.DaysInMonth(year, month)
	if err != nil {
		return Range{}, err
	}
	return Range{
		Start: Date{Year: year, Month: month, Day: 1},
		End:   Date{Year: year, Month: month, Day: dim},
	}, nil
}

func (c *weekCalendar) WeekRange(year, week int) (Range, error) {
	// Carry out-of-range week numbers into the adjacent year, same as the
	// week-numbering bucket rule.
	for week < 1 {
		year--
		n, _ := c.WeeksInYear(year)
		week += n
	}
	for {
		n, _ := c.WeeksInYear(year)
		if week <= n {
			break
		}
		week -= n
		year++
	}
	month := 1
	for week > c.cfg.weeksBefore[month-1]+c.weeksInMonth(year, month) {
		month++
	}
	start := (week-c.cfg.weeksBefore[month-1]-1)*7 + 1
	return Range{
		Start: Date{Year: year, Month: month, Day: start},
		End:   Date{Year: year, Month: month, Day: start + 6},
	}, nil
}
