package calendar

// monthCalendar is the generic month-cycle variant: a date is
// (year, month, day-of-month) and the whole behavior is a function of the
// compiled config. The Gregorian and Julian built-ins are plain
// configurations of this type.
type monthCalendar struct {
	cfg *config
}

func newMonthCalendar(cfg *config) *monthCalendar {
	return &monthCalendar{cfg: cfg}
}

func (c *monthCalendar) Name() string { return c.cfg.name }
func (c *monthCalendar) Cycle() Cycle { return CycleMonth }

func (c *monthCalendar) CldrCalendarType() string {
	if c.cfg.gregorian {
		return cldrTypeGregorian
	}
	return cldrTypeOther
}

// =============================================================================
// Structure queries
// =============================================================================

func (c *monthCalendar) MonthsInYear(int) int { return c.cfg.months() }

func (c *monthCalendar) LeapYear(year int) bool {
	return isLeapArith(c.cfg.leapRule, c.cfg.arithYear(year))
}

func (c *monthCalendar) DaysInYear(year int) int {
	if c.LeapYear(year) {
		return c.cfg.yearDays + 1
	}
	return c.cfg.yearDays
}

func (c *monthCalendar) DaysInMonth(year, month int) (int, error) {
	if err := c.checkYear(year); err != nil {
		return 0, err
	}
	if month < 1 || month > c.cfg.months() {
		return 0, &DomainError{Calendar: c.cfg.name, Field: "month", Value: month, Min: 1, Max: c.cfg.months()}
	}
	return c.daysInMonth(year, month), nil
}

func (c *monthCalendar) daysInMonth(year, month int) int {
	n := c.cfg.monthDays[month-1]
	if month == c.cfg.leapMonth && c.LeapYear(year) {
		n++
	}
	return n
}

func (c *monthCalendar) checkYear(year int) error {
	if year == 0 && !c.cfg.hasYearZero {
		return &DomainError{Calendar: c.cfg.name, Field: "year", Value: 0}
	}
	return nil
}

func (c *monthCalendar) ValidDate(year, month, day int) error {
	if err := c.checkYear(year); err != nil {
		return err
	}
	if month < 1 || month > c.cfg.months() {
		return &DomainError{Calendar: c.cfg.name, Field: "month", Value: month, Min: 1, Max: c.cfg.months()}
	}
	if dim := c.daysInMonth(year, month); day < 1 || day > dim {
		return &DomainError{Calendar: c.cfg.name, Field: "day", Value: day, Min: 1, Max: dim}
	}
	return nil
}

func (c *monthCalendar) Era(year int) (int, int) {
	return eraOf(c.cfg, year)
}

// =============================================================================
// Day-count conversion
// =============================================================================

// isoDays converts without validating; exported conversions validate first.
func (c *monthCalendar) isoDays(year, month, day int) int64 {
	ay := c.cfg.arithYear(year)
	d := c.cfg.epochOffset + c.cfg.daysBeforeYear(ay) + int64(c.cfg.daysBefore[month-1]) + int64(day) - 1
	if month > c.cfg.leapMonth && isLeapArith(c.cfg.leapRule, ay) {
		d++
	}
	return d
}

func (c *monthCalendar) ToISODays(year, month, day int) (int64, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return 0, err
	}
	return c.isoDays(year, month, day), nil
}

func (c *monthCalendar) FromISODays(days int64) Date {
	d := days - c.cfg.epochOffset
	ay := c.cfg.yearFromDays(d)
	doy := int(d - c.cfg.daysBeforeYear(ay)) // 0-based day of year
	leap := isLeapArith(c.cfg.leapRule, ay)

	month := 1
	for {
		dim := c.cfg.monthDays[month-1]
		if leap && month == c.cfg.leapMonth {
			dim++
		}
		if doy < dim {
			break
		}
		doy -= dim
		month++
	}
	return Date{Year: c.cfg.displayYear(ay), Month: month, Day: doy + 1}
}

// =============================================================================
// Derived queries
// =============================================================================

func (c *monthCalendar) DayOfWeek(year, month, day int) (Weekday, error) {
	d, err := c.ToISODays(year, month, day)
	if err != nil {
		return 0, err
	}
	return weekdayOf(d), nil
}

func (c *monthCalendar) DayOfYear(year, month, day int) (int, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return 0, err
	}
	n := c.cfg.daysBefore[month-1] + day
	if month > c.cfg.leapMonth && c.LeapYear(year) {
		n++
	}
	return n, nil
}

func (c *monthCalendar) QuarterOfYear(year, month, day int) (int, error) {
	if err := c.ValidDate(year, month, day); err != nil {
		return 0, err
	}
	per := c.cfg.months() / 4
	if per == 0 || c.cfg.months()%4 != 0 {
		return 0, &NotDefinedError{Calendar: c.cfg.name, Op: "quarter_of_year"}
	}
	return (month-1)/per + 1, nil
}

func (c *monthCalendar) WeekOfYear(year, month, day int) (YearWeek, error) {
	if !c.cfg.hasWeeks() {
		return YearWeek{}, &NotDefinedError{Calendar: c.cfg.name, Op: "week_of_year"}
	}
	d, err := c.ToISODays(year, month, day)
	if err != nil {
		return YearWeek{}, err
	}
	return c.weekOfYear(year, d, c.cfg.firstDay, c.cfg.minDays), nil
}

func (c *monthCalendar) ISOWeekOfYear(year, month, day int) (YearWeek, error) {
	d, err := c.ToISODays(year, month, day)
	if err != nil {
		return YearWeek{}, err
	}
	return isoWeekFromDays(d), nil
}

func (c *monthCalendar) WeeksInYear(year int) (int, error) {
	if !c.cfg.hasWeeks() {
		return 0, &NotDefinedError{Calendar: c.cfg.name, Op: "weeks_in_year"}
	}
	if err := c.checkYear(year); err != nil {
		return 0, err
	}
	return c.weeksInYear(year, c.cfg.firstDay, c.cfg.minDays), nil
}

func (c *monthCalendar) LongYear(year int) (bool, error) {
	n, err := c.WeeksInYear(year)
	if err != nil {
		return false, err
	}
	return n == 53, nil
}

// =============================================================================
// Arithmetic
// =============================================================================

func (c *monthCalendar) Plus(date Date, unit Unit, amount int, coerce bool) (Date, error) {
	if err := c.checkYear(date.Year); err != nil {
		return Date{}, err
	}
	return plusMonths(c.cfg, date, unit, amount, coerce, c.daysInMonth)
}

// =============================================================================
// Ranges
// =============================================================================

func (c *monthCalendar) YearRange(year int) (Range, error) {
	if err := c.checkYear(year); err != nil {
		return Range{}, err
	}
	last := c.cfg.months()
	return Range{
		Start: Date{Year: year, Month: 1, Day: 1},
		End:   Date{Year: year, Month: last, Day: c.daysInMonth(year, last)},
	}, nil
}

func (c *monthCalendar) QuarterRange(year, quarter int) (Range, error) {
	if err := c.checkYear(year); err != nil {
		return Range{}, err
	}
	per := c.cfg.months() / 4
	if per == 0 || c.cfg.months()%4 != 0 {
		return Range{}, &NotDefinedError{Calendar: c.cfg.name, Op: "quarter range"}
	}
	if quarter < 1 || quarter > 4 {
		return Range{}, &DomainError{Calendar: c.cfg.name, Field: "quarter", Value: quarter, Min: 1, Max: 4}
	}
	first := (quarter-1)*per + 1
	last := quarter * per
	return Range{
		Start: Date{Year: year, Month: first, Day: 1},
		End:   Date{Year: year, Month: last, Day: c.daysInMonth(year, last)},
	}, nil
}

func (c *monthCalendar) MonthRange(year, month int) (Range, error) {
	dim, err := c.DaysInMonth(year, month)
	if err != nil {
		return Range{}, err
	}
	return Range{
		Start: Date{Year: year, Month: month, Day: 1},
		End:   Date{Year: year, Month: month, Day: dim},
	}, nil
}

func (c *monthCalendar) WeekRange(year, week int) (Range, error) {
	if !c.cfg.hasWeeks() {
		return Range{}, &NotDefinedError{Calendar: c.cfg.name, Op: "week range"}
	}
	if err := c.checkYear(year); err != nil {
		return Range{}, err
	}
	// Out-of-range week numbers carry deterministically into the adjacent
	// year: week 53 of a 52-week year is week 1 of the next.
	for week < 1 {
		year = prevYear(c.cfg, year)
		week += c.weeksInYear(year, c.cfg.firstDay, c.cfg.minDays)
	}
	for n := c.weeksInYear(year, c.cfg.firstDay, c.cfg.minDays); week > n; n = c.weeksInYear(year, c.cfg.firstDay, c.cfg.minDays) {
		week -= n
		year = nextYear(c.cfg, year)
	}
	start := c.firstWeekStarts(year, c.cfg.firstDay, c.cfg.minDays) + int64(week-1)*7
	return Range{Start: c.FromISODays(start), End: c.FromISODays(start + 6)}, nil
}
