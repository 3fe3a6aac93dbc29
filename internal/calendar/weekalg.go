package calendar

// Configurable week numbering. first_day fixes which weekday a week starts
// on; min_days is how many days of a partial first week must fall inside the
// new year for it to count as week 1; otherwise those days belong to week 52
// or 53 of the prior year. first_day=Monday, min_days=4 reproduces ISO-8601;
// first_day=Sunday, min_days=1 reproduces the US convention.

// firstWeekStarts returns the iso-day on which the year's week 1 begins: the
// nearest occurrence of firstDay on or before day minDays of the first month.
func (c *monthCalendar) firstWeekStarts(year, firstDay, minDays int) int64 {
	anchor := c.isoDays(year, 1, minDays)
	back := floorMod(int64(weekdayOf(anchor))-int64(firstDay), 7)
	return anchor - back
}

// lastWeekEnds is the symmetric computation at the other end of the year: the
// nearest occurrence of the week-ending weekday on or after day
// (length − minDays + 1) of the last month.
func (c *monthCalendar) lastWeekEnds(year, firstDay, minDays int) int64 {
	last := c.cfg.months()
	anchor := c.isoDays(year, last, c.daysInMonth(year, last)-minDays+1)
	endDay := floorMod(int64(firstDay)+5, 7) + 1
	forward := floorMod(endDay-int64(weekdayOf(anchor)), 7)
	return anchor + forward
}

func (c *monthCalendar) weeksInYear(year, firstDay, minDays int) int {
	span := c.lastWeekEnds(year, firstDay, minDays) - c.firstWeekStarts(year, firstDay, minDays) + 1
	return int(span / 7)
}

// weekOfYear buckets an iso-day against the year's [firstWeekStarts,
// lastWeekEnds] span. Days below the span belong to the prior year's final
// week; days above it open the next year's week 1.
func (c *monthCalendar) weekOfYear(year int, d int64, firstDay, minDays int) YearWeek {
	start := c.firstWeekStarts(year, firstDay, minDays)
	if d < start {
		prev := prevYear(c.cfg, year)
		return YearWeek{Year: prev, Week: c.weeksInYear(prev, firstDay, minDays)}
	}
	if d > c.lastWeekEnds(year, firstDay, minDays) {
		return YearWeek{Year: nextYear(c.cfg, year), Week: 1}
	}
	return YearWeek{Year: year, Week: int((d-start)/7) + 1}
}

// isoWeekFromDays numbers any epoch-relative day under the fixed ISO-8601
// rule, evaluated over the proleptic Gregorian mapping of the day.
func isoWeekFromDays(d int64) YearWeek {
	g := builtinGregorian
	year := g.FromISODays(d).Year
	return g.weekOfYear(year, d, int(Monday), 4)
}

// nextYear and prevYear step the calendar-year counter, skipping year zero on
// calendars that have none.
func nextYear(cfg *config, year int) int {
	if year == -1 && !cfg.hasYearZero {
		return 1
	}
	return year + 1
}

func prevYear(cfg *config, year int) int {
	if year == 1 && !cfg.hasYearZero {
		return -1
	}
	return year - 1
}
