package calendar

// Day-count arithmetic shared by all variants. Day 0 of the shared reference
// epoch is 0000-01-01 of the proleptic Gregorian calendar. All formulas are
// closed-form over floor division, so conversion cost does not grow with the
// magnitude of the date.

// floorDiv is division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder paired with floorDiv; its sign follows b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// leapYearsBefore counts, with sign, the leap years in the arithmetic-year
// interval [0, y) under the given rule. Year 0 itself is leap under both the
// Gregorian and Julian rules.
func leapYearsBefore(rule LeapRule, y int64) int64 {
	switch rule {
	case LeapGregorian:
		return floorDiv(y+3, 4) - floorDiv(y+99, 100) + floorDiv(y+399, 400)
	case LeapJulian:
		return floorDiv(y+3, 4)
	}
	return 0
}

// isLeapArith evaluates the leap rule on an arithmetic year.
func isLeapArith(rule LeapRule, y int64) bool {
	switch rule {
	case LeapGregorian:
		return y%4 == 0 && (y%100 != 0 || y%400 == 0)
	case LeapJulian:
		return y%4 == 0
	}
	return false
}

// daysBeforeYear is the day count from the epoch to the start of arithmetic
// year y, before the variant's epoch offset is applied.
func (c *config) daysBeforeYear(y int64) int64 {
	return int64(c.yearDays)*y + leapYearsBefore(c.leapRule, y)
}

// yearFromDays recovers the arithmetic year containing epoch-relative day d.
// The estimate from the rule's mean year length is off by at most a step or
// two, so the corrections below are O(1).
func (c *config) yearFromDays(d int64) int64 {
	num, den := int64(1), int64(c.yearDays)
	switch c.leapRule {
	case LeapGregorian:
		num, den = 400, int64(c.yearDays)*400+97
	case LeapJulian:
		num, den = 4, int64(c.yearDays)*4+1
	}
	y := floorDiv(d*num, den)
	for d < c.daysBeforeYear(y) {
		y--
	}
	for d >= c.daysBeforeYear(y+1) {
		y++
	}
	return y
}

// weekdayOf returns the weekday of an epoch-relative day. Day 0, 0000-01-01
// proleptic Gregorian, was a Saturday.
func weekdayOf(d int64) Weekday {
	return Weekday(floorMod(d+5, 7) + 1)
}
