// Package calendar computes dates across multiple calendar systems through a
// shared day-counting algebra. Every variant (the proleptic Gregorian and
// Julian calendars, the ISO-8601 week calendar, and any configuration-defined
// variant created through New) exposes the same operation set and converts
// to and from a common signed day count, which makes cross-calendar
// conversion a pair of O(1) arithmetic steps.
//
// Day counts ("iso days") are measured from a fixed reference epoch: day 0 is
// 0000-01-01 of the proleptic Gregorian calendar. Weekdays are numbered
// 1=Monday through 7=Sunday.
package calendar

// Weekday is a day of the week, 1=Monday through 7=Sunday.
type Weekday int

// Weekday values.
const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(?)"
	}
	return weekdayNames[w-1]
}

// Date is a calendar date. It is a plain value: the calendar it belongs to is
// whichever Calendar the operation is invoked on. Arithmetic never mutates a
// Date; it returns a new one.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Range is an ordered, inclusive pair of dates.
type Range struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// YearWeek identifies a week by the year it belongs to under the week
// numbering rule in effect. Year may differ from the date's own year field
// near year boundaries: a day close to Dec 31/Jan 1 can belong to the
// adjacent year's week 1 or week 52/53.
type YearWeek struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// Unit is a calendar unit for date arithmetic.
type Unit int

// Units supported by Plus.
const (
	UnitMonths Unit = 1 + iota
	UnitQuarters
)

func (u Unit) String() string {
	switch u {
	case UnitMonths:
		return "months"
	case UnitQuarters:
		return "quarters"
	}
	return "Unit(?)"
}

// Calendar is the capability set shared by every variant. Implementations
// are stateless once constructed and safe for unrestricted concurrent use.
//
// Operations that a variant does not model (for example week queries on a
// calendar configured without week parameters) return a *NotDefinedError.
// Date components outside the variant's valid range are reported as a
// *DomainError; nothing is silently clamped unless coercion was requested.
type Calendar interface {
	// Name is the symbolic name the variant is registered under.
	Name() string

	// Cycle reports whether dates are addressed by months or by weeks.
	Cycle() Cycle

	// CldrCalendarType tags the variant for external formatting collaborators:
	// "gregorian" for the plain proleptic Gregorian configuration, "other"
	// for everything else.
	CldrCalendarType() string

	// ValidDate reports whether (year, month, day) is a valid date of this
	// variant. A nil return means valid; otherwise the error is a *DomainError
	// for the first offending component.
	ValidDate(year, month, day int) error

	// Era returns the era tag and the era-relative year. Years after the
	// epoch are era 1; years at or before it are era 0 with a positive
	// era-relative year.
	Era(year int) (era, eraYear int)

	MonthsInYear(year int) int
	DaysInMonth(year, month int) (int, error)
	DaysInYear(year int) int
	LeapYear(year int) bool

	DayOfWeek(year, month, day int) (Weekday, error)
	DayOfYear(year, month, day int) (int, error)
	QuarterOfYear(year, month, day int) (int, error)

	// WeekOfYear numbers the date's week under the variant's own
	// first-day/min-days rule.
	WeekOfYear(year, month, day int) (YearWeek, error)

	// ISOWeekOfYear numbers the date's week under the fixed ISO-8601 rule
	// (weeks start Monday, min_days 4) regardless of the variant's own
	// configuration.
	ISOWeekOfYear(year, month, day int) (YearWeek, error)

	// WeeksInYear and LongYear describe the year under the variant's week
	// rule. A long year has 53 weeks instead of 52.
	WeeksInYear(year int) (int, error)
	LongYear(year int) (bool, error)

	// ToISODays converts a valid date to the shared signed day count.
	ToISODays(year, month, day int) (int64, error)

	// FromISODays converts a signed day count back to a date. It is the exact
	// inverse of ToISODays over the variant's valid-date domain.
	FromISODays(days int64) Date

	// Plus adds amount units to the date. Quarters convert to months. With
	// coerce the resulting day is clamped to the destination month's length;
	// without it the day is preserved verbatim, which may produce a date that
	// fails ValidDate; validity is then the caller's to check.
	Plus(date Date, unit Unit, amount int, coerce bool) (Date, error)

	YearRange(year int) (Range, error)
	QuarterRange(year, quarter int) (Range, error)
	MonthRange(year, month int) (Range, error)
	WeekRange(year, week int) (Range, error)
}

// cldrTypeGregorian and cldrTypeOther are the values of CldrCalendarType.
const (
	cldrTypeGregorian = "gregorian"
	cldrTypeOther     = "other"
)
