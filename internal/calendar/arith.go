package calendar

// plusMonths adds months (or quarters, converted at 3 months each) to a date
// using an adjusted modulo over a flat month index, so the computation is the
// same whether the amount spans days or millennia. Era boundaries are handled
// by doing the year arithmetic in arithmetic-year space.
//
// When coerce is false the day value is preserved verbatim even if it exceeds
// the destination month's length; the possibly-invalid result is the caller's
// to check. This is a deliberate contract, not an oversight.
func plusMonths(cfg *config, date Date, unit Unit, amount int, coerce bool, daysInMonth func(year, month int) int) (Date, error) {
	switch unit {
	case UnitMonths:
	case UnitQuarters:
		amount *= 3
	default:
		return Date{}, &DomainError{Calendar: cfg.name, Field: "unit", Value: int(unit)}
	}
	months := int64(cfg.months())
	if date.Month < 1 || date.Month > int(months) {
		return Date{}, &DomainError{Calendar: cfg.name, Field: "month", Value: date.Month, Min: 1, Max: int(months)}
	}

	idx := cfg.arithYear(date.Year)*months + int64(date.Month-1) + int64(amount)
	year := cfg.displayYear(floorDiv(idx, months))
	month := int(floorMod(idx, months)) + 1

	day := date.Day
	if coerce {
		if dim := daysInMonth(year, month); day > dim {
			day = dim
		}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// eraOf tags a year with its era: era 1 after the epoch, era 0 at or before
// it. The era-relative year is always positive; on calendars with a year
// zero, year 0 is era 0 year 1.
func eraOf(cfg *config, year int) (era, eraYear int) {
	if year > 0 {
		return 1, year
	}
	if cfg.hasYearZero {
		return 0, 1 - year
	}
	return 0, -year
}
