package calendar

import (
	"testing"
)

func TestISOWeekCalendar_Structure(t *testing.T) {
	iso := mustLookup(t, ISOWeekName)

	if got := iso.MonthsInYear(2015); got != 12 {
		t.Fatalf("MonthsInYear = %d, want 12", got)
	}

	// [4,4,5] per quarter: months are whole weeks.
	wantDays := []int{28, 28, 35, 28, 28, 35, 28, 28, 35, 28, 28, 35}
	for month := 1; month <= 12; month++ {
		got, err := iso.DaysInMonth(2016, month)
		if err != nil {
			t.Fatalf("DaysInMonth(2016, %d): %v", month, err)
		}
		if got != wantDays[month-1] {
			t.Errorf("DaysInMonth(2016, %d) = %d, want %d", month, got, wantDays[month-1])
		}
	}

	// 2015 is a long year: the extra week extends the final month.
	if got := iso.DaysInYear(2016); got != 364 {
		t.Errorf("DaysInYear(2016) = %d, want 364", got)
	}
	if got := iso.DaysInYear(2015); got != 371 {
		t.Errorf("DaysInYear(2015) = %d, want 371", got)
	}
	if got, _ := iso.DaysInMonth(2015, 12); got != 42 {
		t.Errorf("DaysInMonth(2015, 12) = %d, want 42", got)
	}
	if !iso.LeapYear(2015) {
		t.Error("LeapYear(2015) = false, want true (53-week year)")
	}
	if iso.LeapYear(2016) {
		t.Error("LeapYear(2016) = true, want false")
	}
}

func TestISOWeekCalendar_Alignment(t *testing.T) {
	// Day 1 of the ISO week year is the Monday opening ISO week 1, which the
	// Gregorian builtin locates independently.
	iso := mustLookup(t, ISOWeekName)
	greg := mustLookup(t, GregorianName)

	tests := []struct {
		year int
		want Date // Gregorian date of week-year day 1
	}{
		{2015, Date{2014, 12, 29}},
		{2016, Date{2016, 1, 4}},
		{2020, Date{2019, 12, 30}},
		{2021, Date{2021, 1, 4}},
	}

	for _, tt := range tests {
		n, err := iso.ToISODays(tt.year, 1, 1)
		if err != nil {
			t.Fatalf("ToISODays(%d, 1, 1): %v", tt.year, err)
		}
		if got := greg.FromISODays(n); got != tt.want {
			t.Errorf("week year %d starts on %+v, want %+v", tt.year, got, tt.want)
		}
		if dow, _ := iso.DayOfWeek(tt.year, 1, 1); dow != Monday {
			t.Errorf("week year %d day 1 is a %s, want Monday", tt.year, dow)
		}
	}
}

func TestISOWeekCalendar_WeekOfYear(t *testing.T) {
	iso := mustLookup(t, ISOWeekName)

	tests := []struct {
		year, month, day int
		want             YearWeek
	}{
		{2016, 1, 1, YearWeek{2016, 1}},
		{2016, 1, 28, YearWeek{2016, 4}},
		{2016, 3, 29, YearWeek{2016, 13}}, // last week of Q1
		{2016, 12, 35, YearWeek{2016, 52}},
		{2015, 12, 42, YearWeek{2015, 53}},
	}

	for _, tt := range tests {
		got, err := iso.WeekOfYear(tt.year, tt.month, tt.day)
		if err != nil {
			t.Fatalf("WeekOfYear(%d, %d, %d): %v", tt.year, tt.month, tt.day, err)
		}
		if got != tt.want {
			t.Errorf("WeekOfYear(%d, %d, %d) = %+v, want %+v", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestISOWeekCalendar_Quarters(t *testing.T) {
	iso := mustLookup(t, ISOWeekName)

	q, err := iso.QuarterOfYear(2016, 5, 10)
	if err != nil {
		t.Fatalf("QuarterOfYear: %v", err)
	}
	if q != 2 {
		t.Errorf("QuarterOfYear(2016, 5, 10) = %d, want 2", q)
	}

	r, err := iso.QuarterRange(2016, 1)
	if err != nil {
		t.Fatalf("QuarterRange: %v", err)
	}
	want := Range{Start: Date{2016, 1, 1}, End: Date{2016, 3, 35}}
	if r != want {
		t.Errorf("QuarterRange(2016, 1) = %+v, want %+v", r, want)
	}
}

func TestISOWeekCalendar_WeekRange(t *testing.T) {
	iso := mustLookup(t, ISOWeekName)

	tests := []struct {
		name       string
		year, week int
		want       Range
	}{
		{"first week", 2016, 1, Range{Date{2016, 1, 1}, Date{2016, 1, 7}}},
		{"week in month 3", 2016, 13, Range{Date{2016, 3, 29}, Date{2016, 3, 35}}},
		{"week 53 of long year", 2015, 53, Range{Date{2015, 12, 36}, Date{2015, 12, 42}}},
		// Week 53 of a 52-week year carries into week 1 of the next year.
		{"week 53 carries", 2016, 53, Range{Date{2017, 1, 1}, Date{2017, 1, 7}}},
		{"week 0 carries back", 2016, 0, Range{Date{2015, 12, 36}, Date{2015, 12, 42}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := iso.WeekRange(tt.year, tt.week)
			if err != nil {
				t.Fatalf("WeekRange(%d, %d): %v", tt.year, tt.week, err)
			}
			if got != tt.want {
				t.Errorf("WeekRange(%d, %d) = %+v, want %+v", tt.year, tt.week, got, tt.want)
			}
		})
	}
}

func TestISOWeekCalendar_ValidDate(t *testing.T) {
	iso := mustLookup(t, ISOWeekName)

	if err := iso.ValidDate(2015, 12, 42); err != nil {
		t.Errorf("ValidDate(2015, 12, 42) = %v, want nil (long year)", err)
	}
	if err := iso.ValidDate(2016, 12, 36); !IsDomainError(err) {
		t.Errorf("ValidDate(2016, 12, 36) = %v, want DomainError (ordinary year)", err)
	}
	if err := iso.ValidDate(2016, 13, 1); !IsDomainError(err) {
		t.Errorf("ValidDate(2016, 13, 1) = %v, want DomainError", err)
	}
}

func TestRetailCalendar_445(t *testing.T) {
	// A 4-4-5 retail calendar anchored on Sunday weeks, the classic generated
	// week-cycle variant.
	retail, err := New("retail_445", CycleWeek, Options{
		OptWeeksInMonth: []int{4, 4, 5},
		OptFirstDay:     int(Sunday),
		OptMinDays:      4,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if dow, err := retail.DayOfWeek(2023, 1, 1); err != nil || dow != Sunday {
		t.Errorf("DayOfWeek(2023, 1, 1) = %s, %v; want Sunday", dow, err)
	}

	// Round trip across a year boundary.
	for _, d := range []Date{{2023, 1, 1}, {2023, 12, 28}, {2024, 1, 1}} {
		n, err := retail.ToISODays(d.Year, d.Month, d.Day)
		if err != nil {
			t.Fatalf("ToISODays(%+v): %v", d, err)
		}
		if got := retail.FromISODays(n); got != d {
			t.Errorf("FromISODays(%d) = %+v, want %+v", n, got, d)
		}
	}
}

func TestWeekCalendar_RoundTripEveryFirstDay(t *testing.T) {
	// Generated week-cycle variants must stay invertible for every week
	// start, and consecutive years must tile the day line with no overlap
	// and no gap.
	for firstDay := Monday; firstDay <= Sunday; firstDay++ {
		t.Run(firstDay.String(), func(t *testing.T) {
			cal, err := New("x_wk_"+firstDay.String(), CycleWeek, Options{
				OptWeeksInMonth: []int{4, 4, 5},
				OptFirstDay:     int(firstDay),
			})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			for year := 2014; year <= 2026; year++ {
				lastMonthDays, err := cal.DaysInMonth(year, 12)
				if err != nil {
					t.Fatalf("DaysInMonth(%d, 12): %v", year, err)
				}
				for _, d := range []Date{
					{year, 1, 1},
					{year, 3, 35},
					{year, 12, lastMonthDays},
				} {
					n, err := cal.ToISODays(d.Year, d.Month, d.Day)
					if err != nil {
						t.Fatalf("ToISODays(%+v): %v", d, err)
					}
					if got := cal.FromISODays(n); got != d {
						t.Errorf("FromISODays(ToISODays(%+v)) = %+v", d, got)
					}
				}

				// The day before New Year's Day is the previous year's last.
				n, err := cal.ToISODays(year, 1, 1)
				if err != nil {
					t.Fatalf("ToISODays(%d, 1, 1): %v", year, err)
				}
				prevDays, err := cal.DaysInMonth(year-1, 12)
				if err != nil {
					t.Fatalf("DaysInMonth(%d, 12): %v", year-1, err)
				}
				want := Date{year - 1, 12, prevDays}
				if got := cal.FromISODays(n - 1); got != want {
					t.Errorf("FromISODays(day before %d-1-1) = %+v, want %+v", year, got, want)
				}
			}
		})
	}
}
