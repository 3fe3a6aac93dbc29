package calendar

import (
	"testing"
)

func TestPlus_Months(t *testing.T) {
	greg := mustLookup(t, GregorianName)

	tests := []struct {
		name   string
		date   Date
		unit   Unit
		amount int
		coerce bool
		want   Date
	}{
		{"coerced into short month", Date{2021, 1, 31}, UnitMonths, 1, true, Date{2021, 2, 28}},
		{"uncoerced keeps the day", Date{2021, 1, 31}, UnitMonths, 1, false, Date{2021, 2, 31}},
		{"coerced into leap february", Date{2024, 1, 31}, UnitMonths, 1, true, Date{2024, 2, 29}},
		{"plain month add", Date{2021, 3, 15}, UnitMonths, 2, false, Date{2021, 5, 15}},
		{"across year end", Date{2021, 11, 10}, UnitMonths, 3, false, Date{2022, 2, 10}},
		{"negative amount", Date{2021, 1, 31}, UnitMonths, -1, true, Date{2020, 12, 31}},
		{"negative across year", Date{2021, 2, 15}, UnitMonths, -3, false, Date{2020, 11, 15}},
		{"large amount", Date{2000, 6, 1}, UnitMonths, 1200, false, Date{2100, 6, 1}},
		{"quarter converts to months", Date{2021, 1, 15}, UnitQuarters, 1, false, Date{2021, 4, 15}},
		{"quarters across years", Date{2021, 11, 15}, UnitQuarters, 2, false, Date{2022, 5, 15}},
		{"negative quarter", Date{2021, 2, 28}, UnitQuarters, -1, false, Date{2020, 11, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := greg.Plus(tt.date, tt.unit, tt.amount, tt.coerce)
			if err != nil {
				t.Fatalf("Plus(%+v, %s, %d): %v", tt.date, tt.unit, tt.amount, err)
			}
			if got != tt.want {
				t.Errorf("Plus(%+v, %s, %d, coerce=%v) = %+v, want %+v",
					tt.date, tt.unit, tt.amount, tt.coerce, got, tt.want)
			}
		})
	}
}

func TestPlus_UncoercedResultFailsValidation(t *testing.T) {
	// The uncoerced overflow date is produced on purpose and left to the
	// caller to check.
	greg := mustLookup(t, GregorianName)

	got, err := greg.Plus(Date{2021, 1, 31}, UnitMonths, 1, false)
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if err := greg.ValidDate(got.Year, got.Month, got.Day); !IsDomainError(err) {
		t.Errorf("ValidDate(%+v) = %v, want DomainError", got, err)
	}
}

func TestPlus_JulianSkipsYearZero(t *testing.T) {
	jul := mustLookup(t, JulianName)

	got, err := jul.Plus(Date{1, 1, 15}, UnitMonths, -1, false)
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if got != (Date{-1, 12, 15}) {
		t.Errorf("Plus({1 1 15}, months, -1) = %+v, want {-1 12 15}", got)
	}

	got, err = jul.Plus(Date{-1, 12, 15}, UnitMonths, 1, false)
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if got != (Date{1, 1, 15}) {
		t.Errorf("Plus({-1 12 15}, months, 1) = %+v, want {1 1 15}", got)
	}
}

func TestPlus_WeekCalendarCoercion(t *testing.T) {
	iso := mustLookup(t, ISOWeekName)

	// Month 3 has 35 days, month 4 only 28.
	got, err := iso.Plus(Date{2016, 3, 35}, UnitMonths, 1, true)
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if got != (Date{2016, 4, 28}) {
		t.Errorf("coerced Plus = %+v, want {2016 4 28}", got)
	}

	got, err = iso.Plus(Date{2016, 3, 35}, UnitMonths, 1, false)
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if got != (Date{2016, 4, 35}) {
		t.Errorf("uncoerced Plus = %+v, want {2016 4 35}", got)
	}
}

func TestPlus_BadUnit(t *testing.T) {
	greg := mustLookup(t, GregorianName)

	if _, err := greg.Plus(Date{2021, 1, 1}, Unit(99), 1, false); !IsDomainError(err) {
		t.Errorf("Plus with unknown unit = %v, want DomainError", err)
	}
}
