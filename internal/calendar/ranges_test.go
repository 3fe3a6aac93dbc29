package calendar

import (
	"testing"
)

func TestGregorianRanges(t *testing.T) {
	greg := mustLookup(t, GregorianName)

	t.Run("year", func(t *testing.T) {
		got, err := greg.YearRange(2024)
		if err != nil {
			t.Fatalf("YearRange: %v", err)
		}
		want := Range{Date{2024, 1, 1}, Date{2024, 12, 31}}
		if got != want {
			t.Errorf("YearRange(2024) = %+v, want %+v", got, want)
		}
	})

	t.Run("quarter", func(t *testing.T) {
		tests := []struct {
			year, quarter int
			want          Range
		}{
			{2021, 1, Range{Date{2021, 1, 1}, Date{2021, 3, 31}}},
			{2021, 2, Range{Date{2021, 4, 1}, Date{2021, 6, 30}}},
			{2021, 4, Range{Date{2021, 10, 1}, Date{2021, 12, 31}}},
		}
		for _, tt := range tests {
			got, err := greg.QuarterRange(tt.year, tt.quarter)
			if err != nil {
				t.Fatalf("QuarterRange(%d, %d): %v", tt.year, tt.quarter, err)
			}
			if got != tt.want {
				t.Errorf("QuarterRange(%d, %d) = %+v, want %+v", tt.year, tt.quarter, got, tt.want)
			}
		}
		if _, err := greg.QuarterRange(2021, 5); !IsDomainError(err) {
			t.Errorf("QuarterRange(2021, 5) = %v, want DomainError", err)
		}
	})

	t.Run("month", func(t *testing.T) {
		got, err := greg.MonthRange(2024, 2)
		if err != nil {
			t.Fatalf("MonthRange: %v", err)
		}
		want := Range{Date{2024, 2, 1}, Date{2024, 2, 29}}
		if got != want {
			t.Errorf("MonthRange(2024, 2) = %+v, want %+v", got, want)
		}
	})

	t.Run("week", func(t *testing.T) {
		tests := []struct {
			name       string
			year, week int
			want       Range
		}{
			{"week 1 of 2016", 2016, 1, Range{Date{2016, 1, 4}, Date{2016, 1, 10}}},
			{"week 53 of long 2015", 2015, 53, Range{Date{2015, 12, 28}, Date{2016, 1, 3}}},
			// 2016 has 52 weeks, so week 53 resolves to week 1 of 2017.
			{"week 53 carries forward", 2016, 53, Range{Date{2017, 1, 2}, Date{2017, 1, 8}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := greg.WeekRange(tt.year, tt.week)
				if err != nil {
					t.Fatalf("WeekRange(%d, %d): %v", tt.year, tt.week, err)
				}
				if got != tt.want {
					t.Errorf("WeekRange(%d, %d) = %+v, want %+v", tt.year, tt.week, got, tt.want)
				}
			})
		}
	})
}

func TestQuarterQueries_NotDefinedOnThirteenMonths(t *testing.T) {
	// 13 months cannot split into four equal quarters; the query is answered
	// with data, not a fabricated range.
	fixed, err := New("thirteen_moons", CycleMonth, Options{
		OptMonthDays: []int{28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 29},
		OptLeapRule:  string(LeapNone),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := fixed.QuarterOfYear(2024, 5, 1); !IsNotDefined(err) {
		t.Errorf("QuarterOfYear = %v, want NotDefinedError", err)
	}
	if _, err := fixed.QuarterRange(2024, 1); !IsNotDefined(err) {
		t.Errorf("QuarterRange = %v, want NotDefinedError", err)
	}

	// The month structure itself still works.
	if got := fixed.DaysInYear(2024); got != 365 {
		t.Errorf("DaysInYear = %d, want 365", got)
	}
	n, err := fixed.ToISODays(1, 13, 29)
	if err != nil {
		t.Fatalf("ToISODays: %v", err)
	}
	if got := fixed.FromISODays(n); got != (Date{1, 13, 29}) {
		t.Errorf("round trip = %+v, want {1 13 29}", got)
	}
}
