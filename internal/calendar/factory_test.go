package calendar

import (
	"errors"
	"slices"
	"testing"
)

func TestNew_RejectsUnknownOptions(t *testing.T) {
	_, err := New("x_unknown_opts", CycleWeek, Options{
		"invalid_option":  "y",
		"another_bad_one": 3,
		OptWeeksInMonth:   []int{4, 4, 5},
	})
	if err == nil {
		t.Fatal("New = nil error, want ValidationError")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("New = %v, want *ValidationError", err)
	}
	keys := ve.Keys()
	for _, want := range []string{"invalid_option", "another_bad_one"} {
		if !slices.Contains(keys, want) {
			t.Errorf("ValidationError keys = %v, missing %q", keys, want)
		}
	}

	if _, ok := Lookup("x_unknown_opts"); ok {
		t.Error("invalid configuration was registered")
	}
}

func TestNew_CollectsEveryIssue(t *testing.T) {
	// Validation reports all problems at once, not just the first.
	_, err := New("x_multi_issues", CycleMonth, Options{
		OptFirstDay: 9,
		OptMinDays:  0,
		"bogus":     true,
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("New = %v, want *ValidationError", err)
	}
	keys := ve.Keys()
	for _, want := range []string{OptFirstDay, OptMinDays, "bogus"} {
		if !slices.Contains(keys, want) {
			t.Errorf("ValidationError keys = %v, missing %q", keys, want)
		}
	}
}

func TestNew_WeekLayoutValidation(t *testing.T) {
	tests := []struct {
		name   string
		layout any
		ok     bool
	}{
		{"quarter layout", []int{4, 4, 5}, true},
		{"full year layout", []int{4, 4, 5, 4, 4, 5, 4, 4, 5, 4, 4, 5}, true},
		{"quarter does not sum to 13", []int{4, 4, 4}, false},
		{"year does not sum to 52", []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}, false},
		{"wrong length", []int{4, 4, 5, 4}, false},
		{"zero-week month", []int{0, 8, 5}, false},
		{"missing layout", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{}
			if tt.layout != nil {
				opts[OptWeeksInMonth] = tt.layout
			}
			_, err := New("x_layout_"+tt.name, CycleWeek, opts)
			if tt.ok && err != nil {
				t.Errorf("New = %v, want success", err)
			}
			if !tt.ok && !IsValidationError(err) {
				t.Errorf("New = %v, want ValidationError", err)
			}
		})
	}
}

func TestNew_WeekCycleMinDays(t *testing.T) {
	// On a week-cycle calendar min_days other than 4 makes adjacent years
	// overlap on a week (or skip one), so day-count conversion would stop
	// being invertible. Those configurations are rejected outright.
	tests := []struct {
		name    string
		minDays any
		ok      bool
	}{
		{"default", nil, true},
		{"explicit 4", 4, true},
		{"1 overlaps adjacent years", 1, false},
		{"3 overlaps adjacent years", 3, false},
		{"7 leaves unowned days", 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				OptWeeksInMonth: []int{4, 4, 5},
				OptFirstDay:     int(Sunday),
			}
			if tt.minDays != nil {
				opts[OptMinDays] = tt.minDays
			}
			_, err := New("x_mindays_"+tt.name, CycleWeek, opts)
			if tt.ok {
				if err != nil {
					t.Fatalf("New = %v, want success", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("New = %v, want *ValidationError", err)
			}
			if !slices.Contains(ve.Keys(), OptMinDays) {
				t.Errorf("ValidationError keys = %v, missing %q", ve.Keys(), OptMinDays)
			}
		})
	}
}

func TestNew_RegistryPolicy(t *testing.T) {
	opts := Options{OptWeeksInMonth: []int{4, 4, 5}, OptFirstDay: 1, OptMinDays: 4}

	first, err := New("x_policy", CycleWeek, opts)
	if err != nil {
		t.Fatalf("first New: %v", err)
	}

	// Identical configuration: idempotent no-op returning the existing
	// variant.
	second, err := New("x_policy", CycleWeek, opts)
	if err != nil {
		t.Fatalf("identical re-registration: %v", err)
	}
	if first != second {
		t.Error("identical re-registration returned a different variant")
	}

	// Conflicting configuration: rejected, and the registered variant's
	// behavior is untouched.
	_, err = New("x_policy", CycleWeek, Options{OptWeeksInMonth: []int{5, 4, 4}})
	if !IsValidationError(err) {
		t.Fatalf("conflicting re-registration = %v, want ValidationError", err)
	}
	got, ok := Lookup("x_policy")
	if !ok || got != first {
		t.Error("conflicting re-registration disturbed the registry")
	}
	if dim, _ := got.DaysInMonth(2023, 1); dim != 28 {
		t.Errorf("registered variant changed behavior: DaysInMonth = %d, want 28", dim)
	}
}

func TestBuiltins_Registered(t *testing.T) {
	names := Names()
	for _, want := range []string{GregorianName, JulianName, ISOWeekName} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v, missing builtin %q", names, want)
		}
	}

	greg := mustLookup(t, GregorianName)
	if got := greg.CldrCalendarType(); got != "gregorian" {
		t.Errorf("gregorian CldrCalendarType = %q, want %q", got, "gregorian")
	}
	for _, name := range []string{JulianName, ISOWeekName} {
		if got := mustLookup(t, name).CldrCalendarType(); got != "other" {
			t.Errorf("%s CldrCalendarType = %q, want %q", name, got, "other")
		}
	}
}

func TestNew_GeneratedGregorianKeepsCldrTag(t *testing.T) {
	// A locale-flavored Gregorian variant is still a gregorian calendar for
	// formatting purposes.
	us, err := New("x_en_us", CycleMonth, Options{
		OptFirstDay: int(Sunday),
		OptMinDays:  1,
		OptLocale:   "en-US",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := us.CldrCalendarType(); got != "gregorian" {
		t.Errorf("CldrCalendarType = %q, want %q", got, "gregorian")
	}
}

func TestNew_ConcurrentRegistration(t *testing.T) {
	// Concurrent attempts under one name must converge on a single variant.
	opts := Options{OptWeeksInMonth: []int{4, 5, 4}}

	results := make(chan Calendar, 8)
	for i := 0; i < 8; i++ {
		go func() {
			cal, err := New("x_concurrent", CycleWeek, opts)
			if err != nil {
				t.Errorf("New: %v", err)
			}
			results <- cal
		}()
	}

	first := <-results
	for i := 1; i < 8; i++ {
		if got := <-results; got != first {
			t.Error("concurrent registrations produced distinct variants")
		}
	}
}
