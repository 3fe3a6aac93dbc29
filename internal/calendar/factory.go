package calendar

import (
	"slices"
	"sync"
)

// Built-in variant names, registered at package initialization.
const (
	GregorianName = "gregorian"
	JulianName    = "julian"
	ISOWeekName   = "iso_week"
)

// New validates a configuration, synthesizes a new stateless calendar
// variant wholly parameterized by it, and registers it under name.
//
// Re-registration policy: creating a name that already exists with a
// deep-equal configuration is an idempotent no-op returning the existing
// variant; creating it with a different configuration is a ValidationError.
// A registered variant's behavior is never swapped underneath existing
// references.
func New(name string, cycle Cycle, opts Options) (Calendar, error) {
	cfg, err := compileConfig(name, cycle, opts)
	if err != nil {
		return nil, err
	}

	var cal Calendar
	switch cycle {
	case CycleMonth:
		cal = newMonthCalendar(cfg)
	case CycleWeek:
		cal = newWeekCalendar(cfg)
	}
	return defaultRegistry.register(cal, cfg)
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Calendar, bool) {
	return defaultRegistry.lookup(name)
}

// Names returns the registered variant names in sorted order.
func Names() []string {
	return defaultRegistry.names()
}

// =============================================================================
// Registry
// =============================================================================

// registry is the process-wide name→variant mapping. Registration goes
// through exactly one entry point; reads take only the read lock.
type registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

type registryEntry struct {
	cal Calendar
	cfg *config
}

var defaultRegistry = &registry{entries: make(map[string]registryEntry)}

func (r *registry) register(cal Calendar, cfg *config) (Calendar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[cfg.name]; ok {
		if existing.cfg.equal(cfg) {
			return existing.cal, nil
		}
		return nil, &ValidationError{Calendar: cfg.name, Issues: []Issue{{
			Key:    "name",
			Value:  cfg.name,
			Reason: "already registered with a different configuration",
		}}}
	}
	r.entries[cfg.name] = registryEntry{cal: cal, cfg: cfg}
	return cal, nil
}

func (r *registry) lookup(name string) (Calendar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e.cal, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Built-ins
// =============================================================================

// builtinGregorian backs the gregorian registry entry and the internal ISO
// week computations; it exists independently of the registry so other
// variants can anchor on it during their own construction.
var builtinGregorian = newMonthCalendar(mustCompile(GregorianName, CycleMonth, Options{
	OptFirstDay: int(Monday),
	OptMinDays:  4,
}))

func init() {
	if _, err := defaultRegistry.register(builtinGregorian, builtinGregorian.cfg); err != nil {
		panic(err)
	}
	mustNew(JulianName, CycleMonth, Options{
		OptLeapRule:    string(LeapJulian),
		OptEpochOffset: -2,
	})
	mustNew(ISOWeekName, CycleWeek, Options{
		OptWeeksInMonth: []int{4, 4, 5},
	})
}

func mustCompile(name string, cycle Cycle, opts Options) *config {
	cfg, err := compileConfig(name, cycle, opts)
	if err != nil {
		panic(err)
	}
	return cfg
}

func mustNew(name string, cycle Cycle, opts Options) Calendar {
	cal, err := New(name, cycle, opts)
	if err != nil {
		panic(err)
	}
	return cal
}
