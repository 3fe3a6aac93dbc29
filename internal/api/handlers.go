package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/polycal/polycal/internal/calendar"
	"github.com/polycal/polycal/internal/config"
	"github.com/polycal/polycal/internal/database"
	"github.com/polycal/polycal/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check database health
	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// CalendarInfo summarizes a registered variant.
type CalendarInfo struct {
	Name             string `json:"name"`
	Cycle            string `json:"cycle"`
	CldrCalendarType string `json:"cldr_calendar_type"`
}

func calendarInfo(cal calendar.Calendar) CalendarInfo {
	return CalendarInfo{
		Name:             cal.Name(),
		Cycle:            string(cal.Cycle()),
		CldrCalendarType: cal.CldrCalendarType(),
	}
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	names := calendar.Names()
	infos := make([]CalendarInfo, 0, len(names))
	for _, name := range names {
		if cal, ok := calendar.Lookup(name); ok {
			infos = append(infos, calendarInfo(cal))
		}
	}
	WriteSuccess(w, infos)
}

// GetCalendar handles GET /api/v1/calendars/{name}
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.lookupCalendar(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, calendarInfo(cal))
}

// CreateCalendarRequest is the POST /api/v1/calendars payload.
type CreateCalendarRequest struct {
	Name    string         `json:"name"`
	Cycle   string         `json:"cycle"`
	Options map[string]any `json:"options"`
}

// CreateCalendar handles POST /api/v1/calendars (admin only).
//
// The variant is registered in-process first, then persisted so it survives
// restarts. Re-posting an identical definition is idempotent and answers 200;
// a definition that clashes with an existing name answers 409.
func (h *Handlers) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}

	if req.Name == "" {
		WriteBadRequest(w, "Calendar name is required")
		return
	}
	cycle := calendar.Cycle(req.Cycle)
	if cycle != calendar.CycleMonth && cycle != calendar.CycleWeek {
		WriteBadRequest(w, fmt.Sprintf("Invalid cycle %q: must be %q or %q",
			req.Cycle, calendar.CycleMonth, calendar.CycleWeek))
		return
	}

	cal, err := calendar.New(req.Name, cycle, calendar.Options(req.Options))
	if err != nil {
		var verr *calendar.ValidationError
		if errors.As(err, &verr) && isNameConflict(verr) {
			WriteConflict(w, fmt.Sprintf(
				"Calendar %q is already registered with a different configuration", req.Name))
			return
		}
		h.writeCalendarError(w, err)
		return
	}

	def := &database.CalendarDefinition{
		Name:    req.Name,
		Cycle:   string(cycle),
		Options: req.Options,
	}
	if err := h.db.InsertDefinition(ctx, def); err != nil {
		if database.IsExists(err) {
			// Same definition already stored; the registry verified equality.
			WriteSuccess(w, calendarInfo(cal))
			return
		}
		h.logger.Error("failed to persist calendar definition",
			slog.String("name", req.Name),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to persist calendar definition")
		return
	}

	logger.FromContext(ctx).Info("calendar registered",
		slog.String("name", cal.Name()),
		slog.String("cycle", string(cal.Cycle())))

	WriteCreated(w, calendarInfo(cal))
}

// DeleteCalendar handles DELETE /api/v1/calendars/{name} (admin only).
//
// Removal only affects the definition store: the running variant stays
// registered until the process restarts, so references held by callers keep
// working.
func (h *Handlers) DeleteCalendar(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.db.DeleteDefinition(r.Context(), name); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("No stored definition for calendar %q", name))
			return
		}
		h.logger.Error("failed to delete calendar definition",
			slog.String("name", name),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to delete calendar definition")
		return
	}

	WriteSuccess(w, map[string]string{
		"name":   name,
		"status": "definition deleted",
	})
}

// DateInfo is the full breakdown of a single date.
type DateInfo struct {
	Calendar    string             `json:"calendar"`
	Date        calendar.Date      `json:"date"`
	Era         int                `json:"era"`
	EraYear     int                `json:"era_year"`
	DayOfWeek   int                `json:"day_of_week"`
	WeekdayName string             `json:"weekday_name"`
	DayOfYear   int                `json:"day_of_year"`
	Quarter     *int               `json:"quarter,omitempty"`
	Week        *calendar.YearWeek `json:"week,omitempty"`
	ISOWeek     calendar.YearWeek  `json:"iso_week"`
	ISODays     int64              `json:"iso_days"`
	LeapYear    bool               `json:"leap_year"`
	DaysInMonth int                `json:"days_in_month"`
	DaysInYear  int                `json:"days_in_year"`
}

// GetDateInfo handles GET /api/v1/calendars/{name}/dates/{date}
func (h *Handlers) GetDateInfo(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.lookupCalendar(w, r)
	if !ok {
		return
	}
	date, ok := h.parseDateParam(w, r)
	if !ok {
		return
	}

	info, err := buildDateInfo(cal, date)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, info)
}

func buildDateInfo(cal calendar.Calendar, date calendar.Date) (*DateInfo, error) {
	y, m, d := date.Year, date.Month, date.Day

	dow, err := cal.DayOfWeek(y, m, d)
	if err != nil {
		return nil, err
	}
	doy, err := cal.DayOfYear(y, m, d)
	if err != nil {
		return nil, err
	}
	isoWeek, err := cal.ISOWeekOfYear(y, m, d)
	if err != nil {
		return nil, err
	}
	days, err := cal.ToISODays(y, m, d)
	if err != nil {
		return nil, err
	}
	dim, err := cal.DaysInMonth(y, m)
	if err != nil {
		return nil, err
	}
	era, eraYear := cal.Era(y)

	info := &DateInfo{
		Calendar:    cal.Name(),
		Date:        date,
		Era:         era,
		EraYear:     eraYear,
		DayOfWeek:   int(dow),
		WeekdayName: dow.String(),
		DayOfYear:   doy,
		ISOWeek:     isoWeek,
		ISODays:     days,
		LeapYear:    cal.LeapYear(y),
		DaysInMonth: dim,
		DaysInYear:  cal.DaysInYear(y),
	}

	// Quarter and own-rule week are omitted where the variant does not
	// define them.
	if q, err := cal.QuarterOfYear(y, m, d); err == nil {
		info.Quarter = &q
	} else if !calendar.IsNotDefined(err) {
		return nil, err
	}
	if wk, err := cal.WeekOfYear(y, m, d); err == nil {
		info.Week = &wk
	} else if !calendar.IsNotDefined(err) {
		return nil, err
	}

	return info, nil
}

// PlusDate handles GET /api/v1/calendars/{name}/dates/{date}/plus
// with query parameters unit, amount and coerce.
func (h *Handlers) PlusDate(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.lookupCalendar(w, r)
	if !ok {
		return
	}
	date, ok := h.parseDateParam(w, r)
	if !ok {
		return
	}

	var unit calendar.Unit
	switch r.URL.Query().Get("unit") {
	case "months", "":
		unit = calendar.UnitMonths
	case "quarters":
		unit = calendar.UnitQuarters
	default:
		WriteBadRequest(w, fmt.Sprintf("Invalid unit %q: must be months or quarters",
			r.URL.Query().Get("unit")))
		return
	}

	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		WriteBadRequest(w, "Query parameter amount must be an integer")
		return
	}

	coerce := true
	if v := r.URL.Query().Get("coerce"); v != "" {
		coerce, err = strconv.ParseBool(v)
		if err != nil {
			WriteBadRequest(w, "Query parameter coerce must be a boolean")
			return
		}
	}

	if err := cal.ValidDate(date.Year, date.Month, date.Day); err != nil {
		h.writeCalendarError(w, err)
		return
	}

	result, err := cal.Plus(date, unit, amount, coerce)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"calendar": cal.Name(),
		"from":     date,
		"unit":     unit.String(),
		"amount":   amount,
		"coerce":   coerce,
		"result":   result,
		"valid":    cal.ValidDate(result.Year, result.Month, result.Day) == nil,
	})
}

// YearInfo describes one year of a variant.
type YearInfo struct {
	Calendar     string         `json:"calendar"`
	Year         int            `json:"year"`
	Range        calendar.Range `json:"range"`
	DaysInYear   int            `json:"days_in_year"`
	MonthsInYear int            `json:"months_in_year"`
	LeapYear     bool           `json:"leap_year"`
	WeeksInYear  *int           `json:"weeks_in_year,omitempty"`
	LongYear     *bool          `json:"long_year,omitempty"`
}

// GetYear handles GET /api/v1/calendars/{name}/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.lookupCalendar(w, r)
	if !ok {
		return
	}
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}

	rng, err := cal.YearRange(year)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	info := YearInfo{
		Calendar:     cal.Name(),
		Year:         year,
		Range:        rng,
		DaysInYear:   cal.DaysInYear(year),
		MonthsInYear: cal.MonthsInYear(year),
		LeapYear:     cal.LeapYear(year),
	}
	if weeks, err := cal.WeeksInYear(year); err == nil {
		long, _ := cal.LongYear(year)
		info.WeeksInYear = &weeks
		info.LongYear = &long
	} else if !calendar.IsNotDefined(err) {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, info)
}

// GetQuarterRange handles GET /api/v1/calendars/{name}/years/{year}/quarters/{quarter}
func (h *Handlers) GetQuarterRange(w http.ResponseWriter, r *http.Request) {
	h.rangeResponse(w, r, "quarter", func(cal calendar.Calendar, year, quarter int) (calendar.Range, error) {
		return cal.QuarterRange(year, quarter)
	})
}

// GetMonthRange handles GET /api/v1/calendars/{name}/years/{year}/months/{month}
func (h *Handlers) GetMonthRange(w http.ResponseWriter, r *http.Request) {
	h.rangeResponse(w, r, "month", func(cal calendar.Calendar, year, month int) (calendar.Range, error) {
		return cal.MonthRange(year, month)
	})
}

// GetWeekRange handles GET /api/v1/calendars/{name}/years/{year}/weeks/{week}
//
// Out-of-range week numbers carry into the adjacent year, so week 53 of a
// 52-week year answers with week 1 of the next year rather than an error.
func (h *Handlers) GetWeekRange(w http.ResponseWriter, r *http.Request) {
	h.rangeResponse(w, r, "week", func(cal calendar.Calendar, year, week int) (calendar.Range, error) {
		return cal.WeekRange(year, week)
	})
}

func (h *Handlers) rangeResponse(w http.ResponseWriter, r *http.Request, param string,
	fn func(cal calendar.Calendar, year, n int) (calendar.Range, error)) {

	cal, ok := h.lookupCalendar(w, r)
	if !ok {
		return
	}
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}
	n, ok := h.pathInt(w, r, param)
	if !ok {
		return
	}

	rng, err := fn(cal, year, n)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"calendar": cal.Name(),
		"year":     year,
		param:      n,
		"range":    rng,
	})
}

// Convert handles GET /api/v1/convert?from={name}&to={name}&date={y-m-d}
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, ok := calendar.Lookup(q.Get("from"))
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown calendar %q", q.Get("from")))
		return
	}
	to, ok := calendar.Lookup(q.Get("to"))
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown calendar %q", q.Get("to")))
		return
	}

	date, err := parseDate(q.Get("date"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	days, err := from.ToISODays(date.Year, date.Month, date.Day)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}
	converted := to.FromISODays(days)

	WriteSuccess(w, map[string]any{
		"from":     from.Name(),
		"to":       to.Name(),
		"date":     date,
		"result":   converted,
		"iso_days": days,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// datePattern accepts negative years, so "-45-3-15" is the Ides of March,
// 46 BCE in year-zero terms.
var datePattern = regexp.MustCompile(`^(-?\d+)-(\d{1,2})-(\d{1,2})$`)

func parseDate(s string) (calendar.Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return calendar.Date{}, fmt.Errorf("invalid date %q: use Y-M-D, e.g. 2024-1-31 or -45-3-15", s)
	}
	// The year digits can overflow int; month and day are capped at two
	// digits by the pattern, so their parses cannot fail.
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid year in date %q", s)
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return calendar.Date{Year: year, Month: month, Day: day}, nil
}

func (h *Handlers) lookupCalendar(w http.ResponseWriter, r *http.Request) (calendar.Calendar, bool) {
	name := chi.URLParam(r, "name")
	cal, ok := calendar.Lookup(name)
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown calendar %q", name))
		return nil, false
	}
	return cal, true
}

func (h *Handlers) parseDateParam(w http.ResponseWriter, r *http.Request) (calendar.Date, bool) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return calendar.Date{}, false
	}
	return date, true
}

func (h *Handlers) pathInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Path parameter %s must be an integer", key))
		return 0, false
	}
	return v, true
}

// writeCalendarError maps calendar package errors onto HTTP responses.
func (h *Handlers) writeCalendarError(w http.ResponseWriter, err error) {
	var verr *calendar.ValidationError
	if errors.As(err, &verr) {
		details := make([]string, 0, len(verr.Issues))
		for _, issue := range verr.Issues {
			details = append(details, fmt.Sprintf("%s: %s", issue.Key, issue.Reason))
		}
		WriteValidationError(w, fmt.Sprintf("Invalid configuration for calendar %q", verr.Calendar), details)
		return
	}

	var derr *calendar.DomainError
	if errors.As(err, &derr) {
		WriteError(w, http.StatusBadRequest, derr.Error(), "INVALID_DATE")
		return
	}

	if calendar.IsNotDefined(err) {
		WriteError(w, http.StatusBadRequest, err.Error(), "NOT_DEFINED")
		return
	}

	h.logger.Error("unexpected calendar error", slog.Any("error", err))
	WriteInternalError(w, "Internal server error")
}

func isNameConflict(verr *calendar.ValidationError) bool {
	for _, issue := range verr.Issues {
		if issue.Key == "name" && strings.Contains(issue.Reason, "already registered") {
			return true
		}
	}
	return false
}
