package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/polycal/polycal/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /api/v1/calendars
//	POST /api/v1/calendars                                          (admin)
//	GET  /api/v1/calendars/{name}
//	DELETE /api/v1/calendars/{name}                                 (admin)
//	GET  /api/v1/calendars/{name}/dates/{date}
//	GET  /api/v1/calendars/{name}/dates/{date}/plus
//	GET  /api/v1/calendars/{name}/years/{year}
//	GET  /api/v1/calendars/{name}/years/{year}/quarters/{quarter}
//	GET  /api/v1/calendars/{name}/years/{year}/months/{month}
//	GET  /api/v1/calendars/{name}/years/{year}/weeks/{week}
//	GET  /api/v1/convert
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(logger))
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	adminOnly := AdminAuthMiddleware(cfg, logger)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert", handlers.Convert)

		r.Route("/calendars", func(r chi.Router) {
			r.Get("/", handlers.ListCalendars)
			r.With(adminOnly).Post("/", handlers.CreateCalendar)

			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", handlers.GetCalendar)
				r.With(adminOnly).Delete("/", handlers.DeleteCalendar)

				r.Get("/dates/{date}", handlers.GetDateInfo)
				r.Get("/dates/{date}/plus", handlers.PlusDate)

				r.Route("/years/{year}", func(r chi.Router) {
					r.Get("/", handlers.GetYear)
					r.Get("/quarters/{quarter}", handlers.GetQuarterRange)
					r.Get("/months/{month}", handlers.GetMonthRange)
					r.Get("/weeks/{week}", handlers.GetWeekRange)
				})
			})
		})
	})

	return r
}
