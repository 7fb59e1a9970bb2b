package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpauls02/F1StatFinder-backend/handlers"
)

type Handlers struct {
	Schedule  *handlers.ScheduleHandler
	Standings *handlers.StandingsHandler
	Stats     *handlers.StatsHandler
	Results   *handlers.ResultsHandler
	Champions *handlers.ChampionsHandler
}

func InitRoutes(h Handlers, corsOrigins []string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/f1", func(r chi.Router) {
		r.Get("/get_seasons", h.Schedule.GetSeasons)
		r.Get("/get_circuits", h.Schedule.GetCircuits)
		r.Get("/get_race_calendar", h.Schedule.GetRaceCalendar)
		r.Get("/get_race_calendar/{year}", h.Schedule.GetRaceCalendarByYear)
		r.Get("/get_next_event", h.Schedule.GetNextEvent)
		r.Get("/get_next_event_countdown", h.Schedule.GetNextEventCountdown)

		r.Get("/get_driver_standings", h.Standings.GetDriverStandings)
		r.Get("/get_constructor_standings", h.Standings.GetConstructorStandings)
		r.Get("/get_driver_points/{year}", h.Standings.GetDriverPoints)
		r.Get("/get_constructor_points/{year}", h.Standings.GetConstructorPoints)

		r.Get("/get_driver_stats", h.Stats.GetDriverStats)
		r.Get("/get_constructor_stats", h.Stats.GetConstructorStats)

		r.Get("/get_race_results/{year}/{round}", h.Results.GetRaceResults)
		r.Get("/get_sprint_results/{year}/{round}", h.Results.GetSprintResults)
		r.Get("/get_qualifying_results/{year}/{round}", h.Results.GetQualifyingResults)
		r.Get("/get_drivers", h.Results.GetDrivers)

		r.Get("/get_previous_champions", h.Champions.GetPreviousChampions)
		r.Get("/get_recent_winners", h.Champions.GetRecentWinners)
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	return router
}
