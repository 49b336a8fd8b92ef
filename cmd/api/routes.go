package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedResponse)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// League Endpoints
	router.Route("/v1/leagues", func(router chi.Router) {
		router.Get("/", app.ListLeagues)
		router.Get("/{id}/matches", app.GetLeagueMatches)
	})

	// Match Endpoints
	router.Get("/v1/matches/{id}", app.GetMatch)

	// Team Endpoints
	router.Route("/v1/teams/{name}", func(router chi.Router) {
		router.Get("/matches", app.ListTeamMatches)
		router.Get("/stats/{stat}/average", app.GetTeamStatAverage)
	})

	// Leaderboard Endpoints
	router.Get("/v1/leaders", app.GetLeagueLeaders)

	return router
}
