package main

import (
	"RugbyStatsApi/internal/rugby"
	"RugbyStatsApi/internal/store"
	"RugbyStatsApi/internal/validator"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "name")

	qs := r.URL.Query()
	filter := store.Filter{
		Leagues: app.readCSV(qs, "leagues", nil),
		Seasons: app.readCSV(qs, "seasons", nil),
	}

	matches := rugby.MatchListForTeam(app.db, team, filter)
	response := make([]matchResponse, 0, matches.Len())
	for _, match := range matches.Matches() {
		response = append(response, newMatchResponse(match))
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"matches": response}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTeamStatAverage(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "name")
	stat := chi.URLParam(r, "stat")

	v := validator.New()
	v.Check(team != "", "name", "must be provided")
	v.Check(stat != "", "stat", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	qs := r.URL.Query()
	filter := store.Filter{
		Leagues: app.readCSV(qs, "leagues", nil),
		Seasons: app.readCSV(qs, "seasons", nil),
	}

	average, err := rugby.AverageStatForTeam(app.db, team, stat, filter)
	if err != nil {
		if errors.Is(err, rugby.ErrNoMatches) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"team":    team,
		"stat":    stat,
		"average": average,
	}
	if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
