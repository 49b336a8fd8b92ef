package main

import (
	"RugbyStatsApi/internal/rugby"
	"RugbyStatsApi/internal/validator"
	"errors"
	"net/http"
)

func (app *application) GetLeagueLeaders(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	league := app.readString(qs, "league", "")
	season := app.readString(qs, "season", "")
	stat := app.readString(qs, "stat", "")

	v := validator.New()
	v.Check(league != "", "league", "must be provided")
	v.Check(season != "", "season", "must be provided")
	v.Check(stat != "", "stat", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	leaders, err := rugby.LeagueStatLeaders(app.db, league, season, stat)
	if err != nil {
		if errors.Is(err, rugby.ErrLeagueNotFound) || errors.Is(err, rugby.ErrNoMatches) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"league":  league,
		"season":  season,
		"stat":    stat,
		"leaders": leaders,
	}
	if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
