package main

import (
	"RugbyStatsApi/internal/rugby"
	"RugbyStatsApi/internal/validator"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues := app.db.Leagues()

	type leagueResponse struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Seasons []string `json:"seasons"`
	}
	response := make([]leagueResponse, 0, len(leagues))
	for _, league := range leagues {
		response = append(response, leagueResponse{
			ID:      league.ID,
			Name:    league.Name,
			Seasons: app.db.Seasons(league.ID),
		})
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"leagues": response}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetLeagueMatches(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "id")

	v := validator.New()
	qs := r.URL.Query()
	season := app.readString(qs, "season", "")
	start := app.readDate(qs, "start", v)
	end := app.readDate(qs, "end", v)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// A date window needs materialized matches; a bare id listing does not.
	eager := !start.IsZero() || !end.IsZero()
	league, err := rugby.LeagueFromID(app.db, leagueID, eager)
	if err != nil {
		if errors.Is(err, rugby.ErrLeagueNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	if !eager {
		data := envelope{
			"league":    league.Name,
			"match_ids": league.MatchIDs(season),
		}
		if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	matches := league.MatchesInRange(start, end)
	if season != "" {
		collection, ok := league.Season(season)
		if !ok {
			app.notFoundResponse(w, r)
			return
		}
		if filtered, ok := collection.InRange(start, end); ok {
			matches = filtered
		}
	}

	response := make([]matchResponse, 0, matches.Len())
	for _, match := range matches.Matches() {
		response = append(response, newMatchResponse(match))
	}
	data := envelope{
		"league":  league.Name,
		"matches": response,
	}
	if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
