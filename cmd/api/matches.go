package main

import (
	"RugbyStatsApi/internal/rugby"
	"errors"
	"net/http"
	"time"
)

type teamResponse struct {
	Name   string  `json:"name"`
	Abbrev string  `json:"abbrev"`
	Score  float64 `json:"score"`
}

type eventResponse struct {
	Type        string `json:"type"`
	Minute      int    `json:"minute"`
	AddedMinute int    `json:"added_minute,omitempty"`
	Text        string `json:"text,omitempty"`
	HomeScore   *int   `json:"home_score,omitempty"`
	AwayScore   *int   `json:"away_score,omitempty"`
}

type playerResponse struct {
	Name     string `json:"name"`
	ID       int64  `json:"id"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	Captain  bool   `json:"captain,omitempty"`
	Minutes  *int   `json:"minutes_played,omitempty"`
}

type matchResponse struct {
	ID      int64                       `json:"id"`
	Date    time.Time                   `json:"date"`
	Home    teamResponse                `json:"home"`
	Away    teamResponse                `json:"away"`
	Stats   rugby.StatMap               `json:"stats"`
	Events  []eventResponse             `json:"events"`
	Rosters map[string][]playerResponse `json:"rosters"`
}

func newMatchResponse(match *rugby.Match) matchResponse {
	response := matchResponse{
		ID:      match.ID,
		Date:    match.Date,
		Home:    teamResponse(match.Home),
		Away:    teamResponse(match.Away),
		Stats:   match.Stats,
		Events:  make([]eventResponse, 0, len(match.Events)),
		Rosters: make(map[string][]playerResponse, 2),
	}
	for _, event := range match.Events {
		response.Events = append(response.Events, eventResponse{
			Type:        event.Type.String(),
			Minute:      event.Minute,
			AddedMinute: event.AddedMinute,
			Text:        event.Text,
			HomeScore:   event.HomeScore,
			AwayScore:   event.AwayScore,
		})
	}
	for _, team := range match.TeamNames() {
		roster := match.Roster(team)
		players := make([]playerResponse, 0, len(roster))
		for _, player := range roster {
			p := playerResponse{
				Name:     player.Name,
				ID:       player.ID,
				Number:   player.Number,
				Position: player.Position,
				Captain:  player.Captain,
			}
			if minutes, ok := player.Minutes(); ok {
				minutes := minutes
				p.Minutes = &minutes
			}
			players = append(players, p)
		}
		response.Rosters[team] = players
	}
	return response
}

func (app *application) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	match, err := rugby.MatchFromID(app.db, id)
	if err != nil {
		// a record that fails to parse is reported the same way as a miss
		if errors.Is(err, rugby.ErrMatchNotFound) || errors.Is(err, rugby.ErrMalformedRecord) ||
			errors.Is(err, rugby.ErrMalformedEvent) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"match": newMatchResponse(match)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
