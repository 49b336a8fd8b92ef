package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrLeagueNotFound = errors.New("league not found")
)

type LeagueInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Store enumerates a persisted corpus of raw match records grouped by league
// and season. Implementations may be backed by files, a database or an API;
// the index engine only walks this surface.
type Store interface {
	Leagues() ([]LeagueInfo, error)
	Seasons(leagueID string) ([]string, error)
	MatchIDs(leagueID, season string) ([]int64, error)
	Match(leagueID, season string, id int64) (*RawMatch, error)
}

// Filter restricts a team query to a subset of leagues and/or seasons. A nil
// or empty slice means no restriction.
type Filter struct {
	Leagues []string
	Seasons []string
}

func (f Filter) allowsLeague(id string) bool {
	if len(f.Leagues) == 0 {
		return true
	}
	for _, l := range f.Leagues {
		if l == id {
			return true
		}
	}
	return false
}

func (f Filter) allowsSeason(label string) bool {
	if len(f.Seasons) == 0 {
		return true
	}
	for _, s := range f.Seasons {
		if s == label {
			return true
		}
	}
	return false
}
