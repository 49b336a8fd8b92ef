package rugby

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"RugbyStatsApi/internal/store"
)

var ErrLeagueNotFound = errors.New("league not found")

// League maps each of a competition's seasons to a match collection. Whether
// the seasons hold full matches or bare ids is fixed at construction.
type League struct {
	ID   string
	Name string

	seasons map[string]MatchCollection
}

// NewLeague builds a league from season id listings. With eager set, every
// id is materialized into a Match up front; otherwise seasons hold ids only.
func NewLeague(db *store.DB, id, name string, seasonIDs map[string][]int64,
	eager bool) *League {
	league := &League{
		ID:      id,
		Name:    name,
		seasons: make(map[string]MatchCollection, len(seasonIDs)),
	}
	for season, ids := range seasonIDs {
		if eager {
			league.seasons[season] = NewMatchList(db, ids)
		} else {
			league.seasons[season] = NewMatchIDList(ids)
		}
	}
	return league
}

// LeagueFromName finds a configured league by case-insensitive name and
// builds it from the corpus.
func LeagueFromName(db *store.DB, name string, eager bool) (*League, error) {
	info, ok := db.LeagueByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLeagueNotFound, name)
	}
	return LeagueFromID(db, info.ID, eager)
}

// LeagueFromID builds a league from the corpus by league id.
func LeagueFromID(db *store.DB, id string, eager bool) (*League, error) {
	info, ok := db.League(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLeagueNotFound, id)
	}
	seasonIDs := make(map[string][]int64)
	for _, season := range db.Seasons(id) {
		seasonIDs[season] = db.MatchIDs(id, season)
	}
	return NewLeague(db, info.ID, info.Name, seasonIDs, eager), nil
}

// Seasons returns the league's season labels, sorted.
func (l *League) Seasons() []string {
	seasons := make([]string, 0, len(l.seasons))
	for season := range l.seasons {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)
	return seasons
}

// Season returns one season's collection.
func (l *League) Season(label string) (MatchCollection, bool) {
	collection, ok := l.seasons[label]
	return collection, ok
}

// scopedSeasons returns the single named season, or all of them for "".
func (l *League) scopedSeasons(season string) []string {
	if season != "" {
		return []string{season}
	}
	return l.Seasons()
}

// MatchIDs returns the ids of one season, or of every season for "".
func (l *League) MatchIDs(season string) []int64 {
	var ids []int64
	for _, label := range l.scopedSeasons(season) {
		if collection, ok := l.seasons[label]; ok {
			ids = append(ids, collection.MatchIDs()...)
		}
	}
	return ids
}

// ContainsTeam reports whether the team plays in the league, optionally
// scoped to one season. Lazy seasons hold no team data and contribute
// nothing.
func (l *League) ContainsTeam(team, season string) bool {
	for _, label := range l.scopedSeasons(season) {
		collection, ok := l.seasons[label]
		if !ok {
			continue
		}
		teams, ok := collection.Teams()
		if !ok {
			continue
		}
		for _, name := range teams {
			if name == strings.ToLower(team) {
				return true
			}
		}
	}
	return false
}

// MatchesInRange merges every season's date-filtered matches into one eager
// collection. Bounds follow MatchList.InRange; lazy seasons contribute
// nothing.
func (l *League) MatchesInRange(start, end time.Time) *MatchList {
	merged := &MatchList{matches: make(map[int64]*Match)}
	for _, label := range l.Seasons() {
		filtered, ok := l.seasons[label].InRange(start, end)
		if !ok {
			continue
		}
		merged = merged.Merge(filtered)
	}
	return merged
}
