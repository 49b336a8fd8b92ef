package rugby

import (
	"sort"
	"time"

	"RugbyStatsApi/internal/store"
)

// MatchCollection is the shared surface of the eager and lazy match
// collections. The lazy variant holds ids only, so Teams and InRange report
// ok=false rather than silently returning empty results.
type MatchCollection interface {
	Len() int
	MatchIDs() []int64
	Teams() ([]string, bool)
	InRange(start, end time.Time) (*MatchList, bool)
}

// MatchList is the eager collection: every id is materialized into a Match.
type MatchList struct {
	matches map[int64]*Match
}

// NewMatchList materializes the given ids against the index. Ids that
// resolve to no record, or whose record fails to parse, are omitted; the
// list's length reflects only the matches that loaded.
func NewMatchList(db *store.DB, ids []int64) *MatchList {
	list := &MatchList{matches: make(map[int64]*Match, len(ids))}
	for _, id := range ids {
		match, err := MatchFromID(db, id)
		if err != nil {
			continue
		}
		list.matches[id] = match
	}
	return list
}

// MatchListForTeam builds the eager collection of every match the named team
// plays in, optionally restricted by league and season.
func MatchListForTeam(db *store.DB, team string, filter store.Filter) *MatchList {
	found := db.MatchesForTeam(team, filter)
	list := &MatchList{matches: make(map[int64]*Match, len(found))}
	for id, raw := range found {
		match, err := NewMatch(id, raw)
		if err != nil {
			continue
		}
		list.matches[id] = match
	}
	return list
}

func (l *MatchList) Len() int {
	return len(l.matches)
}

// MatchIDs returns the ids in ascending order.
func (l *MatchList) MatchIDs() []int64 {
	ids := make([]int64, 0, len(l.matches))
	for id := range l.matches {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Matches returns the materialized matches in ascending id order. The slice
// is built fresh per call, so each traversal restarts from the beginning.
func (l *MatchList) Matches() []*Match {
	matches := make([]*Match, 0, len(l.matches))
	for _, id := range l.MatchIDs() {
		matches = append(matches, l.matches[id])
	}
	return matches
}

// Match returns the collection's entry for an id.
func (l *MatchList) Match(id int64) (*Match, bool) {
	match, ok := l.matches[id]
	return match, ok
}

// Merge returns a new collection holding both lists' matches. On an id held
// by both, the other (right-hand) list's entry wins.
func (l *MatchList) Merge(other *MatchList) *MatchList {
	merged := &MatchList{matches: make(map[int64]*Match, len(l.matches)+other.Len())}
	for id, match := range l.matches {
		merged.matches[id] = match
	}
	for id, match := range other.matches {
		merged.matches[id] = match
	}
	return merged
}

// Teams returns the distinct (lowercase) names of every team playing in the
// collection, sorted.
func (l *MatchList) Teams() ([]string, bool) {
	seen := make(map[string]bool)
	for _, match := range l.matches {
		seen[match.Home.Name] = true
		seen[match.Away.Name] = true
	}
	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams, true
}

// InRange returns a new collection holding the matches dated strictly
// between start and end, both exclusive. A zero bound is unbounded on that
// side.
func (l *MatchList) InRange(start, end time.Time) (*MatchList, bool) {
	filtered := &MatchList{matches: make(map[int64]*Match)}
	for id, match := range l.matches {
		if !start.IsZero() && !match.Date.After(start) {
			continue
		}
		if !end.IsZero() && !match.Date.Before(end) {
			continue
		}
		filtered.matches[id] = match
	}
	return filtered, true
}

// MatchIDList is the lazy collection: it knows only which ids exist, trading
// completeness for load cost.
type MatchIDList struct {
	ids map[int64]struct{}
}

func NewMatchIDList(ids []int64) *MatchIDList {
	list := &MatchIDList{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		list.ids[id] = struct{}{}
	}
	return list
}

func (l *MatchIDList) Len() int {
	return len(l.ids)
}

// MatchIDs returns the ids in ascending order.
func (l *MatchIDList) MatchIDs() []int64 {
	ids := make([]int64, 0, len(l.ids))
	for id := range l.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Teams is not available without match data.
func (l *MatchIDList) Teams() ([]string, bool) {
	return nil, false
}

// InRange is not available without match data.
func (l *MatchIDList) InRange(start, end time.Time) (*MatchList, bool) {
	return nil, false
}
