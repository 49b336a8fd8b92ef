package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DB is the in-memory index over a loaded corpus. It is read-only after Load
// and safe to share between goroutines by reference.
type DB struct {
	leagues []LeagueInfo
	byID    map[string]leagueRecords
}

// leagueRecords maps season label -> match id -> raw record.
type leagueRecords map[string]map[int64]*RawMatch

// Load reads the whole corpus from the store into memory. Records are read
// exactly once; all queries afterwards walk the in-memory structures.
func Load(s Store) (*DB, error) {
	leagues, err := s.Leagues()
	if err != nil {
		return nil, fmt.Errorf("enumerating leagues: %w", err)
	}

	db := &DB{
		leagues: leagues,
		byID:    make(map[string]leagueRecords),
	}
	for _, league := range leagues {
		seasons, err := s.Seasons(league.ID)
		if err != nil {
			return nil, fmt.Errorf("enumerating seasons for league %s: %w", league.ID, err)
		}
		records := make(leagueRecords)
		for _, season := range seasons {
			ids, err := s.MatchIDs(league.ID, season)
			if err != nil {
				return nil, fmt.Errorf("enumerating matches for %s/%s: %w", league.ID, season,
					err)
			}
			records[season] = make(map[int64]*RawMatch, len(ids))
			for _, id := range ids {
				rec, err := s.Match(league.ID, season, id)
				if err != nil {
					return nil, fmt.Errorf("reading match %d in %s/%s: %w", id, league.ID,
						season, err)
				}
				records[season][id] = rec
			}
		}
		db.byID[league.ID] = records
	}
	return db, nil
}

func (db *DB) Leagues() []LeagueInfo {
	leagues := make([]LeagueInfo, len(db.leagues))
	copy(leagues, db.leagues)
	return leagues
}

// LeagueByName finds a league by case-insensitive display name.
func (db *DB) LeagueByName(name string) (LeagueInfo, bool) {
	for _, league := range db.leagues {
		if strings.EqualFold(league.Name, name) {
			return league, true
		}
	}
	return LeagueInfo{}, false
}

func (db *DB) League(id string) (LeagueInfo, bool) {
	for _, league := range db.leagues {
		if league.ID == id {
			return league, true
		}
	}
	return LeagueInfo{}, false
}

func (db *DB) Seasons(leagueID string) []string {
	records, ok := db.byID[leagueID]
	if !ok {
		return nil
	}
	seasons := make([]string, 0, len(records))
	for season := range records {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)
	return seasons
}

func (db *DB) MatchIDs(leagueID, season string) []int64 {
	records, ok := db.byID[leagueID]
	if !ok {
		return nil
	}
	matches, ok := records[season]
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(matches))
	for id := range matches {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MatchByID scans every league and season for the given id and short-circuits
// on the first hit. Ids are assumed globally unique across the corpus; if
// they are not, whichever record is found first wins.
func (db *DB) MatchByID(id int64) (*RawMatch, bool) {
	for _, records := range db.byID {
		for _, matches := range records {
			if rec, ok := matches[id]; ok {
				return rec, true
			}
		}
	}
	return nil, false
}

// MatchesForTeam returns every raw record in the filtered league/season space
// in which the named team plays, keyed by match id. Name comparison is
// case-insensitive.
func (db *DB) MatchesForTeam(team string, filter Filter) map[int64]*RawMatch {
	team = strings.ToLower(team)
	found := make(map[int64]*RawMatch)
	for leagueID, records := range db.byID {
		if !filter.allowsLeague(leagueID) {
			continue
		}
		for season, matches := range records {
			if !filter.allowsSeason(season) {
				continue
			}
			for id, rec := range matches {
				home := strings.ToLower(rec.HomeTeam.Name)
				away := strings.ToLower(rec.AwayTeam.Name)
				if team == home || team == away {
					found[id] = rec
				}
			}
		}
	}
	return found
}

// Loader memoizes a single corpus load so one DB can be shared by every
// consumer in the process. Concurrent first use is collapsed into one read.
type Loader struct {
	store Store
	once  sync.Once
	db    *DB
	err   error
}

func NewLoader(s Store) *Loader {
	return &Loader{store: s}
}

func (l *Loader) DB() (*DB, error) {
	l.once.Do(func() {
		l.db, l.err = Load(l.store)
	})
	return l.db, l.err
}
