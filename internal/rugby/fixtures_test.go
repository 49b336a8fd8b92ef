package rugby

import (
	"RugbyStatsApi/internal/store"
	"fmt"
)

// testRawMatch builds a well-formed raw record for Leinster v Munster,
// 2018-03-17, covering every stat group shape the normalizer handles.
func testRawMatch() *store.RawMatch {
	return &store.RawMatch{
		HomeTeam: store.RawTeam{Name: "Leinster", Abbrev: "LEI", Score: "23"},
		AwayTeam: store.RawTeam{Name: "Munster", Abbrev: "MUN", Score: "17"},
		ISODate:  "2018-03-17T14:45Z",
		StatGroups: store.RawStatGroups{
			Visualized: []store.RawStatEntry{
				{Text: "Tackles", HomeValue: "100", AwayValue: "90"},
				{Text: "Missed Tackles", HomeValue: "10", AwayValue: "5"},
				{Text: "Possession", HomeValue: "56%", AwayValue: "44%"},
			},
			Tabular: []store.RawStatEntry{
				{Text: "Metres Run", HomeValue: "302", AwayValue: "256"},
			},
			Discipline: store.RawDiscipline{
				Cards: []store.RawStatEntry{
					{Text: "Yellow Cards", HomeValue: "1", AwayValue: "0"},
				},
				Totals: store.RawPenaltyTotals{HomeTotal: "9", AwayTotal: "11"},
			},
			ScoreEvents: []store.RawStatEntry{
				{Text: "Tries", HomeValue: "3", AwayValue: "2"},
			},
			Attacking: []store.RawStatEntry{
				{Text: "Rucks Won", HomeValue: "91 / 94", AwayValue: "70 / 76"},
				{Text: "Kicks From/Hand", HomeValue: "23m / 31m", AwayValue: "19m / 27m"},
				{Text: "Passes", HomeValue: "143", AwayValue: "121"},
			},
			SetPieces: []store.RawSetPiece{
				{Text: "Scrums Won", HomeWon: "6", AwayWon: "5", HomeTotal: "7", AwayTotal: "6"},
				{Text: "Lineouts Won", HomeWon: "11", AwayWon: "9", HomeTotal: "13",
					AwayTotal: "12"},
			},
		},
		CommentaryEvents: []store.RawEvent{
			{Type: 9, Time: "0'", Text: "Kick off"},
			{Type: 1, Time: "11'", Text: "Try - James Lowe", HomeScore: intp(5), AwayScore: intp(0)},
			{Type: 2, Time: "12'", Text: "Conversion - Johnny Sexton", HomeScore: intp(7),
				AwayScore: intp(0)},
			{Type: 7, Time: "55'", Text: "Cian Healy comes off"},
			{Type: 8, Time: "55'", Text: "Dave Kilcoyne comes on"},
			{Type: 12, Time: "80+3'", Text: "Full time"},
		},
		Lineup: store.RawLineup{
			Home: store.RawSquad{
				Starters: []store.RawPlayer{
					testRawPlayer("Cian Healy", 101, 1, map[string]float64{
						"tackles": 10, "missed tackles": 2, "tries": 0,
					}),
					testRawPlayer("Johnny Sexton", 102, 10, map[string]float64{
						"tackles": 8, "missed tackles": 1, "tries": 0,
					}),
				},
				Reserves: []store.RawPlayer{
					testRawPlayer("Dave Kilcoyne", 103, 17, map[string]float64{
						"tackles": 4, "tries": 0,
					}),
				},
			},
			Away: store.RawSquad{
				Starters: []store.RawPlayer{
					testRawPlayer("Peter O'Mahony", 201, 6, map[string]float64{
						"tackles": 15, "missed tackles": 1, "tries": 1,
					}),
				},
				Reserves: nil,
			},
		},
	}
}

func testRawPlayer(name string, id int64, number int, stats map[string]float64) store.RawPlayer {
	raw := store.RawPlayer{
		Name:       name,
		ID:         id,
		Number:     store.RawValue(fmt.Sprintf("%d", number)),
		Position:   "XV",
		EventTimes: map[string][]string{},
		Stats:      make(map[string]store.RawPlayerStat, len(stats)),
	}
	for stat, value := range stats {
		raw.Stats[stat] = store.RawPlayerStat{
			Name:  stat,
			Value: store.RawValue(fmt.Sprintf("%g", value)),
		}
	}
	return raw
}

func intp(v int) *int {
	return &v
}

// testStore is an in-memory store.Store for index tests.
type testStore struct {
	leagues []store.LeagueInfo
	data    map[string]map[string]map[int64]*store.RawMatch
}

func newTestStore() *testStore {
	return &testStore{data: make(map[string]map[string]map[int64]*store.RawMatch)}
}

func (s *testStore) add(leagueID, leagueName, season string, id int64, raw *store.RawMatch) {
	if _, ok := s.data[leagueID]; !ok {
		s.data[leagueID] = make(map[string]map[int64]*store.RawMatch)
		s.leagues = append(s.leagues, store.LeagueInfo{ID: leagueID, Name: leagueName})
	}
	if _, ok := s.data[leagueID][season]; !ok {
		s.data[leagueID][season] = make(map[int64]*store.RawMatch)
	}
	s.data[leagueID][season][id] = raw
}

func (s *testStore) Leagues() ([]store.LeagueInfo, error) {
	return s.leagues, nil
}

func (s *testStore) Seasons(leagueID string) ([]string, error) {
	seasons := make([]string, 0)
	for season := range s.data[leagueID] {
		seasons = append(seasons, season)
	}
	return seasons, nil
}

func (s *testStore) MatchIDs(leagueID, season string) ([]int64, error) {
	ids := make([]int64, 0)
	for id := range s.data[leagueID][season] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *testStore) Match(leagueID, season string, id int64) (*store.RawMatch, error) {
	raw, ok := s.data[leagueID][season][id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return raw, nil
}

// testDB loads a one-league corpus holding the given match ids, every id
// mapped to its own copy of the fixture record dated by the dates slice when
// supplied.
func testDB(ids []int64, dates []string) *store.DB {
	ts := newTestStore()
	for i, id := range ids {
		raw := testRawMatch()
		if dates != nil {
			raw.ISODate = dates[i]
		}
		ts.add("pro14", "Pro 14", "1718", id, raw)
	}
	db, err := store.Load(ts)
	if err != nil {
		panic(err)
	}
	return db
}
