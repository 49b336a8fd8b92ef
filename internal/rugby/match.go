package rugby

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"RugbyStatsApi/internal/store"
)

var ErrMatchNotFound = errors.New("match not found")

// Side tags a team's designation within one match.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

// Team is one side's identity in a match. Name is stored lowercase for
// case-insensitive lookup; Abbrev keeps its source casing.
type Team struct {
	Name   string
	Abbrev string
	Score  float64
}

// Match is the canonical model of one match: identity, date, normalized
// stats, the event timeline and both rosters. It is immutable once built.
type Match struct {
	ID     int64
	Date   time.Time
	Home   Team
	Away   Team
	Stats  StatMap
	Events EventList

	// rosters is keyed by lowercase team name; each roster holds starters
	// followed by reserves in source order.
	rosters map[string]PlayerList
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05Z",
}

func parseMatchDate(iso string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, iso); err == nil {
			return date.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad date %q", ErrMalformedRecord, iso)
}

// NewMatch builds a Match from a raw record. Construction fails closed: any
// malformed field fails the whole match, so callers never see a partially
// built one.
func NewMatch(id int64, raw *store.RawMatch) (*Match, error) {
	date, err := parseMatchDate(raw.ISODate)
	if err != nil {
		return nil, err
	}
	homeScore, err := raw.HomeTeam.Score.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: home score %q", ErrMalformedRecord, raw.HomeTeam.Score)
	}
	awayScore, err := raw.AwayTeam.Score.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: away score %q", ErrMalformedRecord, raw.AwayTeam.Score)
	}

	stats, err := NormalizeStats(raw)
	if err != nil {
		return nil, err
	}
	events, err := EventListFromRaw(raw.CommentaryEvents)
	if err != nil {
		return nil, err
	}

	m := &Match{
		ID:   id,
		Date: date,
		Home: Team{
			Name:   strings.ToLower(raw.HomeTeam.Name),
			Abbrev: raw.HomeTeam.Abbrev,
			Score:  homeScore,
		},
		Away: Team{
			Name:   strings.ToLower(raw.AwayTeam.Name),
			Abbrev: raw.AwayTeam.Abbrev,
			Score:  awayScore,
		},
		Stats:   stats,
		Events:  events,
		rosters: make(map[string]PlayerList, 2),
	}

	homeRoster, err := NewPlayerList(fullSquad(raw.Lineup.Home), events)
	if err != nil {
		return nil, err
	}
	awayRoster, err := NewPlayerList(fullSquad(raw.Lineup.Away), events)
	if err != nil {
		return nil, err
	}
	m.rosters[m.Home.Name] = homeRoster
	m.rosters[m.Away.Name] = awayRoster
	return m, nil
}

func fullSquad(squad store.RawSquad) []store.RawPlayer {
	full := make([]store.RawPlayer, 0, len(squad.Starters)+len(squad.Reserves))
	full = append(full, squad.Starters...)
	full = append(full, squad.Reserves...)
	return full
}

// MatchFromID fetches the raw record from the index and builds the match. An
// unknown id yields ErrMatchNotFound; a malformed record fails the same way
// a miss does, wrapped in ErrMalformedRecord.
func MatchFromID(db *store.DB, id int64) (*Match, error) {
	raw, ok := db.MatchByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMatchNotFound, id)
	}
	return NewMatch(id, raw)
}

func (m *Match) String() string {
	return fmt.Sprintf("%s v %s - %s", m.Home.Name, m.Away.Name,
		m.Date.Format("2006-01-02 15:04"))
}

// StatHeaders returns the sorted canonical stat names of the match.
func (m *Match) StatHeaders() []string {
	headers := make([]string, 0, len(m.Stats))
	for name := range m.Stats {
		headers = append(headers, name)
	}
	sort.Strings(headers)
	return headers
}

// Side reports whether the named team plays home or away in this match,
// case-insensitive.
func (m *Match) Side(team string) (Side, bool) {
	switch strings.ToLower(team) {
	case m.Home.Name:
		return SideHome, true
	case m.Away.Name:
		return SideAway, true
	}
	return 0, false
}

func (m *Match) IsTeamPlaying(team string) bool {
	_, ok := m.Side(team)
	return ok
}

// Opposition returns the other team's name.
func (m *Match) Opposition(team string) (string, bool) {
	side, ok := m.Side(team)
	if !ok {
		return "", false
	}
	if side == SideHome {
		return m.Away.Name, true
	}
	return m.Home.Name, true
}

// StatForTeam returns the named stat's value for the given team's side.
func (m *Match) StatForTeam(team, stat string) (float64, bool) {
	value, ok := m.Stats[strings.ToLower(stat)]
	if !ok {
		return 0, false
	}
	side, ok := m.Side(team)
	if !ok {
		return 0, false
	}
	if side == SideHome {
		return value.Home, true
	}
	return value.Away, true
}

func (m *Match) StatForOpposition(team, stat string) (float64, bool) {
	opposition, ok := m.Opposition(team)
	if !ok {
		return 0, false
	}
	return m.StatForTeam(opposition, stat)
}

// Roster returns the players for the named team, starters then reserves.
func (m *Match) Roster(team string) PlayerList {
	return m.rosters[strings.ToLower(team)]
}

// TeamNames returns both teams' stored (lowercase) names, home first.
func (m *Match) TeamNames() []string {
	return []string{m.Home.Name, m.Away.Name}
}

// PlayerInGame scans both rosters for an exact player name and reports the
// team they play for.
func (m *Match) PlayerInGame(name string) (string, bool) {
	for team, roster := range m.rosters {
		if roster.ByName(name) != nil {
			return team, true
		}
	}
	return "", false
}

// Player finds a player by exact name. An empty team searches both rosters;
// a team name not in the match finds nothing.
func (m *Match) Player(name, team string) *Player {
	if team != "" {
		return m.Roster(team).ByName(name)
	}
	for _, roster := range m.rosters {
		if player := roster.ByName(name); player != nil {
			return player
		}
	}
	return nil
}
