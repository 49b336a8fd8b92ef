package rugby

import (
	"errors"
	"fmt"
	"sort"

	"RugbyStatsApi/internal/store"
)

var ErrNoMatches = errors.New("no matches found")

// PlayerStatLine is one row of a player leaderboard.
type PlayerStatLine struct {
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
}

// TeamStatLine is one row of a team leaderboard.
type TeamStatLine struct {
	Team  string  `json:"team"`
	Value float64 `json:"value"`
}

// AverageStatForTeam averages a named stat over every match the team plays
// in the filtered league/season space.
func AverageStatForTeam(db *store.DB, team, stat string, filter store.Filter) (float64, error) {
	list := MatchListForTeam(db, team, filter)
	if list.Len() == 0 {
		return 0, fmt.Errorf("%w: team %q", ErrNoMatches, team)
	}
	total, count := 0.0, 0
	for _, match := range list.Matches() {
		value, ok := match.StatForTeam(team, stat)
		if !ok {
			continue
		}
		total += value
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: stat %q for team %q", ErrNoMatches, stat, team)
	}
	return total / float64(count), nil
}

// AveragePointsForTeam averages points scored by the team.
func AveragePointsForTeam(db *store.DB, team string, filter store.Filter) (float64, error) {
	return AverageStatForTeam(db, team, "points", filter)
}

// PlayerStatLeaders lists every player in the collection with their value
// for the stat in each match, sorted descending. Players without the stat
// are skipped.
func PlayerStatLeaders(list *MatchList, stat string) []PlayerStatLine {
	lines := make([]PlayerStatLine, 0)
	for _, match := range list.Matches() {
		for _, team := range match.TeamNames() {
			for _, player := range match.Roster(team) {
				value, ok := player.Stat(stat)
				if !ok {
					continue
				}
				lines = append(lines, PlayerStatLine{
					Player: player.Name,
					Team:   team,
					Value:  value,
				})
			}
		}
	}
	sortLinesDescending(lines)
	return lines
}

// TeamStatLeaders lists each team's value for the stat in each match of the
// collection, sorted descending.
func TeamStatLeaders(list *MatchList, stat string) []TeamStatLine {
	lines := make([]TeamStatLine, 0)
	for _, match := range list.Matches() {
		for _, team := range match.TeamNames() {
			value, ok := match.StatForTeam(team, stat)
			if !ok {
				continue
			}
			lines = append(lines, TeamStatLine{Team: team, Value: value})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Value > lines[j].Value })
	return lines
}

// LeagueStatLeaders totals a stat per player over one season of a league and
// returns the leaderboard sorted descending.
func LeagueStatLeaders(db *store.DB, leagueName, season, stat string) ([]PlayerStatLine, error) {
	league, err := LeagueFromName(db, leagueName, true)
	if err != nil {
		return nil, err
	}
	collection, ok := league.Season(season)
	if !ok {
		return nil, fmt.Errorf("%w: season %q of %q", ErrNoMatches, season, leagueName)
	}
	matches, isEager := collection.(*MatchList)
	if !isEager {
		return nil, fmt.Errorf("%w: season %q of %q", ErrNoMatches, season, leagueName)
	}

	totals := make(map[int64]*PlayerStatLine)
	for _, match := range matches.Matches() {
		for _, team := range match.TeamNames() {
			for _, player := range match.Roster(team) {
				value, ok := player.Stat(stat)
				if !ok {
					continue
				}
				if line, seen := totals[player.ID]; seen {
					line.Value += value
				} else {
					totals[player.ID] = &PlayerStatLine{
						Player: player.Name,
						Team:   team,
						Value:  value,
					}
				}
			}
		}
	}

	lines := make([]PlayerStatLine, 0, len(totals))
	for _, line := range totals {
		lines = append(lines, *line)
	}
	sortLinesDescending(lines)
	return lines, nil
}

func sortLinesDescending(lines []PlayerStatLine) {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Value > lines[j].Value })
}
