package rugby

import (
	"errors"
	"fmt"
	"strings"

	"RugbyStatsApi/internal/store"
)

var ErrMalformedRecord = errors.New("malformed match record")

// Stat is one named quantity with a value per side.
type Stat struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// StatMap is the canonical stat mapping for one match. Keys are lowercase;
// later groups overwrite earlier ones on collision.
type StatMap map[string]Stat

// NormalizeStats folds the scattered stat groups of a raw record into one
// flat canonical map. The groups each need a different rule: plain home/away
// pairs, the discipline penalty totals, slash-compound attacking entries and
// the won/total set pieces. The tackles entry is adjusted afterwards so it
// counts completed tackles only.
func NormalizeStats(raw *store.RawMatch) (StatMap, error) {
	stats := make(StatMap)

	homeScore, err := raw.HomeTeam.Score.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: home score %q", ErrMalformedRecord, raw.HomeTeam.Score)
	}
	awayScore, err := raw.AwayTeam.Score.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: away score %q", ErrMalformedRecord, raw.AwayTeam.Score)
	}
	stats["points"] = Stat{Home: homeScore, Away: awayScore}

	groups := raw.StatGroups
	simple := make([]store.RawStatEntry, 0,
		len(groups.Visualized)+len(groups.Tabular)+len(groups.Discipline.Cards)+
			len(groups.ScoreEvents))
	simple = append(simple, groups.Visualized...)
	simple = append(simple, groups.Tabular...)
	simple = append(simple, groups.Discipline.Cards...)
	simple = append(simple, groups.ScoreEvents...)
	for _, entry := range simple {
		if err := addSimpleStat(stats, entry); err != nil {
			return nil, err
		}
	}

	homePens, err := statValue(groups.Discipline.Totals.HomeTotal)
	if err != nil {
		return nil, fmt.Errorf("%w: penalty total %q", ErrMalformedRecord,
			groups.Discipline.Totals.HomeTotal)
	}
	awayPens, err := statValue(groups.Discipline.Totals.AwayTotal)
	if err != nil {
		return nil, fmt.Errorf("%w: penalty total %q", ErrMalformedRecord,
			groups.Discipline.Totals.AwayTotal)
	}
	stats["penalties conceded"] = Stat{Home: homePens, Away: awayPens}

	// Raw tackle counts include missed tackles; adjust before any derived
	// group so "tackles" means completed tackles from here on.
	adjustTackles(stats)

	for _, entry := range groups.Attacking {
		if strings.Contains(entry.HomeValue.String(), "/") {
			err = addCompoundStat(stats, entry)
		} else {
			err = addSimpleStat(stats, entry)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, piece := range groups.SetPieces {
		if err := addSetPiece(stats, piece); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// statValue parses a raw stat value that may carry one trailing non-numeric
// unit character such as "76%" or "23'".
func statValue(v store.RawValue) (float64, error) {
	f, err := v.Float64()
	if err == nil {
		return f, nil
	}
	s := v.String()
	if s == "" {
		return 0, err
	}
	return store.RawValue(trimUnit(s)).Float64()
}

func trimUnit(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func addSimpleStat(stats StatMap, entry store.RawStatEntry) error {
	home, err := statValue(entry.HomeValue)
	if err != nil {
		return fmt.Errorf("%w: stat %q value %q", ErrMalformedRecord, entry.Text,
			entry.HomeValue)
	}
	away, err := statValue(entry.AwayValue)
	if err != nil {
		return fmt.Errorf("%w: stat %q value %q", ErrMalformedRecord, entry.Text,
			entry.AwayValue)
	}
	stats[strings.ToLower(entry.Text)] = Stat{Home: home, Away: away}
	return nil
}

// addCompoundStat decomposes a slash-valued attacking entry into two
// canonical stats. Labels containing "Won" carry values like "8 / 10" and
// split into "<label> won" and "<label> total"; other labels name their two
// sub-stats in their second word ("Kicks From/Hand") with unit-suffixed
// values ("23m / 310m").
func addCompoundStat(stats StatMap, entry store.RawStatEntry) error {
	words := strings.Split(entry.Text, " ")
	name := strings.ToLower(words[0])

	if strings.Contains(entry.Text, "Won") {
		homeParts := strings.Split(entry.HomeValue.String(), " ")
		awayParts := strings.Split(entry.AwayValue.String(), " ")
		if len(homeParts) < 3 || len(awayParts) < 3 {
			return fmt.Errorf("%w: compound stat %q value %q", ErrMalformedRecord,
				entry.Text, entry.HomeValue)
		}
		won, err := pairValues(homeParts[0], awayParts[0])
		if err != nil {
			return fmt.Errorf("%w: compound stat %q: %v", ErrMalformedRecord, entry.Text, err)
		}
		total, err := pairValues(homeParts[2], awayParts[2])
		if err != nil {
			return fmt.Errorf("%w: compound stat %q: %v", ErrMalformedRecord, entry.Text, err)
		}
		stats[name+" won"] = won
		stats[name+" total"] = total
		return nil
	}

	if len(words) < 2 {
		return fmt.Errorf("%w: compound stat %q", ErrMalformedRecord, entry.Text)
	}
	subNames := strings.Split(words[1], "/")
	homeParts := strings.Split(entry.HomeValue.String(), " / ")
	awayParts := strings.Split(entry.AwayValue.String(), " / ")
	if len(subNames) != 2 || len(homeParts) != 2 || len(awayParts) != 2 {
		return fmt.Errorf("%w: compound stat %q value %q", ErrMalformedRecord, entry.Text,
			entry.HomeValue)
	}
	for i, sub := range subNames {
		value, err := pairValues(trimUnit(homeParts[i]), trimUnit(awayParts[i]))
		if err != nil {
			return fmt.Errorf("%w: compound stat %q: %v", ErrMalformedRecord, entry.Text, err)
		}
		stats[name+" "+strings.ToLower(sub)] = value
	}
	return nil
}

func pairValues(home, away string) (Stat, error) {
	h, err := store.RawValue(home).Float64()
	if err != nil {
		return Stat{}, err
	}
	a, err := store.RawValue(away).Float64()
	if err != nil {
		return Stat{}, err
	}
	return Stat{Home: h, Away: a}, nil
}

func addSetPiece(stats StatMap, piece store.RawSetPiece) error {
	name := strings.ToLower(strings.Split(piece.Text, " ")[0])
	won, err := pairRawValues(piece.HomeWon, piece.AwayWon)
	if err != nil {
		return fmt.Errorf("%w: set piece %q: %v", ErrMalformedRecord, piece.Text, err)
	}
	total, err := pairRawValues(piece.HomeTotal, piece.AwayTotal)
	if err != nil {
		return fmt.Errorf("%w: set piece %q: %v", ErrMalformedRecord, piece.Text, err)
	}
	stats[name+" won"] = won
	stats[name+" total"] = total
	return nil
}

func pairRawValues(home, away store.RawValue) (Stat, error) {
	h, err := home.Float64()
	if err != nil {
		return Stat{}, err
	}
	a, err := away.Float64()
	if err != nil {
		return Stat{}, err
	}
	return Stat{Home: h, Away: a}, nil
}

// adjustTackles rewrites "tackles" as completed tackles by subtracting missed
// tackles per side. The subtraction is skipped for a side whose missed count
// exceeds its total, which shows up in malformed records.
func adjustTackles(stats StatMap) {
	tackles, okT := stats["tackles"]
	missed, okM := stats["missed tackles"]
	if !okT || !okM {
		return
	}
	if missed.Home <= tackles.Home {
		tackles.Home -= missed.Home
	}
	if missed.Away <= tackles.Away {
		tackles.Away -= missed.Away
	}
	stats["tackles"] = tackles
}
