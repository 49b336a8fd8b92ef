package rugby

import (
	"errors"
	"fmt"
)

var ErrIdentityConflict = errors.New("player series identity conflict")

// PlayerSeries collects the same player's appearances across matches. Adding
// a differently-identified player is a contract violation.
type PlayerSeries struct {
	Name string
	ID   int64

	players []*Player
}

func NewPlayerSeries() *PlayerSeries {
	return &PlayerSeries{}
}

// Add appends one appearance. The first player added fixes the series
// identity.
func (s *PlayerSeries) Add(player *Player) error {
	if len(s.players) > 0 && player.ID != s.ID {
		return fmt.Errorf("%w: series holds %s (%d), got %s (%d)", ErrIdentityConflict,
			s.Name, s.ID, player.Name, player.ID)
	}
	if len(s.players) == 0 {
		s.Name = player.Name
		s.ID = player.ID
	}
	s.players = append(s.players, player)
	return nil
}

func (s *PlayerSeries) Len() int {
	return len(s.players)
}

func (s *PlayerSeries) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)
	return players
}

// Stat sums a stat across every appearance. It reports false if any
// appearance lacks the stat.
func (s *PlayerSeries) Stat(name string) (float64, bool) {
	total := 0.0
	for _, player := range s.players {
		value, ok := player.Stat(name)
		if !ok {
			return 0, false
		}
		total += value
	}
	return total, true
}

// StatAverage is the arithmetic mean of a stat across appearances.
func (s *PlayerSeries) StatAverage(name string) (float64, bool) {
	if len(s.players) == 0 {
		return 0, false
	}
	total, ok := s.Stat(name)
	if !ok {
		return 0, false
	}
	return total / float64(len(s.players)), true
}

// StatPerEighty is the mean of each appearance's per-80 normalized value. It
// reports false if any appearance cannot be normalized.
func (s *PlayerSeries) StatPerEighty(name string) (float64, bool) {
	if len(s.players) == 0 {
		return 0, false
	}
	total := 0.0
	for _, player := range s.players {
		value, ok := player.StatPerEighty(name)
		if !ok {
			return 0, false
		}
		total += value
	}
	return total / float64(len(s.players)), true
}
