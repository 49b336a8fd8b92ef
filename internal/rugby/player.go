package rugby

import (
	"fmt"
	"sort"
	"strings"

	"RugbyStatsApi/internal/store"
)

// fullMatchMinutes is how long a rugby match runs. Domain constant, not
// configurable.
const fullMatchMinutes = 80

// Player holds the identity, per-match stats and derived facts of one player
// in one match. A Player belongs to exactly one match and one side of it.
type Player struct {
	Name     string
	ID       int64
	Number   int
	Position string
	Captain  bool
	Subbed   bool
	Events   EventList

	stats        map[string]float64
	minutes      int
	minutesKnown bool
}

// NewPlayer builds a Player from a raw lineup entry. When the match's full
// event list is supplied, minutes played are derived from its substitution
// events; with a nil list the player's minutes are unknown.
func NewPlayer(raw store.RawPlayer, matchEvents EventList) (*Player, error) {
	number, err := raw.Number.Int()
	if err != nil {
		return nil, fmt.Errorf("%w: player %q number %q", ErrMalformedRecord, raw.Name,
			raw.Number)
	}
	events, err := EventListFromPlayerTimes(raw.EventTimes)
	if err != nil {
		return nil, fmt.Errorf("player %q: %w", raw.Name, err)
	}

	p := &Player{
		Name:     raw.Name,
		ID:       raw.ID,
		Number:   number,
		Position: raw.Position,
		Captain:  raw.Captain,
		Subbed:   raw.Subbed,
		Events:   events,
		stats:    make(map[string]float64, len(raw.Stats)),
	}
	for name, block := range raw.Stats {
		value, err := block.Value.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: player %q stat %q value %q", ErrMalformedRecord,
				raw.Name, name, block.Value)
		}
		p.stats[name] = value
	}

	// Raw tackle counts include missed tackles.
	tackles, okT := p.stats["tackles"]
	missed, okM := p.stats["missed tackles"]
	if okT && okM && tackles >= missed {
		p.stats["tackles"] = tackles - missed
	}

	if matchEvents != nil {
		p.minutes = deriveMinutes(p.Name, number, matchEvents)
		p.minutesKnown = true
	}
	return p, nil
}

// deriveMinutes walks the match's substitution events mentioning the player.
// A player on the pitch since kickoff (or since their last sub-on) is
// credited up to the sub-off minute, or to full time if never taken off. A
// bench player (number > 15) who never comes on plays nothing.
func deriveMinutes(name string, number int, matchEvents EventList) int {
	type subEvent struct {
		minute int
		typ    EventType
	}
	var subs []subEvent
	for _, event := range matchEvents {
		if (event.Type == EventSubOff || event.Type == EventSubOn) &&
			strings.Contains(event.Text, name) {
			subs = append(subs, subEvent{minute: event.Minute, typ: event.Type})
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].minute != subs[j].minute {
			return subs[i].minute < subs[j].minute
		}
		return subs[i].typ < subs[j].typ
	})

	const off = -1
	minutes := 0
	onSince := 0
	for _, sub := range subs {
		switch sub.typ {
		case EventSubOff:
			minutes += sub.minute - onSince
			onSince = off
		case EventSubOn:
			onSince = sub.minute
		}
	}
	if onSince != off && !(number > 15 && onSince == 0) {
		minutes += fullMatchMinutes - onSince
	}
	return minutes
}

func (p *Player) String() string {
	return fmt.Sprintf("%d: %s", p.Number, p.Name)
}

// Stat returns the player's value for a stat, case-insensitive.
func (p *Player) Stat(name string) (float64, bool) {
	value, ok := p.stats[strings.ToLower(name)]
	return value, ok
}

// StatNames returns the sorted names of the player's stats.
func (p *Player) StatNames() []string {
	names := make([]string, 0, len(p.stats))
	for name := range p.stats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Minutes reports derived minutes played; ok is false when the player was
// built without the match event list.
func (p *Player) Minutes() (int, bool) {
	return p.minutes, p.minutesKnown
}

// StatPerEighty scales a stat to a full match. It reports false when the
// stat is absent or minutes played are unknown or zero.
func (p *Player) StatPerEighty(name string) (float64, bool) {
	value, ok := p.Stat(name)
	if !ok || !p.minutesKnown || p.minutes == 0 {
		return 0, false
	}
	return value * (fullMatchMinutes / float64(p.minutes)), true
}

// PlayerList is an ordered collection of players.
type PlayerList []*Player

// NewPlayerList builds players from raw lineup entries in source order.
func NewPlayerList(raws []store.RawPlayer, matchEvents EventList) (PlayerList, error) {
	players := make(PlayerList, 0, len(raws))
	for _, raw := range raws {
		player, err := NewPlayer(raw, matchEvents)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// Get returns the player at index, or nil if out of range.
func (l PlayerList) Get(index int) *Player {
	if index < 0 || index >= len(l) {
		return nil
	}
	return l[index]
}

// ByName returns the first player with the exact name, or nil.
func (l PlayerList) ByName(name string) *Player {
	for _, player := range l {
		if player.Name == name {
			return player
		}
	}
	return nil
}

// Concat returns a new list holding the receiver's players followed by the
// other list's.
func (l PlayerList) Concat(other PlayerList) PlayerList {
	merged := make(PlayerList, 0, len(l)+len(other))
	merged = append(merged, l...)
	merged = append(merged, other...)
	return merged
}
