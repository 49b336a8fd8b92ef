package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawValue holds a scalar from a raw match document. Source feeds render the
// same field as a JSON number in one record and a string ("45%", "23'") in
// the next, so values are kept in string form until a caller asks for a
// number.
type RawValue string

func (v *RawValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = RawValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("raw value must be a string or number: %s", b)
	}
	*v = RawValue(n.String())
	return nil
}

func (v RawValue) String() string {
	return string(v)
}

func (v RawValue) Float64() (float64, error) {
	return strconv.ParseFloat(string(v), 64)
}

func (v RawValue) Int() (int, error) {
	return strconv.Atoi(string(v))
}

// RawMatch is the canonical input schema for one match, as handed over by
// the acquisition/persistence collaborator.
type RawMatch struct {
	HomeTeam         RawTeam       `json:"homeTeam"`
	AwayTeam         RawTeam       `json:"awayTeam"`
	ISODate          string        `json:"isoDate"`
	StatGroups       RawStatGroups `json:"statGroups"`
	CommentaryEvents []RawEvent    `json:"commentaryEvents"`
	Lineup           RawLineup     `json:"lineup"`
}

type RawTeam struct {
	Name   string   `json:"name"`
	Abbrev string   `json:"abbrev"`
	Score  RawValue `json:"score"`
}

type RawStatGroups struct {
	Visualized  []RawStatEntry `json:"visualized"`
	Tabular     []RawStatEntry `json:"tabular"`
	Discipline  RawDiscipline  `json:"discipline"`
	ScoreEvents []RawStatEntry `json:"scoreEvents"`
	Attacking   []RawStatEntry `json:"attacking"`
	SetPieces   []RawSetPiece  `json:"setPieces"`
}

type RawDiscipline struct {
	Cards  []RawStatEntry   `json:"cards"`
	Totals RawPenaltyTotals `json:"totals"`
}

type RawPenaltyTotals struct {
	HomeTotal RawValue `json:"homeTotal"`
	AwayTotal RawValue `json:"awayTotal"`
}

type RawStatEntry struct {
	Text      string   `json:"text"`
	HomeValue RawValue `json:"homeValue"`
	AwayValue RawValue `json:"awayValue"`
}

type RawSetPiece struct {
	Text      string   `json:"text"`
	HomeWon   RawValue `json:"homeWon"`
	AwayWon   RawValue `json:"awayWon"`
	HomeTotal RawValue `json:"homeTotal"`
	AwayTotal RawValue `json:"awayTotal"`
}

type RawEvent struct {
	Type      int    `json:"type"`
	Time      string `json:"time"`
	Text      string `json:"text"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
}

type RawLineup struct {
	Home RawSquad `json:"home"`
	Away RawSquad `json:"away"`
}

type RawSquad struct {
	Starters []RawPlayer `json:"starters"`
	Reserves []RawPlayer `json:"reserves"`
}

// RawPlayerStat is one named stat block nested in a raw player entry, e.g.
// {"name": "Tackles", "value": 14}.
type RawPlayerStat struct {
	Name  string   `json:"name"`
	Value RawValue `json:"value"`
}

// RawPlayer carries the fixed identity fields of a lineup entry plus every
// nested stat block keyed by its document field name. The stat blocks vary
// by feed revision, so they are collected dynamically rather than declared.
type RawPlayer struct {
	Name       string
	ID         int64
	Number     RawValue
	Position   string
	Captain    bool
	Subbed     bool
	EventTimes map[string][]string
	Stats      map[string]RawPlayerStat
}

func (p *RawPlayer) UnmarshalJSON(b []byte) error {
	known := struct {
		Name       string              `json:"name"`
		ID         int64               `json:"id"`
		Number     RawValue            `json:"number"`
		Position   string              `json:"position"`
		Captain    bool                `json:"captain"`
		Subbed     bool                `json:"subbed"`
		EventTimes map[string][]string `json:"eventTimes"`
	}{}
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}

	p.Name = known.Name
	p.ID = known.ID
	p.Number = known.Number
	p.Position = known.Position
	p.Captain = known.Captain
	p.Subbed = known.Subbed
	p.EventTimes = known.EventTimes
	p.Stats = make(map[string]RawPlayerStat)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		switch key {
		case "name", "id", "number", "position", "captain", "subbed", "eventTimes":
			continue
		}
		var block RawPlayerStat
		if err := json.Unmarshal(raw, &block); err != nil || block.Name == "" {
			// not a stat block
			continue
		}
		p.Stats[strings.ToLower(block.Name)] = block
	}
	return nil
}

func (p *RawPlayer) MarshalJSON() ([]byte, error) {
	fields := map[string]any{
		"name":       p.Name,
		"id":         p.ID,
		"number":     p.Number,
		"position":   p.Position,
		"captain":    p.Captain,
		"subbed":     p.Subbed,
		"eventTimes": p.EventTimes,
	}
	for key, block := range p.Stats {
		fields[key] = block
	}
	return json.Marshal(fields)
}
