package rugby

import (
	"RugbyStatsApi/internal/assert"
	"RugbyStatsApi/internal/store"
	"testing"
)

func subEvents(events ...store.RawEvent) EventList {
	list, err := EventListFromRaw(events)
	if err != nil {
		panic(err)
	}
	return list
}

func TestPlayerMinutes(t *testing.T) {
	tests := []struct {
		name    string
		number  int
		events  EventList
		want    int
	}{
		{
			name:   "Starter Plays Full Match",
			number: 2,
			events: EventList{},
			want:   80,
		},
		{
			name:   "Starter Subbed Off",
			number: 1,
			events: subEvents(
				store.RawEvent{Type: 7, Time: "55'", Text: "Joe Bloggs comes off"},
			),
			want: 55,
		},
		{
			name:   "Bench Never Used",
			number: 18,
			events: EventList{},
			want:   0,
		},
		{
			name:   "Bench On At Sixty",
			number: 17,
			events: subEvents(
				store.RawEvent{Type: 8, Time: "60'", Text: "Joe Bloggs comes on"},
			),
			want: 20,
		},
		{
			name:   "On Sixty Off Seventy",
			number: 17,
			events: subEvents(
				store.RawEvent{Type: 8, Time: "60'", Text: "Joe Bloggs comes on"},
				store.RawEvent{Type: 7, Time: "70'", Text: "Joe Bloggs comes off"},
			),
			want: 10,
		},
		{
			name:   "Off Then Back On",
			number: 2,
			events: subEvents(
				store.RawEvent{Type: 7, Time: "40'", Text: "Joe Bloggs comes off for a HIA"},
				store.RawEvent{Type: 8, Time: "50'", Text: "Joe Bloggs comes back on"},
			),
			want: 70,
		},
		{
			name:   "Other Players Subs Ignored",
			number: 3,
			events: subEvents(
				store.RawEvent{Type: 7, Time: "55'", Text: "Someone Else comes off"},
			),
			want: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := testRawPlayer("Joe Bloggs", 1, tt.number, nil)
			player, err := NewPlayer(raw, tt.events)
			assert.NilError(t, err)

			minutes, ok := player.Minutes()
			assert.Equal(t, ok, true)
			assert.Equal(t, minutes, tt.want)
		})
	}
}

func TestPlayerMinutesUnknown(t *testing.T) {
	player, err := NewPlayer(testRawPlayer("Joe Bloggs", 1, 2, nil), nil)
	assert.NilError(t, err)

	_, ok := player.Minutes()
	assert.Equal(t, ok, false)
}

func TestPlayerTackleAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		stats map[string]float64
		want  float64
	}{
		{
			name:  "Missed Subtracted",
			stats: map[string]float64{"tackles": 10, "missed tackles": 4},
			want:  6,
		},
		{
			name:  "Missed Larger Than Total",
			stats: map[string]float64{"tackles": 3, "missed tackles": 5},
			want:  3,
		},
		{
			name:  "No Missed Tackles",
			stats: map[string]float64{"tackles": 10},
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := NewPlayer(testRawPlayer("Joe Bloggs", 1, 2, tt.stats), nil)
			assert.NilError(t, err)

			tackles, ok := player.Stat("tackles")
			assert.Equal(t, ok, true)
			assert.FloatEqual(t, tackles, tt.want)
		})
	}
}

func TestPlayerTackleAdjustmentNoTackles(t *testing.T) {
	player, err := NewPlayer(testRawPlayer("Joe Bloggs", 1, 2,
		map[string]float64{"missed tackles": 0}), nil)
	assert.NilError(t, err)

	// the adjustment must not invent a tackles entry
	_, ok := player.Stat("tackles")
	assert.Equal(t, ok, false)
}

func TestPlayerStat(t *testing.T) {
	player, err := NewPlayer(testRawPlayer("Joe Bloggs", 1, 2,
		map[string]float64{"tries": 2}), nil)
	assert.NilError(t, err)

	tries, ok := player.Stat("Tries")
	assert.Equal(t, ok, true)
	assert.FloatEqual(t, tries, 2)

	_, ok = player.Stat("offloads")
	assert.Equal(t, ok, false)
}

func TestPlayerStatPerEighty(t *testing.T) {
	raw := testRawPlayer("Joe Bloggs", 1, 17, map[string]float64{"tackles": 6})
	events := subEvents(store.RawEvent{Type: 8, Time: "40'", Text: "Joe Bloggs comes on"})

	player, err := NewPlayer(raw, events)
	assert.NilError(t, err)

	perEighty, ok := player.StatPerEighty("tackles")
	assert.Equal(t, ok, true)
	assert.FloatEqual(t, perEighty, 12)

	// unknown minutes
	player, err = NewPlayer(raw, nil)
	assert.NilError(t, err)
	_, ok = player.StatPerEighty("tackles")
	assert.Equal(t, ok, false)

	// zero minutes
	bench := testRawPlayer("Joe Bloggs", 1, 18, map[string]float64{"tackles": 6})
	player, err = NewPlayer(bench, EventList{})
	assert.NilError(t, err)
	_, ok = player.StatPerEighty("tackles")
	assert.Equal(t, ok, false)
}

func TestNewPlayerMalformed(t *testing.T) {
	raw := testRawPlayer("Joe Bloggs", 1, 2, nil)
	raw.Number = "two"
	_, err := NewPlayer(raw, nil)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	raw = testRawPlayer("Joe Bloggs", 1, 2, nil)
	raw.Stats["tackles"] = store.RawPlayerStat{Name: "Tackles", Value: "lots"}
	_, err = NewPlayer(raw, nil)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestPlayerList(t *testing.T) {
	raws := []store.RawPlayer{
		testRawPlayer("Joe Bloggs", 1, 1, nil),
		testRawPlayer("John Doe", 2, 2, nil),
	}
	list, err := NewPlayerList(raws, nil)
	assert.NilError(t, err)
	assert.Equal(t, len(list), 2)

	assert.Equal(t, list.Get(0).Name, "Joe Bloggs")
	assert.Equal(t, list.Get(2), (*Player)(nil))
	assert.Equal(t, list.Get(-1), (*Player)(nil))

	assert.Equal(t, list.ByName("John Doe").ID, int64(2))
	assert.Equal(t, list.ByName("Nobody"), (*Player)(nil))

	other, err := NewPlayerList([]store.RawPlayer{
		testRawPlayer("Jane Roe", 3, 3, nil),
	}, nil)
	assert.NilError(t, err)

	merged := list.Concat(other)
	assert.Equal(t, len(merged), 3)
	assert.Equal(t, len(list), 2)
	assert.Equal(t, merged.Get(2).Name, "Jane Roe")
}
