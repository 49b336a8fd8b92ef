package rugby

import (
	"RugbyStatsApi/internal/assert"
	"RugbyStatsApi/internal/store"
	"testing"
)

func TestAverageStatForTeam(t *testing.T) {
	db := testDB([]int64{1, 2, 3}, nil)

	// every fixture match is 23-17, home leinster
	average, err := AverageStatForTeam(db, "Leinster", "points", store.Filter{})
	assert.NilError(t, err)
	assert.FloatEqual(t, average, 23)

	average, err = AveragePointsForTeam(db, "munster", store.Filter{})
	assert.NilError(t, err)
	assert.FloatEqual(t, average, 17)

	_, err = AverageStatForTeam(db, "Ulster", "points", store.Filter{})
	assert.ErrorIs(t, err, ErrNoMatches)

	_, err = AverageStatForTeam(db, "Leinster", "nonsense", store.Filter{})
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestPlayerStatLeaders(t *testing.T) {
	db := testDB([]int64{1}, nil)
	list := NewMatchList(db, []int64{1})

	leaders := PlayerStatLeaders(list, "tackles")
	assert.Equal(t, len(leaders), 4)

	// sorted descending by value
	for i := 1; i < len(leaders); i++ {
		if leaders[i-1].Value < leaders[i].Value {
			t.Fatalf("leaders out of order at %d: %v", i, leaders)
		}
	}

	// Peter O'Mahony has 15-1 completed tackles, the best single figure
	assert.Equal(t, leaders[0].Player, "Peter O'Mahony")
	assert.Equal(t, leaders[0].Team, "munster")
	assert.FloatEqual(t, leaders[0].Value, 14)
}

func TestTeamStatLeaders(t *testing.T) {
	db := testDB([]int64{1, 2}, nil)
	list := NewMatchList(db, []int64{1, 2})

	leaders := TeamStatLeaders(list, "points")
	assert.Equal(t, len(leaders), 4)
	assert.Equal(t, leaders[0].Team, "leinster")
	assert.FloatEqual(t, leaders[0].Value, 23)
	assert.Equal(t, leaders[3].Team, "munster")
	assert.FloatEqual(t, leaders[3].Value, 17)
}

func TestLeagueStatLeaders(t *testing.T) {
	db := testDB([]int64{1, 2}, nil)

	leaders, err := LeagueStatLeaders(db, "Pro 14", "1718", "tries")
	assert.NilError(t, err)
	assert.Equal(t, len(leaders), 4)

	// one try per match across two matches
	assert.Equal(t, leaders[0].Player, "Peter O'Mahony")
	assert.FloatEqual(t, leaders[0].Value, 2)

	_, err = LeagueStatLeaders(db, "Pro 14", "1920", "tries")
	assert.ErrorIs(t, err, ErrNoMatches)

	_, err = LeagueStatLeaders(db, "Top 14", "1718", "tries")
	assert.ErrorIs(t, err, ErrLeagueNotFound)
}
