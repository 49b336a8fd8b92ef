package store

import (
	"RugbyStatsApi/internal/assert"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sixNationsFile = `{
	"name": "Six Nations",
	"seasons": {
		"2018": {
			"290808": {
				"homeTeam": {"name": "Ireland", "abbrev": "IRE", "score": "28"},
				"awayTeam": {"name": "Wales", "abbrev": "WAL", "score": "8"},
				"isoDate": "2018-02-24T14:15Z"
			},
			"290809": {
				"homeTeam": {"name": "England", "abbrev": "ENG", "score": "12"},
				"awayTeam": {"name": "Ireland", "abbrev": "IRE", "score": "24"},
				"isoDate": "2018-03-17T14:45Z"
			}
		},
		"2019": {
			"291520": {
				"homeTeam": {"name": "Wales", "abbrev": "WAL", "score": "25"},
				"awayTeam": {"name": "Ireland", "abbrev": "IRE", "score": "7"},
				"isoDate": "2019-03-16T14:45Z"
			}
		}
	}
}`

func writeCorpusFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644)
	assert.NilError(t, err)
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "sixnations.json", sixNationsFile)
	writeCorpusFile(t, dir, "sixnations_backup.json", `not even json`)
	writeCorpusFile(t, dir, "notes.txt", `scraper notes`)

	fs := NewFileStore(dir)

	leagues, err := fs.Leagues()
	assert.NilError(t, err)
	assert.Equal(t, len(leagues), 1)
	assert.Equal(t, leagues[0].ID, "sixnations")
	assert.Equal(t, leagues[0].Name, "Six Nations")

	seasons, err := fs.Seasons("sixnations")
	assert.NilError(t, err)
	assert.StringSliceEqual(t, seasons, []string{"2018", "2019"})

	ids, err := fs.MatchIDs("sixnations", "2018")
	assert.NilError(t, err)
	assert.Int64SliceEqual(t, ids, []int64{290808, 290809})

	match, err := fs.Match("sixnations", "2018", 290809)
	assert.NilError(t, err)
	assert.Equal(t, match.HomeTeam.Name, "England")
	assert.Equal(t, match.HomeTeam.Score.String(), "12")
	assert.Equal(t, match.AwayTeam.Score.String(), "24")
}

func TestFileStoreMissing(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "sixnations.json", sixNationsFile)

	fs := NewFileStore(dir)

	_, err := fs.Seasons("top14")
	assert.Equal(t, errors.Is(err, ErrLeagueNotFound), true)

	_, err = fs.Match("sixnations", "2018", 999)
	assert.Equal(t, errors.Is(err, ErrRecordNotFound), true)
}

func TestFileStoreBadCorpus(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "pro14.json", `{"name": 12}`)

	fs := NewFileStore(dir)
	_, err := fs.Leagues()
	assert.StringContains(t, err.Error(), "pro14.json")
}
