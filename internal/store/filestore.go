package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// FileStore reads a corpus from a directory holding one JSON document per
// league, named <leagueID>.json:
//
//	{
//	  "name": "Six Nations",
//	  "seasons": {
//	    "2018": { "290808": { ...raw match... } }
//	  }
//	}
//
// Files whose name contains "backup" are left alone, matching the layout the
// scraper writes next to its dated snapshots.
type FileStore struct {
	dir string

	once    sync.Once
	loadErr error
	leagues []LeagueInfo
	data    map[string]leagueRecords
}

type leagueFile struct {
	Name    string                         `json:"name"`
	Seasons map[string]map[string]RawMatch `json:"seasons"`
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) load() error {
	s.once.Do(func() {
		s.data = make(map[string]leagueRecords)

		entries, err := os.ReadDir(s.dir)
		if err != nil {
			s.loadErr = fmt.Errorf("reading corpus directory: %w", err)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".json") ||
				strings.Contains(name, "backup") {
				continue
			}

			contents, err := os.ReadFile(filepath.Join(s.dir, name))
			if err != nil {
				s.loadErr = err
				return
			}
			var file leagueFile
			if err := json.Unmarshal(contents, &file); err != nil {
				s.loadErr = fmt.Errorf("parsing %s: %w", name, err)
				return
			}

			leagueID := strings.TrimSuffix(name, ".json")
			records := make(leagueRecords, len(file.Seasons))
			for season, matches := range file.Seasons {
				records[season] = make(map[int64]*RawMatch, len(matches))
				for key, match := range matches {
					id, err := strconv.ParseInt(key, 10, 64)
					if err != nil {
						s.loadErr = fmt.Errorf("parsing %s: bad match id %q", name, key)
						return
					}
					match := match
					records[season][id] = &match
				}
			}
			s.data[leagueID] = records
			s.leagues = append(s.leagues, LeagueInfo{ID: leagueID, Name: file.Name})
		}
		sort.Slice(s.leagues, func(i, j int) bool { return s.leagues[i].ID < s.leagues[j].ID })
	})
	return s.loadErr
}

func (s *FileStore) Leagues() ([]LeagueInfo, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.leagues, nil
}

func (s *FileStore) Seasons(leagueID string) ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	records, ok := s.data[leagueID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueID)
	}
	seasons := make([]string, 0, len(records))
	for season := range records {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)
	return seasons, nil
}

func (s *FileStore) MatchIDs(leagueID, season string) ([]int64, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	records, ok := s.data[leagueID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueID)
	}
	ids := make([]int64, 0, len(records[season]))
	for id := range records[season] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *FileStore) Match(leagueID, season string, id int64) (*RawMatch, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	records, ok := s.data[leagueID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueID)
	}
	match, ok := records[season][id]
	if !ok {
		return nil, fmt.Errorf("%w: match %d", ErrRecordNotFound, id)
	}
	return match, nil
}
