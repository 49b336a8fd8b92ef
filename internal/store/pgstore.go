package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGStore reads a corpus from PostgreSQL. The scraper side owns the schema:
//
//	CREATE TABLE leagues (id text PRIMARY KEY, name text NOT NULL);
//	CREATE TABLE matches (
//	    id        bigint PRIMARY KEY,
//	    league_id text   NOT NULL REFERENCES leagues(id),
//	    season    text   NOT NULL,
//	    doc       jsonb  NOT NULL
//	);
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Leagues() ([]LeagueInfo, error) {
	stmt := `
		SELECT id, name
		FROM leagues
		ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leagues []LeagueInfo
	for rows.Next() {
		var league LeagueInfo
		if err := rows.Scan(&league.ID, &league.Name); err != nil {
			return nil, err
		}
		leagues = append(leagues, league)
	}
	return leagues, rows.Err()
}

func (s *PGStore) Seasons(leagueID string) ([]string, error) {
	stmt := `
		SELECT DISTINCT season
		FROM matches
		WHERE league_id = $1
		ORDER BY season`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, stmt, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []string
	for rows.Next() {
		var season string
		if err := rows.Scan(&season); err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

func (s *PGStore) MatchIDs(leagueID, season string) ([]int64, error) {
	stmt := `
		SELECT id
		FROM matches
		WHERE league_id = $1
		AND season = $2
		ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, stmt, leagueID, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PGStore) Match(leagueID, season string, id int64) (*RawMatch, error) {
	stmt := `
		SELECT doc
		FROM matches
		WHERE league_id = $1
		AND season = $2
		AND id = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var doc []byte
	err := s.db.QueryRowContext(ctx, stmt, leagueID, season, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: match %d", ErrRecordNotFound, id)
		}
		return nil, err
	}

	var match RawMatch
	if err := json.Unmarshal(doc, &match); err != nil {
		return nil, fmt.Errorf("parsing match %d: %w", id, err)
	}
	return &match, nil
}
