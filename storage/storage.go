package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"othello/game"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	started_at DATETIME,
	ended_at DATETIME,
	mode TEXT,
	difficulty INTEGER,
	black_discs INTEGER,
	white_discs INTEGER,
	winner TEXT,
	transcript TEXT
);
`

// Record is a finished game.
type Record struct {
	ID         uuid.UUID
	StartedAt  time.Time
	EndedAt    time.Time
	Mode       string // "play" or "selfplay"
	Difficulty int
	BlackDiscs int
	WhiteDiscs int
	Winner     string // "Black", "White" or "" for a tie
	Transcript string // space separated turns, e.g. "B:C4 W:C3"
}

// NewRecord builds a record from the final position and move history of s.
func NewRecord(s *game.Session, mode string, difficulty int, startedAt time.Time) Record {
	black, white := s.Score()
	turns := s.History()
	notation := make([]string, len(turns))
	for i, turn := range turns {
		notation[i] = turn.String()
	}
	return Record{
		ID:         uuid.New(),
		StartedAt:  startedAt,
		EndedAt:    time.Now(),
		Mode:       mode,
		Difficulty: difficulty,
		BlackDiscs: black,
		WhiteDiscs: white,
		Winner:     Winner(black, white),
		Transcript: strings.Join(notation, " "),
	}
}

// Winner names the side with more discs, or "" on a tie.
func Winner(black, white int) string {
	switch {
	case black > white:
		return game.Black.String()
	case white > black:
		return game.White.String()
	default:
		return ""
	}
}

// Store keeps finished games in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates the database file and its schema if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create games table: %w", err)
	}

	log.Info().Str("path", path).Msg("database initialized")
	return &Store{db: db}, nil
}

func (s *Store) SaveGame(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, started_at, ended_at, mode, difficulty, black_discs, white_discs, winner, transcript)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.StartedAt.UTC(), r.EndedAt.UTC(), r.Mode, r.Difficulty,
		r.BlackDiscs, r.WhiteDiscs, r.Winner, r.Transcript,
	)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", r.ID, err)
	}
	return nil
}

// RecentGames returns up to limit games, most recently finished first.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, mode, difficulty, black_discs, white_discs, winner, transcript
		FROM games ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var id string
		err := rows.Scan(&id, &r.StartedAt, &r.EndedAt, &r.Mode, &r.Difficulty,
			&r.BlackDiscs, &r.WhiteDiscs, &r.Winner, &r.Transcript)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to parse game id %q: %w", id, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}
	return records, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
