// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-chess/internal/core"
)

// ErrNotFound is returned when a lookup matches no stored game.
var ErrNotFound = errors.New("storage: game not found")

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameResult is one finished game.
type GameResult struct {
	ID            string
	Variant       string
	Winner        string // "white" or "black"
	EndReason     string // "king_captured" or "forfeit"
	Plies         int
	WhiteCaptures int
	BlackCaptures int
	FinalFEN      string
	CreatedAt     time.Time
}

// NewResult builds a record from a game outcome.
func NewResult(variant string, out core.Outcome) GameResult {
	return GameResult{
		Variant:       variant,
		Winner:        out.Winner,
		EndReason:     out.Reason,
		Plies:         out.Plies,
		WhiteCaptures: out.WhiteCaptures,
		BlackCaptures: out.BlackCaptures,
		FinalFEN:      out.FEN,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			winner TEXT NOT NULL,
			end_reason TEXT NOT NULL,
			plies INTEGER NOT NULL DEFAULT 0,
			white_captures INTEGER NOT NULL DEFAULT 0,
			black_captures INTEGER NOT NULL DEFAULT 0,
			final_fen TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_variant ON games(variant, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID. A fresh UUID is
// assigned when r.ID is empty.
func (s *Store) SaveResult(r GameResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO games
		 (id, variant, winner, end_reason, plies, white_captures, black_captures, final_fen)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Winner, r.EndReason,
		r.Plies, r.WhiteCaptures, r.BlackCaptures, r.FinalFEN,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.ID, nil
}

const resultColumns = `id, variant, winner, end_reason, plies, white_captures, black_captures, final_fen, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (GameResult, error) {
	var r GameResult
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Variant,
		&r.Winner,
		&r.EndReason,
		&r.Plies,
		&r.WhiteCaptures,
		&r.BlackCaptures,
		&r.FinalFEN,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// CURRENT_TIMESTAMP.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ResultByID retrieves a single game.
func (s *Store) ResultByID(id string) (GameResult, error) {
	row := s.db.QueryRow(`SELECT `+resultColumns+` FROM games WHERE id = ?`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GameResult{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return GameResult{}, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return r, nil
}

// RecentResults retrieves the most recent games, newest first. An empty
// variant matches every variant.
func (s *Store) RecentResults(variant string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM games
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all games of the given variant.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM games WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	Games      int
	WhiteWins  int
	BlackWins  int
	Forfeits   int
	AvgPlies   float64
	LongestWin int // most plies in a single game
	LastPlayed time.Time
}

const statsColumns = `variant,
	COUNT(*),
	COALESCE(SUM(winner = 'white'), 0),
	COALESCE(SUM(winner = 'black'), 0),
	COALESCE(SUM(end_reason = 'forfeit'), 0),
	COALESCE(AVG(plies), 0),
	COALESCE(MAX(plies), 0),
	MAX(created_at)`

func scanStats(row scanner) (VariantStats, error) {
	var st VariantStats
	var lastPlayed any
	err := row.Scan(
		&st.Variant,
		&st.Games,
		&st.WhiteWins,
		&st.BlackWins,
		&st.Forfeits,
		&st.AvgPlies,
		&st.LongestWin,
		&lastPlayed,
	)
	st.LastPlayed = parseTime(lastPlayed)
	return st, err
}

// GetVariantStats retrieves aggregated statistics for one variant. A variant
// with no games yields zero counts.
func (s *Store) GetVariantStats(variant string) (VariantStats, error) {
	row := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM games WHERE variant = ? GROUP BY variant`,
		variant,
	)
	st, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return VariantStats{Variant: variant}, nil
	}
	if err != nil {
		return VariantStats{}, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	return st, nil
}

// GetAllVariantStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllVariantStats() (map[string]VariantStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM games GROUP BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]VariantStats)
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.Variant] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
