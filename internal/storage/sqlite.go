// Package storage provides SQLite-based persistence for saved games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ErrSlotNotFound is returned when a named save slot does not exist.
var ErrSlotNotFound = errors.New("storage: slot not found")

// timeLayout sorts lexicographically in chronological order.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for saved games.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Slot is a named saved game.
type Slot struct {
	Name      string
	SessionID string
	Grid      t2048.Grid
	Score     int
	Moves     int
	UpdatedAt time.Time
}

// MaxTile returns the highest tile in the saved grid.
func (s Slot) MaxTile() int {
	return t2048.MaxTile(s.Grid)
}

// Over reports whether the saved grid is terminal.
func (s Slot) Over() bool {
	return t2048.IsTerminal(s.Grid)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			grid TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_saves_updated ON saves(updated_at DESC);
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

// SaveSlot writes a snapshot under the given name, replacing any previous
// save with that name.
func (s *Store) SaveSlot(name string, snap t2048.Snapshot) error {
	if name == "" {
		return errors.New("storage: slot name must not be empty")
	}

	_, err := s.db.Exec(
		`INSERT INTO saves (name, session_id, grid, score, moves, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   session_id = excluded.session_id,
		   grid = excluded.grid,
		   score = excluded.score,
		   moves = excluded.moves,
		   updated_at = excluded.updated_at`,
		name, snap.SessionID, EncodeGrid(snap.Grid), snap.Score, snap.Moves,
		s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %q: %w", name, err)
	}
	return nil
}

// LoadSlot reads the save with the given name.
// Returns ErrSlotNotFound if it does not exist.
func (s *Store) LoadSlot(name string) (Slot, error) {
	row := s.db.QueryRow(
		`SELECT name, session_id, grid, score, moves, updated_at
		 FROM saves
		 WHERE name = ?`,
		name,
	)

	slot, err := scanSlot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Slot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, name)
	}
	if err != nil {
		return Slot{}, fmt.Errorf("storage: cannot load slot %q: %w", name, err)
	}
	return slot, nil
}

// ListSlots returns all saves, most recently updated first.
func (s *Store) ListSlots() ([]Slot, error) {
	rows, err := s.db.Query(
		`SELECT name, session_id, grid, score, moves, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// DeleteSlot removes the save with the given name.
// Returns ErrSlotNotFound if it does not exist.
func (s *Store) DeleteSlot(name string) error {
	result, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete slot %q: %w", name, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSlot(sc scanner) (Slot, error) {
	var slot Slot
	var grid string
	var updatedAt any

	if err := sc.Scan(&slot.Name, &slot.SessionID, &grid, &slot.Score, &slot.Moves, &updatedAt); err != nil {
		return Slot{}, err
	}

	g, err := DecodeGrid(grid)
	if err != nil {
		return Slot{}, err
	}
	slot.Grid = g

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		slot.UpdatedAt = v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			slot.UpdatedAt = parsed
		}
	}

	return slot, nil
}

// EncodeGrid serialises a grid as 16 comma-separated values in row-major order.
func EncodeGrid(g t2048.Grid) string {
	parts := make([]string, 0, t2048.BoardSize*t2048.BoardSize)
	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			parts = append(parts, strconv.Itoa(g[y][x]))
		}
	}
	return strings.Join(parts, ",")
}

// DecodeGrid parses the output of EncodeGrid.
func DecodeGrid(s string) (t2048.Grid, error) {
	var g t2048.Grid

	parts := strings.Split(s, ",")
	if len(parts) != t2048.BoardSize*t2048.BoardSize {
		return g, fmt.Errorf("storage: grid has %d cells, want %d", len(parts), t2048.BoardSize*t2048.BoardSize)
	}

	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return g, fmt.Errorf("storage: bad grid cell %d: %w", i, err)
		}
		if v < 0 || v&(v-1) != 0 {
			return g, fmt.Errorf("storage: grid cell %d is %d, want 0 or a power of two", i, v)
		}
		g[i/t2048.BoardSize][i%t2048.BoardSize] = v
	}
	return g, nil
}
