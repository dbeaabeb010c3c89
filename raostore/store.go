// Package raostore persists response grids in SQLite using the flattened
// (de-complexified) representation: each cell is stored as the real pair
//
//	re = amplitude·cos(phase), im = amplitude·sin(phase)
//
// and reconstructed on load via rao.FromParts, which reproduces amplitude
// and phase exactly up to floating-point precision. SQLite has no complex
// column type; this contract keeps round trips lossless anyway.
package raostore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/seakeeping/raogrid/rao"
)

// ErrNotFound indicates no stored grid carries the requested id.
var ErrNotFound = errors.New("raostore: grid not found")

// Store wraps a SQLite connection holding flattened response grids.
type Store struct {
	conn *sqlx.DB
}

// Record describes one stored grid without its cell data.
type Record struct {
	ID        string        `db:"id"`
	Name      string        `db:"name"`
	Component rao.Component `db:"component"`
	Headings  int           `db:"n_headings"`
	Omegas    int           `db:"n_frequencies"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS grids (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		component INTEGER NOT NULL,
		headings_json TEXT NOT NULL,
		frequencies_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS grid_cells (
		grid_id TEXT NOT NULL REFERENCES grids(id) ON DELETE CASCADE,
		heading_idx INTEGER NOT NULL,
		frequency_idx INTEGER NOT NULL,
		re REAL NOT NULL,
		im REAL NOT NULL,
		PRIMARY KEY (grid_id, heading_idx, frequency_idx)
	);

	CREATE INDEX IF NOT EXISTS idx_cells_grid ON grid_cells(grid_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save flattens g and writes it under a fresh id, returning the id.
func (s *Store) Save(name string, g *rao.Grid) (string, error) {
	id := uuid.NewString()

	headingsJSON, err := json.Marshal(g.Headings())
	if err != nil {
		return "", fmt.Errorf("marshal headings: %w", err)
	}
	frequenciesJSON, err := json.Marshal(g.Frequencies())
	if err != nil {
		return "", fmt.Errorf("marshal frequencies: %w", err)
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO grids (id, name, component, headings_json, frequencies_json) VALUES (?, ?, ?, ?, ?)",
		id, name, int(g.Component()), string(headingsJSON), string(frequenciesJSON),
	); err != nil {
		return "", fmt.Errorf("insert grid %s: %w", name, err)
	}

	stmt, err := tx.Preparex(
		"INSERT INTO grid_cells (grid_id, heading_idx, frequency_idx, re, im) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	re, im := g.Parts()
	for i := range re {
		for j := range re[i] {
			if _, err := stmt.Exec(id, i, j, re[i][j], im[i][j]); err != nil {
				return "", fmt.Errorf("insert cell (%d,%d): %w", i, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("grid saved", "id", id, "name", name,
		"headings", g.NumHeadings(), "frequencies", g.NumFrequencies())

	return id, nil
}

// Load reassembles the grid stored under id, returning it with its name.
func (s *Store) Load(id string) (*rao.Grid, string, error) {
	var row struct {
		Name            string `db:"name"`
		Component       int    `db:"component"`
		HeadingsJSON    string `db:"headings_json"`
		FrequenciesJSON string `db:"frequencies_json"`
	}
	err := s.conn.Get(&row,
		"SELECT name, component, headings_json, frequencies_json FROM grids WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("select grid: %w", err)
	}

	var headings, frequencies []float64
	if err := json.Unmarshal([]byte(row.HeadingsJSON), &headings); err != nil {
		return nil, "", fmt.Errorf("unmarshal headings: %w", err)
	}
	if err := json.Unmarshal([]byte(row.FrequenciesJSON), &frequencies); err != nil {
		return nil, "", fmt.Errorf("unmarshal frequencies: %w", err)
	}

	re := make([][]float64, len(headings))
	im := make([][]float64, len(headings))
	for i := range re {
		re[i] = make([]float64, len(frequencies))
		im[i] = make([]float64, len(frequencies))
	}

	var cells []struct {
		HeadingIdx   int     `db:"heading_idx"`
		FrequencyIdx int     `db:"frequency_idx"`
		Re           float64 `db:"re"`
		Im           float64 `db:"im"`
	}
	if err := s.conn.Select(&cells,
		"SELECT heading_idx, frequency_idx, re, im FROM grid_cells WHERE grid_id = ?", id); err != nil {
		return nil, "", fmt.Errorf("select cells: %w", err)
	}
	for _, c := range cells {
		if c.HeadingIdx < 0 || c.HeadingIdx >= len(headings) ||
			c.FrequencyIdx < 0 || c.FrequencyIdx >= len(frequencies) {
			return nil, "", fmt.Errorf("cell index (%d,%d) outside stored axes", c.HeadingIdx, c.FrequencyIdx)
		}
		re[c.HeadingIdx][c.FrequencyIdx] = c.Re
		im[c.HeadingIdx][c.FrequencyIdx] = c.Im
	}

	g, err := rao.FromParts(headings, frequencies, re, im, rao.Component(row.Component))
	if err != nil {
		return nil, "", fmt.Errorf("rebuild grid: %w", err)
	}
	slog.Info("grid loaded", "id", id, "name", row.Name)

	return g, row.Name, nil
}

// List returns one Record per stored grid.
func (s *Store) List() ([]Record, error) {
	var recs []Record
	err := s.conn.Select(&recs, `
		SELECT g.id AS id, g.name AS name, g.component AS component,
		       COUNT(DISTINCT c.heading_idx) AS n_headings,
		       COUNT(DISTINCT c.frequency_idx) AS n_frequencies
		FROM grids g LEFT JOIN grid_cells c ON c.grid_id = g.id
		GROUP BY g.id, g.name, g.component
		ORDER BY g.name`)
	if err != nil {
		return nil, fmt.Errorf("list grids: %w", err)
	}

	return recs, nil
}

// Delete removes the grid stored under id and its cells.
func (s *Store) Delete(id string) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM grid_cells WHERE grid_id = ?", id); err != nil {
		return fmt.Errorf("delete cells: %w", err)
	}
	res, err := tx.Exec("DELETE FROM grids WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete grid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
