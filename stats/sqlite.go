package stats

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zucenko/mazehunt/game"
)

// SQLiteSink records one row per finished game so long batch runs survive
// for later inspection. It stores outcomes only, never game state.
type SQLiteSink struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteSink, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA synchronous=NORMAL;`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS results (
	id          TEXT PRIMARY KEY,
	outcome     TEXT NOT NULL,
	rounds      INTEGER NOT NULL,
	recorded_at TEXT NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) Record(id string, status game.Status, rounds int) error {
	_, err := s.db.Exec(
		`INSERT INTO results(id, outcome, rounds, recorded_at) VALUES(?, ?, ?, ?)`,
		id, status.Name(), rounds, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Summary returns the outcome counts recorded so far.
func (s *SQLiteSink) Summary() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT outcome, COUNT(*) FROM results GROUP BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[outcome] = n
	}
	return out, rows.Err()
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
