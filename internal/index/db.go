// Package index keeps a small sqlite counter of captured events so the bot
// can answer /stats without re-reading the spreadsheet.
package index

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS captures (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	kind        TEXT NOT NULL,
	user        TEXT NOT NULL,
	captured_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_captures_kind ON captures(kind);
`

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return &DB{db}, nil
}

// Init applies the schema. Safe to run on every start.
func (d *DB) Init() error {
	if _, err := d.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Add counts one capture of the given kind.
func (d *DB) Add(kind, user string, at time.Time) error {
	_, err := d.Exec(
		`INSERT INTO captures (kind, user, captured_at) VALUES (?, ?, ?)`,
		kind, user, at.UTC().Format(time.RFC3339),
	)
	return err
}

type KindCount struct {
	Kind  string
	Count int
}

// CountByKind returns capture totals per kind, alphabetical.
func (d *DB) CountByKind() ([]KindCount, error) {
	rows, err := d.Query(`SELECT kind, COUNT(*) FROM captures GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var kc KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, err
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}
