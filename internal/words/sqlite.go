// internal/words/sqlite.go
//
// SQLite-backed word source. The pool is loaded eagerly and the database
// handle is closed before Load returns, so nothing outlives the call.

package words

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// DBSource loads the word pool from a SQLite database containing a
// words(word TEXT) table.
type DBSource struct{ DSN string }

func (s *DBSource) Load() ([]string, error) {
	// sql.Open would happily create an empty database file; a missing
	// path should be ErrNotFound instead.
	if _, err := os.Stat(s.DSN); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.DSN)
	}
	db, err := sql.Open("sqlite3", s.DSN+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.DSN, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		if w = normalize(w); w != "" {
			out = append(out, w)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, s.DSN)
	}
	return out, nil
}
