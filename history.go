package replkit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// History is the persistent command history of a shell, backed by a small
// SQLite database. It is loaded into the line editor at startup and
// appended to once per accepted line.
type History struct {
	db    *sql.DB
	limit int
}

// OpenHistory opens (and creates, if necessary) the history database at
// path. At most limit entries are retained; limit <= 0 keeps everything.
func OpenHistory(path string, limit int) (*History, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			line       TEXT NOT NULL,
			entered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %v", err)
	}

	return &History{db: db, limit: limit}, nil
}

// Append records an accepted line. Blank lines and repeats of the most
// recent entry are skipped. When the configured limit is exceeded, the
// oldest entries are trimmed.
func (h *History) Append(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var last string
	err := h.db.QueryRow(`SELECT line FROM history ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && last == line {
		return nil
	}

	if _, err := h.db.Exec(`INSERT INTO history (line) VALUES (?)`, line); err != nil {
		return err
	}
	return h.trim()
}

// trim deletes everything but the newest limit entries.
func (h *History) trim() error {
	if h.limit <= 0 {
		return nil
	}
	_, err := h.db.Exec(`
		DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)
	`, h.limit)
	return err
}

// Recent returns up to n of the newest entries, oldest first, ready to be
// replayed into the line editor. n <= 0 returns everything retained.
func (h *History) Recent(n int) ([]string, error) {
	query := `SELECT line FROM history ORDER BY id ASC`
	var rows *sql.Rows
	var err error
	if n > 0 {
		query = `
			SELECT line FROM (
				SELECT id, line FROM history ORDER BY id DESC LIMIT ?
			) ORDER BY id ASC
		`
		rows, err = h.db.Query(query, n)
	} else {
		rows, err = h.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Close releases the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}
