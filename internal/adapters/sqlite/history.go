package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"mnemo/internal/config"
	"mnemo/internal/domain"
	"mnemo/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// History implements ports.AccessLog on a SQLite database kept at a
// reserved name under the store root, so it stays invisible to the file
// tools. The log is append-only and purely diagnostic: the associative
// index never reads from it.
type History struct {
	db *sql.DB
}

var _ ports.AccessLog = (*History)(nil)

// OpenHistory opens (and if needed initializes) the access log for root.
func OpenHistory(root string) (*History, error) {
	dbPath := filepath.Join(root, config.HistoryDBName)

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS accesses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			file TEXT NOT NULL,
			op TEXT NOT NULL,
			at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_accesses_file ON accesses(file);
		CREATE INDEX IF NOT EXISTS idx_accesses_session ON accesses(session_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// Record appends one access event.
func (h *History) Record(event domain.AccessEvent) error {
	_, err := h.db.Exec(
		`INSERT INTO accesses (session_id, file, op, at) VALUES (?, ?, ?, ?)`,
		event.SessionID, event.File, event.Op, event.At,
	)
	if err != nil {
		return fmt.Errorf("recording access: %w", err)
	}
	return nil
}

// Recent returns the newest events, most recent first.
func (h *History) Recent(limit int) ([]domain.AccessEvent, error) {
	return h.query(
		`SELECT session_id, file, op, at FROM accesses ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// RecentForFile returns the newest events touching one file.
func (h *History) RecentForFile(file string, limit int) ([]domain.AccessEvent, error) {
	return h.query(
		`SELECT session_id, file, op, at FROM accesses WHERE file = ? ORDER BY id DESC LIMIT ?`,
		file, limit,
	)
}

func (h *History) query(q string, args ...any) ([]domain.AccessEvent, error) {
	rows, err := h.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.AccessEvent
	for rows.Next() {
		var e domain.AccessEvent
		if err := rows.Scan(&e.SessionID, &e.File, &e.Op, &e.At); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// TopFiles returns the most-accessed files with their event counts.
func (h *History) TopFiles(limit int) ([]domain.FileCount, error) {
	rows, err := h.db.Query(`
		SELECT file, COUNT(*) AS n FROM accesses
		GROUP BY file ORDER BY n DESC, file ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.FileCount
	for rows.Next() {
		var fc domain.FileCount
		if err := rows.Scan(&fc.File, &fc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, fc)
	}
	return counts, rows.Err()
}
