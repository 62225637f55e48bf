// Package store persists budget data: the JSON data file and a SQLite
// journal of saved sessions.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/budgie/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// savedAtLayout keeps saved_at lexically sortable.
const savedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// History is the SQLite-backed journal of saved snapshots.
type History struct {
	db *sql.DB
}

// OpenHistory opens or creates the journal database at the given path.
func OpenHistory(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the journal database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record appends a snapshot to the journal.
func (h *History) Record(s model.Snapshot) error {
	savedAt := s.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := h.db.Exec(`INSERT INTO snapshots
		(session_id, data_file, saved_at, budget, total_spent, balance, expense_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.SessionID, s.DataFile, savedAt.UTC().Format(savedAtLayout),
		s.Budget, s.Spent, s.Balance, s.Count,
	)
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	return nil
}

// Recent returns up to limit snapshots, newest first. limit <= 0 returns all.
func (h *History) Recent(limit int) ([]model.Snapshot, error) {
	query := `SELECT id, session_id, data_file, saved_at, budget, total_spent, balance, expense_count
		FROM snapshots ORDER BY saved_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []model.Snapshot
	for rows.Next() {
		var s model.Snapshot
		var savedAt string
		if err := rows.Scan(&s.ID, &s.SessionID, &s.DataFile, &savedAt,
			&s.Budget, &s.Spent, &s.Balance, &s.Count); err != nil {
			return nil, err
		}
		s.SavedAt, _ = time.Parse(savedAtLayout, savedAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// Count returns the number of recorded snapshots.
func (h *History) Count() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count)
	return count, err
}
