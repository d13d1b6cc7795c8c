package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	day          INTEGER NOT NULL,
	part         INTEGER NOT NULL,
	source       TEXT NOT NULL,
	digest       TEXT NOT NULL,
	value        INTEGER NOT NULL DEFAULT 0,
	solved       INTEGER NOT NULL DEFAULT 0,
	error        TEXT,
	duration_ns  INTEGER NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_lookup ON runs(day, part, digest);
`

const runColumns = `run_id, day, part, source, digest, value, solved, error, duration_ns, created_at`

// Fixed-width so that created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// #endregion schema

// #region store-struct
// Store manages run history in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region record-run
// RecordRun inserts rec and returns its run ID. An empty RunID is replaced
// with a fresh UUID and a zero CreatedAt with the current time.
func (s *Store) RecordRun(rec Run) (string, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Day, rec.Part, rec.Source, rec.Digest,
		rec.Value, boolToInt(rec.Solved), nullIfEmpty(rec.Error),
		rec.Duration.Nanoseconds(), rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return rec.RunID, nil
}

// #endregion record-run

// #region get-run
// GetRun retrieves a run by ID.
func (s *Store) GetRun(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("get run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return rec, nil
}

// #endregion get-run

// #region cached-answer
// CachedAnswer returns the most recent error-free run of day/part over the
// input with the given digest.
func (s *Store) CachedAnswer(day, part int, digest string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs
		 WHERE day = ? AND part = ? AND digest = ? AND error IS NULL
		 ORDER BY created_at DESC LIMIT 1`,
		day, part, digest,
	)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("cached answer: %w", err)
	}
	return rec, nil
}

// #endregion cached-answer

// #region list-runs
// ListRuns returns up to limit runs, newest first. day <= 0 means all days.
func (s *Store) ListRuns(limit, day int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs`
	args := []interface{}{}
	if day > 0 {
		query += ` WHERE day = ?`
		args = append(args, day)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}

// #endregion list-runs

// #region helpers
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(sc scanner) (Run, error) {
	var rec Run
	var solved int
	var errText sql.NullString
	var durationNs int64
	var createdStr string

	err := sc.Scan(&rec.RunID, &rec.Day, &rec.Part, &rec.Source, &rec.Digest,
		&rec.Value, &solved, &errText, &durationNs, &createdStr)
	if err != nil {
		return Run{}, err
	}
	rec.Solved = solved != 0
	if errText.Valid {
		rec.Error = errText.String
	}
	rec.Duration = time.Duration(durationNs)
	rec.CreatedAt, err = time.Parse(timeLayout, createdStr)
	if err != nil {
		return Run{}, fmt.Errorf("run %s: created_at: %w", rec.RunID, err)
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
