// Package db keeps an optional SQLite ledger of extractor and injector runs.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thesavant42/iconkit/internal/models"

	_ "modernc.org/sqlite"
)

const timeFormat = "2006-01-02T15:04:05Z"

// Run kinds
const (
	KindExtract = "extract"
	KindInject  = "inject"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// Run is a stored ledger row
type Run struct {
	ID         int64
	Kind       string
	Root       string
	StartedAt  string
	FinishedAt string
	Summary    models.Summary // inject runs
	Extracted  int            // extract runs
}

// Outcome is one file or icon recorded against a run
type Outcome struct {
	Path   string
	Status string
	Detail string
}

// New opens (or creates) the ledger and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createRunsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create runs schema: %w", err)
	}

	if _, err := conn.Exec(createOutcomesTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create outcomes schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// OpenRun opens the ledger at dbPath and starts a run of the given kind
func OpenRun(dbPath, kind, root string) (*DB, int64, error) {
	database, err := New(dbPath)
	if err != nil {
		return nil, 0, err
	}
	runID, err := database.StartRun(kind, root)
	if err != nil {
		database.Close()
		return nil, 0, err
	}
	return database, runID, nil
}

// StartRun inserts a new run row and returns its id
func (db *DB) StartRun(kind, root string) (int64, error) {
	res, err := db.conn.Exec(insertRun, kind, root, now())
	if err != nil {
		return 0, fmt.Errorf("failed to start run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// RecordOutcome stores one per-file (or per-icon) outcome
func (db *DB) RecordOutcome(runID int64, path, status, detail string) error {
	if _, err := db.conn.Exec(insertOutcome, runID, path, status, detail, now()); err != nil {
		return fmt.Errorf("failed to record outcome for %s: %w", path, err)
	}
	return nil
}

// RecordFileResult stores an injector file result
func (db *DB) RecordFileResult(runID int64, r models.FileResult) error {
	detail := ""
	if r.Err != nil {
		detail = r.Err.Error()
	}
	return db.RecordOutcome(runID, r.Path, string(r.Status), detail)
}

// FinishRun stamps the run with its end time and counts
func (db *DB) FinishRun(runID int64, s models.Summary) error {
	_, err := db.conn.Exec(finishRun, now(), s.Discovered, s.Updated, s.Unchanged, s.Skipped, s.Errored, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run %d: %w", runID, err)
	}
	return nil
}

// FinishExtractRun stamps an extract run with its end time and icon count
func (db *DB) FinishExtractRun(runID int64, extracted int) error {
	if _, err := db.conn.Exec(finishExtractRun, now(), extracted, runID); err != nil {
		return fmt.Errorf("failed to finish run %d: %w", runID, err)
	}
	return nil
}

// GetRun loads a run by id
func (db *DB) GetRun(runID int64) (Run, error) {
	var r Run
	err := db.conn.QueryRow(selectRun, runID).Scan(
		&r.ID, &r.Kind, &r.Root, &r.StartedAt, &r.FinishedAt,
		&r.Summary.Discovered, &r.Summary.Updated, &r.Summary.Unchanged,
		&r.Summary.Skipped, &r.Summary.Errored, &r.Extracted,
	)
	if err == sql.ErrNoRows {
		return Run{}, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	return r, nil
}

// GetOutcomes returns a run's outcomes in insertion order
func (db *DB) GetOutcomes(runID int64) ([]Outcome, error) {
	rows, err := db.conn.Query(selectOutcomes, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.Path, &o.Status, &o.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func now() string {
	return time.Now().UTC().Format(timeFormat)
}
