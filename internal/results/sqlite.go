// Package results persists completed simulation runs to SQLite so sweeps can
// be collected and queried after the fact.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/osnlab/seizsim/internal/export"
	"github.com/osnlab/seizsim/internal/seiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	model_type  TEXT NOT NULL,
	parameters  TEXT NOT NULL,
	num_nodes   INTEGER NOT NULL,
	num_edges   INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
	run_id  TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	step    INTEGER NOT NULL,
	s       INTEGER NOT NULL,
	e       INTEGER NOT NULL,
	i       INTEGER NOT NULL,
	z       INTEGER NOT NULL,
	PRIMARY KEY (run_id, step)
);
`

// Store persists run outputs in a SQLite database.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates (or opens) the results database at path and initializes the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}
	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize results schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunSummary is the stored metadata of one run.
type RunSummary struct {
	ID        string
	ModelType string
	NumNodes  int
	NumEdges  int
	Seed      int64
	CreatedAt time.Time
}

// SaveRun inserts a completed run and its full history atomically, returning
// the generated run ID.
func (s *Store) SaveRun(ctx context.Context, out export.RunOutput, seed int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	params, err := json.Marshal(out.Parameters)
	if err != nil {
		return "", fmt.Errorf("marshal parameters: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, model_type, parameters, num_nodes, num_edges, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, out.ModelType, string(params),
		out.NetworkInfo.NumNodes, out.NetworkInfo.NumEdges,
		seed, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO history (run_id, step, s, e, i, z) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare history insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range out.History {
		if _, err := stmt.ExecContext(ctx, id, rec.Step, rec.S, rec.E, rec.I, rec.Z); err != nil {
			return "", fmt.Errorf("insert history step %d: %w", rec.Step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns all stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, model_type, num_nodes, num_edges, seed, created_at
		 FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt string
		if err := rows.Scan(&r.ID, &r.ModelType, &r.NumNodes, &r.NumEdges, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetHistory returns the stored history of a run in step order.
func (s *Store) GetHistory(ctx context.Context, runID string) ([]seiz.StepRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT step, s, e, i, z FROM history WHERE run_id = ? ORDER BY step`, runID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var history []seiz.StepRecord
	for rows.Next() {
		var rec seiz.StepRecord
		if err := rows.Scan(&rec.Step, &rec.S, &rec.E, &rec.I, &rec.Z); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if history == nil {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	return history, nil
}
