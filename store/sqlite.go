// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/hubtrace/series"
)

// Sentinel errors for the series store.
var (
	// ErrRunNotFound is returned when a run ID is unknown.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrEmptyRunID is returned when saving a run without an ID.
	ErrEmptyRunID = errors.New("store: run ID is empty")
)

const dateLayout = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	anchor      TEXT NOT NULL,
	policy      TEXT NOT NULL,
	sources     INTEGER NOT NULL,
	diagnostics INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS series_points (
	run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
	date   TEXT NOT NULL,
	metric TEXT NOT NULL,
	value  REAL NOT NULL,
	PRIMARY KEY (run_id, date, metric)
);

CREATE INDEX IF NOT EXISTS idx_points_metric ON series_points(metric);
`

// Run describes one persisted analysis run.
type Run struct {
	ID          string    `json:"run_id"`
	CreatedAt   time.Time `json:"created_at"`
	Anchor      string    `json:"anchor"`
	Policy      string    `json:"policy"`
	Sources     int       `json:"sources"`
	Diagnostics int       `json:"diagnostics"`
}

// NewRunID returns a random run identifier.
func NewRunID() string { return uuid.NewString() }

// SQLite is a series store backed by one database file.
type SQLite struct {
	db   *sql.DB
	path string
}

// Open creates (if needed) and opens the database at path.
func Open(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", schema} {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: init schema: %w", err)
		}
	}

	return &SQLite{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string { return s.path }

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// Save writes run and its series in one transaction, replacing any run with the same ID.
func (s *SQLite) Save(ctx context.Context, run Run, ser series.Series) error {
	if run.ID == "" {
		return ErrEmptyRunID
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM series_points WHERE run_id = ?`, run.ID); err != nil {
		return fmt.Errorf("store: replace run: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (run_id, created_at, anchor, policy, sources, diagnostics)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339Nano), run.Anchor, run.Policy, run.Sources, run.Diagnostics,
	); err != nil {
		return fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO series_points (run_id, date, metric, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	for _, rec := range ser {
		date := rec.Date.Format(dateLayout)
		for metric, value := range rec.Metrics {
			if _, err = stmt.ExecContext(ctx, run.ID, date, metric, value); err != nil {
				return fmt.Errorf("store: insert %s/%s: %w", date, metric, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("run_id", run.ID).Int("dates", len(ser)).Str("path", s.path).Msg("series saved")

	return nil
}

// Load returns the run and series stored under runID.
func (s *SQLite) Load(ctx context.Context, runID string) (Run, series.Series, error) {
	run, err := s.run(ctx, runID)
	if err != nil {
		return Run{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, metric, value FROM series_points WHERE run_id = ? ORDER BY date, metric`, runID)
	if err != nil {
		return Run{}, nil, fmt.Errorf("store: query points: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close series query rows")
		}
	}(rows)

	out := series.Series{}
	for rows.Next() {
		var (
			date, metric string
			value        float64
		)
		if err = rows.Scan(&date, &metric, &value); err != nil {
			return Run{}, nil, err
		}
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			return Run{}, nil, fmt.Errorf("store: bad date %q: %w", date, err)
		}
		if n := len(out); n == 0 || !out[n-1].Date.Equal(day) {
			out = append(out, series.Record{Date: day, Metrics: make(map[string]float64)})
		}
		out[len(out)-1].Metrics[metric] = value
	}
	if err = rows.Err(); err != nil {
		return Run{}, nil, err
	}

	return run, out, nil
}

// Runs lists the stored runs, oldest first.
func (s *SQLite) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, created_at, anchor, policy, sources, diagnostics FROM runs ORDER BY created_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

func (s *SQLite) run(ctx context.Context, runID string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT run_id, created_at, anchor, policy, sources, diagnostics FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		created string
	)
	if err := sc.Scan(&r.ID, &created, &r.Anchor, &r.Policy, &r.Sources, &r.Diagnostics); err != nil {
		return Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("store: bad created_at %q: %w", created, err)
	}
	r.CreatedAt = t

	return r, nil
}
