// Package history records finished benchmark runs in SQLite so past
// model evaluations can be compared without re-opening result files.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultLimit = 50

type Store struct {
	db *sql.DB
}

// Entry is one completed benchmark run.
type Entry struct {
	ID             int64
	Provider       string
	Model          string
	Dataset        string
	Questions      int
	Correct        int
	MeanSimilarity float64
	MeanAnswerTime float64
	RunDate        time.Time
}

func NewStore(dbPath string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, errors.New("history: empty db path")
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("history: create db dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ping db: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("history: nil db")
	}

	stmts := []string{
		`PRAGMA journal_mode = WAL`,
		`CREATE TABLE IF NOT EXISTS benchmark_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			dataset TEXT NOT NULL,
			questions INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			mean_similarity REAL NOT NULL,
			mean_answer_time REAL NOT NULL,
			run_date INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_provider ON benchmark_runs(provider)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_run_date ON benchmark_runs(run_date)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("history: init schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save records a run and fills in the entry's ID.
func (s *Store) Save(ctx context.Context, e *Entry) error {
	if s == nil || s.db == nil {
		return errors.New("history: nil store")
	}
	if e == nil {
		return errors.New("history: nil entry")
	}
	if strings.TrimSpace(e.Provider) == "" {
		return errors.New("history: entry missing provider")
	}

	if e.RunDate.IsZero() {
		e.RunDate = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO benchmark_runs
			(provider, model, dataset, questions, correct, mean_similarity, mean_answer_time, run_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Provider, e.Model, e.Dataset, e.Questions, e.Correct,
		e.MeanSimilarity, e.MeanAnswerTime, e.RunDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("history: save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("history: last insert id: %w", err)
	}
	e.ID = id
	return nil
}

// ListRecent returns the most recent runs, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history: nil store")
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, provider, model, dataset, questions, correct, mean_similarity, mean_answer_time, run_date
		 FROM benchmark_runs
		 ORDER BY run_date DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var unix int64
		if err := rows.Scan(&e.ID, &e.Provider, &e.Model, &e.Dataset,
			&e.Questions, &e.Correct, &e.MeanSimilarity, &e.MeanAnswerTime, &unix); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		e.RunDate = time.Unix(unix, 0).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}
	return out, nil
}
