// Package history implements the run-history store on SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"resumatic/internal/models"
	"resumatic/internal/store"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store implements store.RunStore using SQLite.
type Store struct {
	db *sql.DB
}

var _ store.RunStore = (*Store)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		original_score INTEGER NOT NULL,
		optimized_score INTEGER NOT NULL,
		category TEXT NOT NULL,
		keywords_added TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`

// NewStore opens (or creates) the history database at dsn. ":memory:"
// gives an ephemeral store.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("history DSN cannot be empty")
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// A single connection keeps :memory: databases coherent across the
	// pool and serializes writes, which sqlite wants anyway.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) RecordRun(ctx context.Context, run *models.OptimizationRun) error {
	query := `
		INSERT INTO optimization_runs
			(session_id, original_score, optimized_score, category, keywords_added, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now()
	res, err := s.db.ExecContext(ctx, query,
		run.SessionID.String(), run.OriginalScore, run.OptimizedScore,
		run.Category, strings.Join(run.KeywordsAdded, ","), now,
	)
	if err != nil {
		return fmt.Errorf("record optimization run: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		run.ID = id
	}
	run.CreatedAt = now
	return nil
}

func (s *Store) ListRuns(ctx context.Context, limit int) ([]*models.OptimizationRun, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, session_id, original_score, optimized_score, category, keywords_added, created_at
		FROM optimization_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list optimization runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.OptimizationRun
	for rows.Next() {
		var (
			run      models.OptimizationRun
			session  string
			keywords string
		)
		if err := rows.Scan(&run.ID, &session, &run.OriginalScore, &run.OptimizedScore,
			&run.Category, &keywords, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan optimization run row: %w", err)
		}
		if run.SessionID, err = uuid.Parse(session); err != nil {
			return nil, fmt.Errorf("parse session id %q: %w", session, err)
		}
		if keywords != "" {
			run.KeywordsAdded = strings.Split(keywords, ",")
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate optimization run rows: %w", err)
	}
	return runs, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
