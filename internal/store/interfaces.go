package store

import (
	"context"

	"resumatic/internal/models"
)

// RunStore records and lists optimization run history.
type RunStore interface {
	RecordRun(ctx context.Context, run *models.OptimizationRun) error
	ListRuns(ctx context.Context, limit int) ([]*models.OptimizationRun, error)

	Ping(ctx context.Context) error
	Close() error
}
