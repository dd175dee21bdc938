// Package services holds the application facade over the optimization
// pipeline.
package services

import (
	"context"
	"fmt"

	"resumatic/internal/annotate"
	"resumatic/internal/models"
	"resumatic/internal/pipeline"
	"resumatic/internal/scoring"
	"resumatic/internal/standards"
	"resumatic/internal/store"

	log "github.com/sirupsen/logrus"
)

// OptimizerServiceDeps bundles the facade's collaborators. NewProvider
// is a factory because a standards provider's catalog cache belongs to a
// single run. RunStore may be nil when history is disabled.
type OptimizerServiceDeps struct {
	Scorer      *scoring.Scorer
	Annotator   *annotate.Annotator
	NewProvider func() *standards.Provider
	RunStore    store.RunStore
}

// OptimizerService is the single entry point callers use. Each Optimize
// call builds a fresh single-use pipeline.
type OptimizerService struct {
	deps OptimizerServiceDeps
}

func NewOptimizerService(deps OptimizerServiceDeps) *OptimizerService {
	if deps.Scorer == nil {
		deps.Scorer = scoring.NewDefaultScorer()
	}
	if deps.Annotator == nil {
		deps.Annotator = annotate.New()
	}
	if deps.NewProvider == nil {
		deps.NewProvider = func() *standards.Provider {
			return standards.NewProvider(standards.ProviderOptions{})
		}
	}
	return &OptimizerService{deps: deps}
}

// Optimize scores, annotates and re-scores resumeText, recording the run
// in history when a store is configured. History failures are logged and
// never surfaced; the only caller-visible failure is an unparseable
// document.
func (s *OptimizerService) Optimize(ctx context.Context, resumeText string) (*models.OptimizationResult, error) {
	p := pipeline.New(pipeline.Deps{
		Scorer:    s.deps.Scorer,
		Annotator: s.deps.Annotator,
		Provider:  s.deps.NewProvider(),
	}, resumeText)

	if err := p.Resolve(ctx); err != nil {
		return nil, fmt.Errorf("resolve standards: %w", err)
	}
	outcome, err := p.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("optimize resume: %w", err)
	}

	s.recordRun(ctx, outcome)
	return &outcome.Result, nil
}

// ListRuns returns recent optimization history, newest first.
func (s *OptimizerService) ListRuns(ctx context.Context, limit int) ([]*models.OptimizationRun, error) {
	if s.deps.RunStore == nil {
		return nil, nil
	}
	return s.deps.RunStore.ListRuns(ctx, limit)
}

func (s *OptimizerService) recordRun(ctx context.Context, outcome *pipeline.Outcome) {
	if s.deps.RunStore == nil {
		return
	}
	run := &models.OptimizationRun{
		SessionID:      outcome.SessionID,
		OriginalScore:  outcome.Result.OriginalScore,
		OptimizedScore: outcome.Result.OptimizedScore,
		Category:       outcome.Category,
		KeywordsAdded:  outcome.Result.KeywordsAdded,
	}
	if err := s.deps.RunStore.RecordRun(ctx, run); err != nil {
		log.Warnf("failed to record optimization run %s: %v", outcome.SessionID, err)
	}
}
