// Package pipeline orchestrates a single optimization run: resolve the
// standards catalog, score the original text, select and inject
// keywords, score the result, and assemble metrics.
package pipeline

import (
	"context"
	"fmt"

	"resumatic/internal/annotate"
	"resumatic/internal/models"
	"resumatic/internal/scoring"
	"resumatic/internal/standards"
	"resumatic/internal/textstats"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Fixed metric values; no algorithm exists for these yet, so they are
// reproduced as literals rather than derived.
const (
	readabilityIndex    = 78
	sectionCompleteness = 95
)

// State tracks pipeline progress. Transitions are linear with no
// branching; standards failures are absorbed inside the provider and
// never become a state.
type State int

const (
	StateCreated State = iota
	StateStandardsResolved
	StateScoredOriginal
	StateAnnotated
	StateScoredFinal
	StateComplete
)

// Deps holds the pipeline's collaborators.
type Deps struct {
	Scorer    *scoring.Scorer
	Annotator *annotate.Annotator
	Provider  *standards.Provider
}

// Outcome bundles the caller-facing result with run metadata the facade
// records in history.
type Outcome struct {
	Result    models.OptimizationResult
	Category  string
	SessionID uuid.UUID
}

// Pipeline is single-use: construct, Resolve, Execute, discard. The
// document is fixed at construction; each pipeline owns its own text,
// catalog snapshot and result.
type Pipeline struct {
	deps    Deps
	resume  string
	session uuid.UUID

	state   State
	catalog standards.Catalog
}

// New builds a pipeline for one resume. Nil deps get defaults so tests
// can construct pipelines piecemeal.
func New(deps Deps, resumeText string) *Pipeline {
	if deps.Scorer == nil {
		deps.Scorer = scoring.NewDefaultScorer()
	}
	if deps.Annotator == nil {
		deps.Annotator = annotate.New()
	}
	if deps.Provider == nil {
		deps.Provider = standards.NewProvider(standards.ProviderOptions{})
	}
	return &Pipeline{
		deps:    deps,
		resume:  resumeText,
		session: uuid.New(),
	}
}

// SessionID identifies this run.
func (p *Pipeline) SessionID() uuid.UUID {
	return p.session
}

// State returns the current pipeline state.
func (p *Pipeline) State() State {
	return p.state
}

// Resolve fetches the standards catalog for this run. It must complete
// before Execute; scoring never runs against a partially resolved
// catalog. Resolve cannot fail — every refresh error collapses into the
// built-in catalog inside the provider.
func (p *Pipeline) Resolve(ctx context.Context) error {
	switch p.state {
	case StateCreated:
	case StateStandardsResolved:
		return nil
	default:
		return models.ErrPipelineSpent
	}

	p.catalog = p.deps.Provider.Resolve(ctx, p.resume)
	p.state = StateStandardsResolved
	return nil
}

// Execute runs the scoring and annotation sequence and yields the
// outcome. The only fatal path is a document that cannot be parsed.
func (p *Pipeline) Execute(ctx context.Context) (*Outcome, error) {
	switch p.state {
	case StateCreated:
		return nil, models.ErrPipelineNotResolved
	case StateStandardsResolved:
	default:
		return nil, models.ErrPipelineSpent
	}

	originalScore := p.deps.Scorer.Score(p.resume)
	p.state = StateScoredOriginal

	category, keywords := standards.Select(p.catalog, p.resume)
	log.Debugf("session %s: selected category %q", p.session, category)

	optimized, added, err := p.deps.Annotator.Annotate(p.resume, keywords)
	if err != nil {
		return nil, fmt.Errorf("annotate resume: %w", err)
	}
	p.state = StateAnnotated

	optimizedScore := p.deps.Scorer.Score(optimized)
	p.state = StateScoredFinal

	outcome := &Outcome{
		Result: models.OptimizationResult{
			OriginalScore:   originalScore,
			OptimizedScore:  optimizedScore,
			OptimizedResume: optimized,
			KeywordsAdded:   added,
			PerformanceMetrics: models.PerformanceMetrics{
				KeywordDensity:      textstats.Density(textstats.WordCount(p.resume)),
				ReadabilityIndex:    readabilityIndex,
				SectionCompleteness: sectionCompleteness,
			},
		},
		Category:  category,
		SessionID: p.session,
	}
	p.state = StateComplete
	return outcome, nil
}
