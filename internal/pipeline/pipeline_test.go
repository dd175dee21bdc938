package pipeline_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumatic/internal/models"
	"resumatic/internal/pipeline"
	"resumatic/internal/standards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPipeline(t *testing.T, deps pipeline.Deps, text string) *pipeline.Outcome {
	t.Helper()
	p := pipeline.New(deps, text)
	require.NoError(t, p.Resolve(context.Background()))
	outcome, err := p.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, pipeline.StateComplete, p.State())
	return outcome
}

func TestExecute_RequiresResolve(t *testing.T) {
	p := pipeline.New(pipeline.Deps{}, "text")
	_, err := p.Execute(context.Background())
	assert.ErrorIs(t, err, models.ErrPipelineNotResolved)
}

func TestExecute_SingleUse(t *testing.T) {
	p := pipeline.New(pipeline.Deps{}, "text")
	require.NoError(t, p.Resolve(context.Background()))

	_, err := p.Execute(context.Background())
	require.NoError(t, err)

	_, err = p.Execute(context.Background())
	assert.ErrorIs(t, err, models.ErrPipelineSpent)
	assert.ErrorIs(t, p.Resolve(context.Background()), models.ErrPipelineSpent)
}

func TestResolve_Idempotent(t *testing.T) {
	p := pipeline.New(pipeline.Deps{}, "text")
	require.NoError(t, p.Resolve(context.Background()))
	require.NoError(t, p.Resolve(context.Background()))
	assert.Equal(t, pipeline.StateStandardsResolved, p.State())
}

// Scenario: no phone-like substring, no keyword matches anywhere.
func TestExecute_BlankSlateResume(t *testing.T) {
	text := "A quiet narrative about watercolor painting and long walks."

	outcome := runPipeline(t, pipeline.Deps{}, text)
	res := outcome.Result

	assert.Equal(t, 40, res.OriginalScore)
	assert.Equal(t, "technology", outcome.Category)

	// A skills heading was synthesized and every technology keyword
	// injected in catalog order.
	assert.Contains(t, res.OptimizedResume, "<h2>Professional Skills")
	tech := standards.DefaultCatalog().Categories[0]
	assert.Equal(t, tech.Keywords, res.KeywordsAdded)

	// "agile methodologies" carries the weighted word "agile" (+4); no
	// other injected keyword overlaps the weight table.
	assert.Equal(t, 44, res.OptimizedScore)

	assert.Equal(t, 78, res.PerformanceMetrics.ReadabilityIndex)
	assert.Equal(t, 95, res.PerformanceMetrics.SectionCompleteness)
	assert.Equal(t, 0.1, res.PerformanceMetrics.KeywordDensity)
}

// Scenario: an existing Skills heading already holds one keyword.
func TestExecute_PartiallyOptimizedResume(t *testing.T) {
	doc := `<html><body><h2>Skills: devops</h2><p>Engineer.</p></body></html>`

	outcome := runPipeline(t, pipeline.Deps{}, doc)
	res := outcome.Result

	assert.Equal(t, "technology", outcome.Category)
	assert.NotContains(t, res.KeywordsAdded, "devops")
	assert.Len(t, res.KeywordsAdded, len(standards.DefaultCatalog().Categories[0].Keywords)-1)
	assert.Equal(t, 1, strings.Count(res.OptimizedResume, "devops"))
	assert.Equal(t, 95, res.PerformanceMetrics.SectionCompleteness)
}

// Scenario: a phone-shaped substring triggers the refresh attempt, whose
// outcome never changes the catalog in this version.
func TestExecute_PhonePresentRefreshAttempted(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	text := "Reach me at 555-867-5309. Budgeting and auditing background."
	deps := pipeline.Deps{
		Provider: standards.NewProvider(standards.ProviderOptions{Endpoint: srv.URL}),
	}

	outcome := runPipeline(t, deps, text)

	assert.Equal(t, 1, requests)
	// Finance keywords present as substrings select the finance bucket.
	assert.Equal(t, "finance", outcome.Category)
	// "budgeting" and "auditing" sit in the body text, not in the
	// synthesized section, so every finance keyword still gets injected.
	fin := standards.DefaultCatalog().Categories[1]
	assert.Equal(t, fin.Keywords, outcome.Result.KeywordsAdded)
}

func TestExecute_FinanceSelectionAfterFailedRefresh(t *testing.T) {
	text := "Call 555-123-4567. Deep experience in risk management."
	deps := pipeline.Deps{
		Provider: standards.NewProvider(standards.ProviderOptions{Endpoint: "http://127.0.0.1:1"}),
	}

	outcome := runPipeline(t, deps, text)
	assert.Equal(t, "finance", outcome.Category)
}

func TestExecute_KeywordDensityFor250Words(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 250))
	outcome := runPipeline(t, pipeline.Deps{}, text)
	assert.Equal(t, 2.5, outcome.Result.PerformanceMetrics.KeywordDensity)
}

func TestExecute_ScoresAlwaysInRange(t *testing.T) {
	texts := []string{
		"",
		"python java javascript sql aws react node.js docker kubernetes git leadership communication project management agile",
		"<html><body><h1>Skills</h1>python sql aws docker</body></html>",
	}
	for _, text := range texts {
		outcome := runPipeline(t, pipeline.Deps{}, text)
		for _, score := range []int{outcome.Result.OriginalScore, outcome.Result.OptimizedScore} {
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestExecute_SessionIDStable(t *testing.T) {
	p := pipeline.New(pipeline.Deps{}, "text")
	first := p.SessionID()
	assert.Equal(t, first, p.SessionID())
	assert.NotEqual(t, first, pipeline.New(pipeline.Deps{}, "text").SessionID())
}
