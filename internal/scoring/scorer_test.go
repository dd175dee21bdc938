package scoring_test

import (
	"strings"
	"testing"

	"resumatic/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_NoKeywordsIsBaseOnly(t *testing.T) {
	s := scoring.NewDefaultScorer()
	assert.Equal(t, 40, s.Score("An unremarkable paragraph about gardening."))
	assert.Equal(t, 40, s.Score(""))
}

func TestScore_AllKeywordsClampsAt100(t *testing.T) {
	var parts []string
	total := 0
	for _, w := range scoring.DefaultWeights {
		parts = append(parts, w.Keyword)
		total += w.Weight
	}
	require.Greater(t, scoring.DefaultBase+total, 100, "weight table must exceed the cap for this test to mean anything")

	text := strings.Join(parts, " and ")
	assert.Equal(t, 100, scoring.NewDefaultScorer().Score(text))
}

func TestScore_Deterministic(t *testing.T) {
	s := scoring.NewDefaultScorer()
	text := "Python engineer with AWS and Docker experience."
	first := s.Score(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(text))
	}
}

func TestScore_PresenceNotFrequency(t *testing.T) {
	s := scoring.NewDefaultScorer()
	once := s.Score("python")
	thrice := s.Score("python python python")
	assert.Equal(t, once, thrice)
}

func TestScore_WordBoundary(t *testing.T) {
	s := scoring.NewScorer(40, []scoring.KeywordWeight{{Keyword: "java", Weight: 10}})

	assert.Equal(t, 50, s.Score("Senior Java developer"))
	// "javascript" contains "java" but not as a whole word.
	assert.Equal(t, 40, s.Score("javascript only"))
}

func TestScore_MetacharacterKeywordsMatchLiterally(t *testing.T) {
	s := scoring.NewScorer(40, []scoring.KeywordWeight{{Keyword: "node.js", Weight: 7}})

	assert.Equal(t, 47, s.Score("Built services in Node.js for three years."))
	// The dot must not act as a wildcard.
	assert.Equal(t, 40, s.Score("nodeXjs"))
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := scoring.NewDefaultScorer()
	assert.Equal(t, s.Score("PYTHON and SQL"), s.Score("python and sql"))
}

func TestScore_AlwaysInRange(t *testing.T) {
	s := scoring.NewDefaultScorer()
	inputs := []string{
		"",
		"python java javascript sql aws react node.js docker kubernetes git leadership communication project management agile",
		strings.Repeat("lorem ipsum ", 1000),
		"!@#$%^&*()",
	}
	for _, in := range inputs {
		got := s.Score(in)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}
