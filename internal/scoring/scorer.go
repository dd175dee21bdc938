// Package scoring computes ATS-style keyword relevance scores over raw
// resume text. Scoring is a total function: any string input yields a
// deterministic score in [0,100].
package scoring

import (
	"regexp"
)

// DefaultBase is the score every document starts from before keyword
// weights are applied.
const DefaultBase = 40

// KeywordWeight pairs a keyword with its score contribution. The slice
// form keeps the table ordered so tests and logs are deterministic.
type KeywordWeight struct {
	Keyword string
	Weight  int
}

// DefaultWeights is the built-in keyword table. The weights sum past the
// 100 cap on purpose; the scorer clamps.
var DefaultWeights = []KeywordWeight{
	{Keyword: "python", Weight: 10},
	{Keyword: "java", Weight: 8},
	{Keyword: "javascript", Weight: 8},
	{Keyword: "sql", Weight: 8},
	{Keyword: "aws", Weight: 8},
	{Keyword: "react", Weight: 7},
	{Keyword: "node.js", Weight: 7},
	{Keyword: "docker", Weight: 6},
	{Keyword: "kubernetes", Weight: 6},
	{Keyword: "git", Weight: 5},
	{Keyword: "leadership", Weight: 5},
	{Keyword: "communication", Weight: 5},
	{Keyword: "project management", Weight: 5},
	{Keyword: "agile", Weight: 4},
}

type weightedPattern struct {
	keyword string
	weight  int
	re      *regexp.Regexp
}

// Scorer scores text against a fixed keyword table. Safe for concurrent
// use once constructed.
type Scorer struct {
	base     int
	patterns []weightedPattern
}

// NewScorer compiles a case-insensitive whole-word pattern per keyword.
// Keywords are escaped, so entries like "node.js" match literally.
func NewScorer(base int, weights []KeywordWeight) *Scorer {
	s := &Scorer{base: base, patterns: make([]weightedPattern, 0, len(weights))}
	for _, w := range weights {
		s.patterns = append(s.patterns, weightedPattern{
			keyword: w.Keyword,
			weight:  w.Weight,
			re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w.Keyword) + `\b`),
		})
	}
	return s
}

// NewDefaultScorer returns a scorer over DefaultBase and DefaultWeights.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultBase, DefaultWeights)
}

// Score returns the clamped keyword score for text. A keyword counts once
// no matter how often it appears (presence, not frequency).
func (s *Scorer) Score(text string) int {
	score := s.base
	for _, p := range s.patterns {
		if p.re.MatchString(text) {
			score += p.weight
		}
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
