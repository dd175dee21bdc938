package models

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceMetrics accompanies every optimization result.
// ReadabilityIndex and SectionCompleteness are fixed placeholder values
// until a real computation exists; KeywordDensity is word count / 100
// rounded to one decimal place.
type PerformanceMetrics struct {
	KeywordDensity      float64 `json:"keyword_density"`
	ReadabilityIndex    int     `json:"readability_index"`
	SectionCompleteness int     `json:"section_completeness"`
}

// OptimizationResult is the value object returned to callers after a
// pipeline run. Scores are ATS-style 0-100 integers.
type OptimizationResult struct {
	OriginalScore      int                `json:"original_ats_score"`
	OptimizedScore     int                `json:"optimized_ats_score"`
	OptimizedResume    string             `json:"optimized_resume"`
	KeywordsAdded      []string           `json:"keywords_added"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
}

// OptimizationRun mirrors the optimization_runs history table.
type OptimizationRun struct {
	ID             int64     `db:"id"`
	SessionID      uuid.UUID `db:"session_id"`
	OriginalScore  int       `db:"original_score"`
	OptimizedScore int       `db:"optimized_score"`
	Category       string    `db:"category"`
	KeywordsAdded  []string  `db:"keywords_added"` // stored comma-joined
	CreatedAt      time.Time `db:"created_at"`
}

// DocumentStats holds supplementary counts shown in verbose CLI output.
// Not part of the result payload.
type DocumentStats struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
}
