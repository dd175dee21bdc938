package textstats_test

import (
	"strings"
	"testing"

	"resumatic/internal/textstats"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, textstats.WordCount(""))
	assert.Equal(t, 0, textstats.WordCount("   \n\t "))
	assert.Equal(t, 4, textstats.WordCount("one two  three\nfour"))
}

func TestDensity(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{0, 0},
		{250, 2.5},
		{100, 1.0},
		{37, 0.4},
		{34, 0.3},
		{1234, 12.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textstats.Density(tt.words), "words=%d", tt.words)
	}
}

func TestStats(t *testing.T) {
	text := "First sentence here. Second one follows! Third, with a comma?"
	stats := textstats.Stats(text)
	assert.Equal(t, 10, stats.WordCount)
	assert.Equal(t, 3, stats.SentenceCount)
}

func TestStats_250WordDensityInput(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 250))
	stats := textstats.Stats(text)
	assert.Equal(t, 250, stats.WordCount)
	assert.Equal(t, 2.5, textstats.Density(stats.WordCount))
}
