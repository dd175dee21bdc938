// Package textstats derives simple counts from raw resume text: the word
// count feeding the keyword-density metric, and sentence counts for
// verbose CLI output.
package textstats

import (
	"math"
	"strings"

	"resumatic/internal/models"

	"github.com/neurosnap/sentences/english"
)

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Density converts a word count into the keyword-density metric: count
// divided by 100, rounded to one decimal place.
func Density(wordCount int) float64 {
	return math.Round(float64(wordCount)/100*10) / 10
}

// Stats returns word and sentence counts for text.
func Stats(text string) models.DocumentStats {
	stats := models.DocumentStats{WordCount: WordCount(text)}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err == nil && tokenizer != nil {
		for _, s := range tokenizer.Tokenize(text) {
			if strings.TrimSpace(s.Text) != "" {
				stats.SentenceCount++
			}
		}
	}
	return stats
}
