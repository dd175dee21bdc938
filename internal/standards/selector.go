package standards

import (
	"strings"
)

// Select picks the keyword category for a document. Categories are tried
// in catalog order and the first whose keywords include a
// case-insensitive substring of the text wins; without a match the first
// category stands.
//
// Note the deliberate asymmetry with scoring: selection uses substring
// containment ("devops" inside "devopsy" counts) while the scorer
// requires whole-word matches. The two tests answer different questions
// (which bucket to inject vs. how injected words score) and are kept
// separate on purpose.
func Select(catalog Catalog, text string) (string, []string) {
	if catalog.IsEmpty() {
		return "", nil
	}

	selected := catalog.Categories[0]
	lower := strings.ToLower(text)

	for _, cat := range catalog.Categories {
		if containsAny(lower, cat.Keywords) {
			selected = cat
			break
		}
	}
	return selected.Name, selected.Keywords
}

func containsAny(lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
