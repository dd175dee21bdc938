// Package standards supplies the categorized keyword dictionary used to
// decide which keywords get injected into a resume, and the selector
// that picks the category for a given document.
package standards

// Category is a named, ordered keyword list.
type Category struct {
	Name     string
	Keywords []string
}

// Catalog is an ordered set of categories. Order matters: selection
// iterates in definition order and the first category is the fallback.
type Catalog struct {
	Categories []Category
}

// DefaultCatalog returns the built-in two-category catalog. Technology
// comes first and is therefore the selection fallback.
func DefaultCatalog() Catalog {
	return Catalog{Categories: []Category{
		{
			Name: "technology",
			Keywords: []string{
				"cloud computing",
				"agile methodologies",
				"devops",
				"microservices",
				"ci/cd",
				"api design",
			},
		},
		{
			Name: "finance",
			Keywords: []string{
				"financial analysis",
				"risk management",
				"forecasting",
				"budgeting",
				"regulatory compliance",
				"auditing",
			},
		},
	}}
}

// Merge overlays another catalog onto this one. Overlay categories win on
// name conflict; new overlay categories are appended in their own order.
// The receiver is not modified.
func (c Catalog) Merge(overlay Catalog) Catalog {
	if len(overlay.Categories) == 0 {
		return c
	}

	merged := Catalog{Categories: make([]Category, 0, len(c.Categories)+len(overlay.Categories))}
	replaced := make(map[string]bool, len(overlay.Categories))

	for _, base := range c.Categories {
		out := base
		for _, over := range overlay.Categories {
			if over.Name == base.Name {
				out = over
				replaced[over.Name] = true
				break
			}
		}
		merged.Categories = append(merged.Categories, out)
	}
	for _, over := range overlay.Categories {
		if !replaced[over.Name] {
			merged.Categories = append(merged.Categories, over)
		}
	}
	return merged
}

// IsEmpty reports whether the catalog has no categories.
func (c Catalog) IsEmpty() bool {
	return len(c.Categories) == 0
}
