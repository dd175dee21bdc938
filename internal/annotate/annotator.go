// Package annotate performs the structural document mutation: locate (or
// synthesize) the skills section of an HTML resume and append keyword
// marker elements to it without touching anything else.
package annotate

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"resumatic/internal/models"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultHeadingLabel is the text of the heading synthesized when no
// skills-like section exists.
const DefaultHeadingLabel = "Professional Skills"

// markerClass tags injected keywords for downstream styling.
const markerClass = "ats-keyword"

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// sectionRe matches heading text naming a skills-like section. Substring
// match, so "Technical Skills" and "Core Proficiencies" both qualify.
var sectionRe = regexp.MustCompile(`(?i)skills|expertise|proficienc`)

// Annotator appends keyword markers to a resume's skills section.
type Annotator struct{}

func New() *Annotator {
	return &Annotator{}
}

// Annotate parses doc, finds the first h1-h6 heading whose text looks
// like a skills section (synthesizing one as the first child of body when
// absent), and appends each keyword not already present in the section
// as a marker span. Keywords keep their input order; ones already in the
// section's rendered text are skipped in place, which also makes the
// whole operation idempotent. Returns the serialized document and the
// keywords actually injected, in injection order.
func (a *Annotator) Annotate(doc string, keywords []string) (string, []string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", models.ErrDocumentParse, err)
	}

	section := findSkillsHeading(root)
	if section == nil {
		section = synthesizeHeading(root)
		if section == nil {
			// html.Parse always produces a body; not having one means the
			// tree is unusable for annotation.
			return "", nil, fmt.Errorf("%w: document has no body", models.ErrDocumentParse)
		}
	}

	added := []string{}
	for _, kw := range keywords {
		// Re-read the live section text each iteration so duplicates
		// within the keyword list are skipped too.
		current := nodeText(section)
		if strings.Contains(current, kw) {
			continue
		}
		if strings.TrimSpace(current) != "" {
			section.AppendChild(&html.Node{Type: html.TextNode, Data: ", "})
		}
		section.AppendChild(newMarker(kw))
		added = append(added, kw)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", nil, fmt.Errorf("render annotated document: %w", err)
	}
	return buf.String(), added, nil
}

// findSkillsHeading returns the first heading element in document order
// whose rendered text matches the skills-section pattern.
func findSkillsHeading(root *html.Node) *html.Node {
	var found *html.Node
	var traverse func(n *html.Node)
	traverse = func(n *html.Node) {
		if n == nil || found != nil {
			return
		}
		if n.Type == html.ElementNode && headingTags[n.Data] && sectionRe.MatchString(nodeText(n)) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(root)
	return found
}

// synthesizeHeading inserts a default skills heading as the first child
// of body and returns it, or nil when the tree has no body.
func synthesizeHeading(root *html.Node) *html.Node {
	body := findElement(root, "body")
	if body == nil {
		return nil
	}
	heading := &html.Node{
		Type:     html.ElementNode,
		Data:     "h2",
		DataAtom: atom.H2,
	}
	heading.AppendChild(&html.Node{Type: html.TextNode, Data: DefaultHeadingLabel})
	body.InsertBefore(heading, body.FirstChild)
	return heading
}

func newMarker(keyword string) *html.Node {
	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "class", Val: markerClass}},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: keyword})
	return span
}

func findElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := findElement(c, tag); el != nil {
			return el
		}
	}
	return nil
}

// nodeText concatenates the text content of a subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return sb.String()
}
