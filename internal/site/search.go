package site

import (
	"encoding/json"
	"os"
	"strings"

	"showfolio/internal/content"
)

// SearchEntry is one searchable section in the generated site.
type SearchEntry struct {
	Doc     string `json:"doc"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// BuildSearchIndex flattens every section of every documentation set
// into search entries. Section text is extracted from the content
// nodes and truncated to keep the index small.
func BuildSearchIndex(sets []*content.DocumentationSet) []SearchEntry {
	var entries []SearchEntry
	for _, doc := range sets {
		for _, sec := range doc.Sections {
			text := sectionText(sec.Content)
			if len(text) > 2000 {
				text = text[:2000]
			}
			title := sec.Title
			if title == "" {
				title = sec.ID
			}
			entries = append(entries, SearchEntry{
				Doc:     doc.ID,
				Section: sec.ID,
				Title:   doc.Title + ": " + title,
				Path:    "documentation/" + doc.ID + "/index.html#" + sec.ID,
				Content: text,
			})
		}
	}
	return entries
}

// sectionText collects the human-readable text of a node sequence,
// including nested subsections.
func sectionText(nodes []content.Node) string {
	var parts []string
	for _, n := range nodes {
		switch n.Type {
		case content.TypeParagraph, content.TypeSubheading, content.TypeCode:
			if n.Text != "" {
				parts = append(parts, n.Text)
			}
		case content.TypeList:
			parts = append(parts, n.Items...)
		case content.TypeFAQ:
			for _, qa := range n.FAQ {
				parts = append(parts, qa.Question, qa.Answer)
			}
		case content.TypeSubSection:
			if n.Title != "" {
				parts = append(parts, n.Title)
			}
			parts = append(parts, sectionText(n.Content))
		}
	}
	return strings.Join(parts, " ")
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
