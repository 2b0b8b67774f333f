package docs

import (
	"fmt"
	"html"
	"strings"

	"showfolio/internal/content"
	"showfolio/internal/render"
)

// Renderer assembles whole documentation pages from parsed sets.
type Renderer struct {
	manager *render.Manager
}

func NewRenderer(manager *render.Manager) *Renderer {
	return &Renderer{manager: manager}
}

// RenderDocument produces the article body and the matching table of
// contents for one documentation set. Each section becomes an
// addressable <section> element; section content goes through the
// component factories and then one post-processing pass for code
// highlighting and copy controls.
func (r *Renderer) RenderDocument(doc *content.DocumentationSet) (string, *TOC) {
	var b strings.Builder
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		fmt.Fprintf(&b, `<section id="%s" class="doc-section">`, html.EscapeString(sec.ID))
		b.WriteString("\n")
		if sec.Title != "" {
			b.WriteString(`<h2 class="section-title">` + html.EscapeString(sec.Title) + `</h2>`)
			b.WriteString("\n")
		}
		b.WriteString(r.manager.RenderNodes(sec.Content, sec.ID))
		b.WriteString("\n</section>\n")
	}
	body := r.manager.PostProcess(b.String())
	return body, BuildTOC(doc.Sections)
}

// FirstSectionID is the section the viewer lands on when the request
// carries no fragment.
func FirstSectionID(doc *content.DocumentationSet) string {
	if len(doc.Sections) == 0 {
		return ""
	}
	return doc.Sections[0].ID
}
