package render

import (
	"html"
	"strings"

	"showfolio/internal/content"
)

// SubSectionFactory renders nested subsection nodes. Unlike the flat
// factories it needs the enclosing section id, to mint the composite
// element id, and a renderer callback for the nested content. Both are
// supplied by the Manager at dispatch time.
type SubSectionFactory struct{}

func NewSubSectionFactory() *SubSectionFactory { return &SubSectionFactory{} }

func (f *SubSectionFactory) CanCreate(typ string) bool { return typ == content.TypeSubSection }

// Create without the extra context always fails. Subsections must go
// through CreateNested so the composite id and recursion are wired.
func (f *SubSectionFactory) Create(item *content.Node) string { return "" }

// CreateNested renders a subsection under sectionID. The element id is
// "<sectionID>-<subID>" so subsection ids only need to be unique among
// siblings. Returns an error when render is nil rather than silently
// dropping nested content.
func (f *SubSectionFactory) CreateNested(item *content.Node, sectionID string, render RenderFunc) (string, error) {
	if !f.CanCreate(item.Type) {
		return "", nil
	}
	if render == nil {
		return "", errSubSectionNeedsRenderer
	}
	compositeID := sectionID + "-" + item.ID
	var b strings.Builder
	b.WriteString(`<div id="` + html.EscapeString(compositeID) + `" class="doc-subsection">`)
	if item.Title != "" {
		b.WriteString(`<h3 class="subsection-title">` + html.EscapeString(item.Title) + `</h3>`)
	}
	b.WriteString(render(item.Content, compositeID))
	b.WriteString(`</div>`)
	return b.String(), nil
}
