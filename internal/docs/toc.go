package docs

import (
	"fmt"
	"html"
	"strings"

	"showfolio/internal/content"
)

// TOCEntry is one line of the table of contents. Level 0 entries point
// at sections, level 1 at subsections via their composite element id.
type TOCEntry struct {
	ID    string
	Title string
	Level int
}

// TOC is the sidebar table of contents for one documentation set.
type TOC struct {
	Entries []TOCEntry
}

// BuildTOC derives the table of contents from the section list. It is
// a pure function of its input, rebuilding twice from the same
// sections yields identical entries with no duplicates.
func BuildTOC(sections []content.Section) *TOC {
	toc := &TOC{}
	for _, sec := range sections {
		toc.Entries = append(toc.Entries, TOCEntry{ID: sec.ID, Title: sec.Title})
		for _, sub := range sec.SubSections() {
			toc.Entries = append(toc.Entries, TOCEntry{
				ID:    sec.ID + "-" + sub.ID,
				Title: sub.Title,
				Level: 1,
			})
		}
	}
	return toc
}

// ToHTML renders the table of contents as a nav list. Every link
// carries data-section-id so the client scroll sync can match entries
// to headings; activeID marks the current location.
func (t *TOC) ToHTML(activeID string) string {
	var b strings.Builder
	b.WriteString(`<nav class="doc-toc"><ul>`)
	b.WriteString("\n")
	for _, e := range t.Entries {
		class := "toc-entry"
		if e.Level > 0 {
			class = "toc-entry toc-subsection"
		}
		if e.ID == activeID {
			class += " active"
		}
		fmt.Fprintf(&b, `<li class="%s"><a href="#%s" data-section-id="%s">%s</a></li>`,
			class, html.EscapeString(e.ID), html.EscapeString(e.ID), html.EscapeString(e.Title))
		b.WriteString("\n")
	}
	b.WriteString("</ul></nav>")
	return b.String()
}
