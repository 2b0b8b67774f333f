// Package site renders the portfolio's pages and builds the static
// output: the documentation selector, the viewer, and the projects
// showcase, sharing one template set between the live server and the
// static builder.
package site

import (
	"bytes"
	"fmt"
	"html/template"

	"showfolio/internal/content"
	"showfolio/internal/docs"
	"showfolio/internal/render"
)

// PageRenderer renders full HTML pages from parsed content. It is safe
// for concurrent use once constructed.
type PageRenderer struct {
	siteName string
	theme    string
	docs     *docs.Renderer

	selector *template.Template
	document *template.Template
	projects *template.Template
}

func NewPageRenderer(siteName, theme string, manager *render.Manager) (*PageRenderer, error) {
	p := &PageRenderer{
		siteName: siteName,
		theme:    theme,
		docs:     docs.NewRenderer(manager),
	}
	var err error
	if p.selector, err = template.New("selector").Parse(selectorTemplate); err != nil {
		return nil, fmt.Errorf("parsing selector template: %w", err)
	}
	if p.document, err = template.New("document").Parse(documentTemplate); err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	if p.projects, err = template.New("projects").Parse(projectsTemplate); err != nil {
		return nil, fmt.Errorf("parsing projects template: %w", err)
	}
	return p, nil
}

// selectorCard is one documentation set on the selector grid.
type selectorCard struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	Tags        []string
	Href        string
}

type selectorData struct {
	SiteName     string
	Theme        string
	BasePath     string
	Entries      []selectorCard
	EnableUpload bool
}

// SelectorPage renders the landing grid. hrefFor maps a documentation
// id to its viewer link, which differs between the live server and the
// static output.
func (p *PageRenderer) SelectorPage(entries []content.IndexEntry, basePath string, enableUpload bool, hrefFor func(id string) string) ([]byte, error) {
	data := selectorData{
		SiteName:     p.siteName,
		Theme:        p.theme,
		BasePath:     basePath,
		EnableUpload: enableUpload,
	}
	for _, e := range entries {
		data.Entries = append(data.Entries, selectorCard{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Thumbnail:   e.Thumbnail,
			Tags:        e.Tags,
			Href:        hrefFor(e.ID),
		})
	}

	var buf bytes.Buffer
	if err := p.selector.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering selector page: %w", err)
	}
	return buf.Bytes(), nil
}

type documentData struct {
	SiteName string
	Theme    string
	BasePath string
	DocID    string
	Title    string
	TOCHTML  template.HTML
	Body     template.HTML
}

// DocumentPage renders the viewer for one documentation set: sidebar
// table of contents plus the article body produced by the component
// factories.
func (p *PageRenderer) DocumentPage(doc *content.DocumentationSet, basePath string) ([]byte, error) {
	body, toc := p.docs.RenderDocument(doc)
	data := documentData{
		SiteName: p.siteName,
		Theme:    p.theme,
		BasePath: basePath,
		DocID:    doc.ID,
		Title:    doc.Title,
		TOCHTML:  template.HTML(toc.ToHTML(docs.FirstSectionID(doc))),
		Body:     template.HTML(body),
	}

	var buf bytes.Buffer
	if err := p.document.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering document page %s: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}

type projectsData struct {
	SiteName string
	Theme    string
	BasePath string
}

// ProjectsPage renders the showcase shell; project data is fetched by
// the client so the carousel and its cache share one code path.
func (p *PageRenderer) ProjectsPage(basePath string) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.projects.Execute(&buf, projectsData{SiteName: p.siteName, Theme: p.theme, BasePath: basePath}); err != nil {
		return nil, fmt.Errorf("rendering projects page: %w", err)
	}
	return buf.Bytes(), nil
}

// Assets returns the static files every page links.
func Assets() map[string][]byte {
	return map[string][]byte{
		"style.css": []byte(cssContent),
		"app.js":    []byte(jsContent),
	}
}
