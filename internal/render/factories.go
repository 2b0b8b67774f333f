package render

import (
	"fmt"
	"html"
	"strings"

	"showfolio/internal/content"
)

// ParagraphFactory renders paragraph nodes. Paragraph text is treated
// as trusted rich text authored by the site owner, so inline markup
// like <strong> or <a> passes through unescaped.
type ParagraphFactory struct{}

func NewParagraphFactory() *ParagraphFactory { return &ParagraphFactory{} }

func (f *ParagraphFactory) CanCreate(typ string) bool { return typ == content.TypeParagraph }

func (f *ParagraphFactory) Create(item *content.Node) string {
	if !f.CanCreate(item.Type) {
		return ""
	}
	return "<p>" + item.Text + "</p>"
}

// SubheadingFactory renders subheading nodes as h3 elements with an
// optional class.
type SubheadingFactory struct{}

func NewSubheadingFactory() *SubheadingFactory { return &SubheadingFactory{} }

func (f *SubheadingFactory) CanCreate(typ string) bool { return typ == content.TypeSubheading }

func (f *SubheadingFactory) Create(item *content.Node) string {
	if !f.CanCreate(item.Type) {
		return ""
	}
	if item.ClassName != "" {
		return fmt.Sprintf("<h3 class=%q>%s</h3>", item.ClassName, html.EscapeString(item.Text))
	}
	return "<h3>" + html.EscapeString(item.Text) + "</h3>"
}

// ImageFactory renders image nodes inside a container with an optional
// caption.
type ImageFactory struct{}

func NewImageFactory() *ImageFactory { return &ImageFactory{} }

func (f *ImageFactory) CanCreate(typ string) bool { return typ == content.TypeImage }

func (f *ImageFactory) Create(item *content.Node) string {
	if !f.CanCreate(item.Type) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="doc-image-container">`)
	fmt.Fprintf(&b, `<img src=%q alt=%q loading="lazy">`, item.URL, item.Alt)
	if item.Caption != "" {
		b.WriteString(`<figcaption>` + html.EscapeString(item.Caption) + `</figcaption>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// ListFactory renders list nodes as unordered lists.
type ListFactory struct{}

func NewListFactory() *ListFactory { return &ListFactory{} }

func (f *ListFactory) CanCreate(typ string) bool { return typ == content.TypeList }

func (f *ListFactory) Create(item *content.Node) string {
	if !f.CanCreate(item.Type) {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, entry := range item.Items {
		b.WriteString("<li>" + html.EscapeString(entry) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// CodeFactory renders code nodes as pre/code blocks tagged with the
// language. Highlighting and the copy control are added later by the
// Manager's post-processing pass.
type CodeFactory struct{}

func NewCodeFactory() *CodeFactory { return &CodeFactory{} }

func (f *CodeFactory) CanCreate(typ string) bool { return typ == content.TypeCode }

func (f *CodeFactory) Create(item *content.Node) string {
	if !f.CanCreate(item.Type) {
		return ""
	}
	lang := item.Language
	if lang == "" {
		lang = "plaintext"
	}
	return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
		html.EscapeString(lang), html.EscapeString(item.Text))
}

// FAQFactory renders frequently-asked-question nodes as a list of
// question/answer cards. Answers are trusted rich text, questions are
// escaped.
type FAQFactory struct{}

func NewFAQFactory() *FAQFactory { return &FAQFactory{} }

func (f *FAQFactory) CanCreate(typ string) bool { return typ == content.TypeFAQ }

func (f *FAQFactory) Create(item *content.Node) string {
	if !f.CanCreate(item.Type) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="faq-container">`)
	for _, qa := range item.FAQ {
		b.WriteString(`<div class="faq-item">`)
		b.WriteString(`<h5 class="faq-question">` + html.EscapeString(qa.Question) + `</h5>`)
		b.WriteString(`<div class="faq-answer">` + qa.Answer + `</div>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
