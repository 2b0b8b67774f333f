package content

// Node type tags as they appear in documentation JSON.
const (
	TypeParagraph  = "paragraph"
	TypeSubheading = "subheading"
	TypeImage      = "image"
	TypeList       = "list"
	TypeCode       = "code"
	TypeFAQ        = "faq"
	TypeSubSection = "subSection"
)

// IndexEntry is one entry in the documentation index, used for the selector view.
type IndexEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// DocumentationSet is a single named body of documentation: an ordered
// sequence of sections identified by a URL-friendly id. On the wire the
// sections live under a "content" wrapper; see wire.go.
type DocumentationSet struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	Tags        []string
	Sections    []Section
}

// Section is a titled, identified grouping of content nodes.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content []Node `json:"content"`
}

// FAQItem is one question/answer pair inside a faq node.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Node is a tagged variant over the renderable content types. Exactly the
// fields for the variant named by Type are populated; the rest are zero.
type Node struct {
	Type string

	// paragraph, subheading, code
	Text      string
	ClassName string

	// image
	URL     string
	Alt     string
	Caption string

	// list
	Items []string

	// code
	Language string

	// faq
	FAQ []FAQItem

	// subSection
	ID      string
	Title   string
	Content []Node
}

// SubSections returns the subSection nodes directly contained in the
// section's content, in order. Used by the TOC builder.
func (s *Section) SubSections() []Node {
	var subs []Node
	for _, n := range s.Content {
		if n.Type == TypeSubSection {
			subs = append(subs, n)
		}
	}
	return subs
}
