package content

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeUnmarshalVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, n Node)
	}{
		{
			name:  "paragraph",
			input: `{"type":"paragraph","text":"Hello <b>world</b>"}`,
			check: func(t *testing.T, n Node) {
				if n.Type != TypeParagraph || n.Text != "Hello <b>world</b>" {
					t.Errorf("got %+v", n)
				}
			},
		},
		{
			name:  "subheading with class",
			input: `{"type":"subheading","text":"Install","className":"mt-2"}`,
			check: func(t *testing.T, n Node) {
				if n.Text != "Install" || n.ClassName != "mt-2" {
					t.Errorf("got %+v", n)
				}
			},
		},
		{
			name:  "image",
			input: `{"type":"image","url":"/img/a.png","alt":"diagram","caption":"Figure 1"}`,
			check: func(t *testing.T, n Node) {
				if n.URL != "/img/a.png" || n.Alt != "diagram" || n.Caption != "Figure 1" {
					t.Errorf("got %+v", n)
				}
			},
		},
		{
			name:  "list items are strings",
			input: `{"type":"list","items":["one","two"]}`,
			check: func(t *testing.T, n Node) {
				if len(n.Items) != 2 || n.Items[0] != "one" {
					t.Errorf("got %+v", n.Items)
				}
			},
		},
		{
			name:  "code",
			input: `{"type":"code","language":"go","text":"func main() {}"}`,
			check: func(t *testing.T, n Node) {
				if n.Language != "go" || n.Text != "func main() {}" {
					t.Errorf("got %+v", n)
				}
			},
		},
		{
			name:  "faq items are pairs",
			input: `{"type":"faq","items":[{"question":"Q?","answer":"A."}]}`,
			check: func(t *testing.T, n Node) {
				if len(n.FAQ) != 1 || n.FAQ[0].Question != "Q?" || n.FAQ[0].Answer != "A." {
					t.Errorf("got %+v", n.FAQ)
				}
			},
		},
		{
			name: "nested subSection",
			input: `{"type":"subSection","id":"setup","title":"Setup","content":[
				{"type":"paragraph","text":"inner"},
				{"type":"subSection","id":"deep","title":"Deep","content":[{"type":"list","items":["x"]}]}
			]}`,
			check: func(t *testing.T, n Node) {
				if n.ID != "setup" || len(n.Content) != 2 {
					t.Fatalf("got %+v", n)
				}
				deep := n.Content[1]
				if deep.Type != TypeSubSection || deep.ID != "deep" || len(deep.Content) != 1 {
					t.Errorf("nested subsection = %+v", deep)
				}
				if deep.Content[0].Items[0] != "x" {
					t.Errorf("deep list = %+v", deep.Content[0].Items)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tt.check(t, n)
		})
	}
}

func TestParseDocumentUnwrapsContentEnvelope(t *testing.T) {
	payload := `{
		"id": "web-api",
		"title": "Web API Documentation",
		"description": "Guide to using the REST API",
		"tags": ["Web", "REST"],
		"content": {
			"sections": [
				{"id": "api-overview", "title": "API Overview", "content": [{"type": "paragraph", "text": "Hello"}]}
			]
		}
	}`

	doc, err := ParseDocument([]byte(payload))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.ID != "web-api" {
		t.Errorf("id = %q", doc.ID)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].ID != "api-overview" {
		t.Fatalf("sections = %+v", doc.Sections)
	}
	if doc.Sections[0].Content[0].Text != "Hello" {
		t.Errorf("paragraph = %+v", doc.Sections[0].Content[0])
	}

	entry := doc.IndexEntry()
	if entry.ID != "web-api" || entry.Title != doc.Title {
		t.Errorf("index entry = %+v", entry)
	}
}

func TestValidateDuplicateSectionID(t *testing.T) {
	doc := DocumentationSet{
		ID:    "d",
		Title: "D",
		Sections: []Section{
			{ID: "intro", Title: "Intro"},
			{ID: "intro", Title: "Intro Again"},
		},
	}
	err := doc.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate section id") {
		t.Errorf("err = %v", err)
	}
}

func TestValidateSubSectionIDs(t *testing.T) {
	sub := func(id string) Node {
		return Node{Type: TypeSubSection, ID: id, Title: id}
	}

	// Same local subsection id under two different sections is fine:
	// composite ids do not collide.
	doc := DocumentationSet{
		ID:    "d",
		Title: "D",
		Sections: []Section{
			{ID: "a", Title: "A", Content: []Node{sub("shared")}},
			{ID: "b", Title: "B", Content: []Node{sub("shared")}},
		},
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("distinct sections sharing a local sub id should validate, got %v", err)
	}

	// Duplicate sibling subsection ids are rejected.
	doc.Sections[0].Content = []Node{sub("x"), sub("x")}
	err := doc.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate subsection id") {
		t.Errorf("err = %v", err)
	}
}

func TestValidateUpload(t *testing.T) {
	doc := DocumentationSet{
		ID:    "mine",
		Title: "Mine",
		Sections: []Section{
			{ID: "s1", Title: "S1"},
		},
	}

	if err := doc.ValidateUpload("mine"); err != nil {
		t.Errorf("matching id should validate, got %v", err)
	}

	err := doc.ValidateUpload("other")
	if err == nil || !strings.Contains(err.Error(), "id mismatch") {
		t.Errorf("err = %v", err)
	}

	empty := DocumentationSet{ID: "mine", Title: "Mine"}
	if err := empty.ValidateUpload("mine"); err == nil {
		t.Error("upload with no sections should be rejected")
	}
}

func TestNodeRoundTrip(t *testing.T) {
	n := Node{Type: TypeFAQ, FAQ: []FAQItem{{Question: "Q", Answer: "A"}}}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.FAQ) != 1 || back.FAQ[0].Question != "Q" {
		t.Errorf("round trip = %+v", back)
	}
}
