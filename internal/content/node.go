package content

import (
	"encoding/json"
	"fmt"
)

// rawNode mirrors the wire shape of a content node. The "items" key is
// shared between the list variant ([]string) and the faq variant
// ([]FAQItem), so it is deferred until the type tag is known.
type rawNode struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ClassName string          `json:"className,omitempty"`
	URL       string          `json:"url,omitempty"`
	Alt       string          `json:"alt,omitempty"`
	Caption   string          `json:"caption,omitempty"`
	Items     json.RawMessage `json:"items,omitempty"`
	Language  string          `json:"language,omitempty"`
	ID        string          `json:"id,omitempty"`
	Title     string          `json:"title,omitempty"`
	Content   []Node          `json:"content,omitempty"`
}

// UnmarshalJSON decodes a tagged content node. Unknown type tags are kept
// as-is; the renderer decides how to report them.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding content node: %w", err)
	}

	n.Type = raw.Type
	n.Text = raw.Text
	n.ClassName = raw.ClassName
	n.URL = raw.URL
	n.Alt = raw.Alt
	n.Caption = raw.Caption
	n.Language = raw.Language
	n.ID = raw.ID
	n.Title = raw.Title
	n.Content = raw.Content

	if len(raw.Items) > 0 {
		switch raw.Type {
		case TypeFAQ:
			if err := json.Unmarshal(raw.Items, &n.FAQ); err != nil {
				return fmt.Errorf("decoding faq items: %w", err)
			}
		default:
			// list, and anything else carrying plain string items
			if err := json.Unmarshal(raw.Items, &n.Items); err != nil {
				return fmt.Errorf("decoding list items: %w", err)
			}
		}
	}

	return nil
}

// MarshalJSON re-encodes the node in its wire shape.
func (n Node) MarshalJSON() ([]byte, error) {
	raw := rawNode{
		Type:      n.Type,
		Text:      n.Text,
		ClassName: n.ClassName,
		URL:       n.URL,
		Alt:       n.Alt,
		Caption:   n.Caption,
		Language:  n.Language,
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
	}

	var err error
	switch {
	case n.Type == TypeFAQ && len(n.FAQ) > 0:
		raw.Items, err = json.Marshal(n.FAQ)
	case len(n.Items) > 0:
		raw.Items, err = json.Marshal(n.Items)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(raw)
}
