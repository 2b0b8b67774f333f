package content

import (
	"encoding/json"
	"fmt"
)

// docWire is the on-disk/upload shape of a documentation payload:
// {id, title, description, content: {sections: [...]}}.
type docWire struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Content     struct {
		Sections []Section `json:"sections"`
	} `json:"content"`
}

// UnmarshalJSON decodes a documentation payload, unwrapping the "content"
// envelope around the section list.
func (d *DocumentationSet) UnmarshalJSON(data []byte) error {
	var raw docWire
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding documentation payload: %w", err)
	}
	d.ID = raw.ID
	d.Title = raw.Title
	d.Description = raw.Description
	d.Thumbnail = raw.Thumbnail
	d.Tags = raw.Tags
	d.Sections = raw.Content.Sections
	return nil
}

// MarshalJSON re-encodes the documentation set in its wire shape.
func (d DocumentationSet) MarshalJSON() ([]byte, error) {
	raw := docWire{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Thumbnail:   d.Thumbnail,
		Tags:        d.Tags,
	}
	raw.Content.Sections = d.Sections
	return json.Marshal(raw)
}

// ParseDocument decodes and structurally validates a documentation payload.
func ParseDocument(data []byte) (*DocumentationSet, error) {
	var doc DocumentationSet
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// IndexEntry returns the index metadata for this documentation set.
func (d *DocumentationSet) IndexEntry() IndexEntry {
	return IndexEntry{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Thumbnail:   d.Thumbnail,
		Tags:        d.Tags,
	}
}
