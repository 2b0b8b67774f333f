package content

import "fmt"

// Validate checks the structural invariants of a documentation set:
// section ids unique across the set, and subsection ids unique among
// their siblings at every nesting level, so that composite element ids
// of the form "sectionID-subID" cannot collide.
func (d *DocumentationSet) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("documentation id is required")
	}
	if d.Title == "" {
		return fmt.Errorf("documentation title is required")
	}

	seen := make(map[string]bool, len(d.Sections))
	for _, sec := range d.Sections {
		if sec.ID == "" {
			return fmt.Errorf("section %q: id is required", sec.Title)
		}
		if seen[sec.ID] {
			return fmt.Errorf("duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = true

		if err := validateSubSections(sec.ID, sec.Content); err != nil {
			return err
		}
	}
	return nil
}

// validateSubSections walks one content list, checking sibling subsection
// ids for uniqueness and recursing into nested content.
func validateSubSections(parentID string, nodes []Node) error {
	seen := make(map[string]bool)
	for _, n := range nodes {
		if n.Type != TypeSubSection {
			continue
		}
		if n.ID == "" {
			return fmt.Errorf("section %q: subsection %q has no id", parentID, n.Title)
		}
		if seen[n.ID] {
			return fmt.Errorf("section %q: duplicate subsection id %q", parentID, n.ID)
		}
		seen[n.ID] = true

		if err := validateSubSections(parentID+"-"+n.ID, n.Content); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpload applies the stricter checks for user-supplied documents:
// the structural invariants plus an id match against the id the viewer
// was asked for, and a non-empty section list.
func (d *DocumentationSet) ValidateUpload(requestedID string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if len(d.Sections) == 0 {
		return fmt.Errorf("documentation %q has no sections", d.ID)
	}
	if d.ID != requestedID {
		return fmt.Errorf("documentation id mismatch: payload has %q, requested %q", d.ID, requestedID)
	}
	return nil
}
