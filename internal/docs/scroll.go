package docs

// SectionPosition is one section's geometry relative to the viewport:
// Top is the distance from the viewport's top edge to the section's
// top (negative once the section has scrolled past), Height its full
// rendered height. SubSections carry composite element ids.
type SectionPosition struct {
	ID          string
	Top         float64
	Height      float64
	SubSections []SectionPosition
}

// visibleHeight is how much of the section overlaps the viewport.
func (p SectionPosition) visibleHeight(viewport float64) float64 {
	top := p.Top
	if top < 0 {
		top = 0
	}
	bottom := p.Top + p.Height
	if bottom > viewport {
		bottom = viewport
	}
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// activeTarget picks the section the reader is looking at. Sections
// are scanned in document order and the last qualifying one wins: a
// section qualifies when enough of it is visible (over 30% of its own
// height, or over 200px for very tall sections) and its top has
// crossed the viewport midpoint. Subsections of the winning section
// are then scanned with a stricter rule, the subsection heading itself
// must sit in the upper half of the viewport.
func activeTarget(viewport float64, sections []SectionPosition) string {
	mid := viewport / 2

	var active *SectionPosition
	for i := range sections {
		s := &sections[i]
		visible := s.visibleHeight(viewport)
		if (visible > 0.3*s.Height || visible > 200) && s.Top < mid {
			active = s
		}
	}
	if active == nil {
		return ""
	}

	target := active.ID
	for _, sub := range active.SubSections {
		if sub.Top >= 0 && sub.Top < mid {
			target = sub.ID
		}
	}
	return target
}
