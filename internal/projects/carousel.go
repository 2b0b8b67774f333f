package projects

import "sort"

// Carousel models the landing page project rotation: an active index
// over the subset of projects matching the current category filter.
// Movement wraps at both ends. Changing the filter resets the index to
// the first visible project.
type Carousel struct {
	projects []Project
	category string
	visible  []int
	active   int
}

func NewCarousel(projects []Project) *Carousel {
	c := &Carousel{projects: projects}
	c.SetCategory("")
	return c
}

// SetCategory filters the carousel. The empty category shows all
// projects. Unknown categories yield an empty carousel rather than an
// error, matching a filter bar with stale buttons.
func (c *Carousel) SetCategory(category string) {
	c.category = category
	c.visible = c.visible[:0]
	for i, p := range c.projects {
		if category == "" || p.Category == category {
			c.visible = append(c.visible, i)
		}
	}
	// The first featured project opens the rotation; without one the
	// first visible project does.
	c.active = 0
	for n, i := range c.visible {
		if c.projects[i].Featured {
			c.active = n
			break
		}
	}
}

func (c *Carousel) Category() string { return c.category }

// Len is the number of currently visible projects.
func (c *Carousel) Len() int { return len(c.visible) }

// Visible returns the filtered projects in their original order.
func (c *Carousel) Visible() []Project {
	out := make([]Project, 0, len(c.visible))
	for _, i := range c.visible {
		out = append(out, c.projects[i])
	}
	return out
}

// Active returns the project under the cursor.
func (c *Carousel) Active() (Project, bool) {
	if len(c.visible) == 0 {
		return Project{}, false
	}
	return c.projects[c.visible[c.active]], true
}

// Next advances the cursor, wrapping past the last visible project.
func (c *Carousel) Next() {
	if len(c.visible) == 0 {
		return
	}
	c.active = (c.active + 1) % len(c.visible)
}

// Prev moves the cursor backwards, wrapping before the first.
func (c *Carousel) Prev() {
	if len(c.visible) == 0 {
		return
	}
	c.active = (c.active - 1 + len(c.visible)) % len(c.visible)
}

// GoTo jumps to the nth visible project. Out-of-range indexes are
// ignored.
func (c *Carousel) GoTo(i int) {
	if i < 0 || i >= len(c.visible) {
		return
	}
	c.active = i
}

// Categories returns the sorted distinct category names present in the
// full project list.
func (c *Carousel) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
