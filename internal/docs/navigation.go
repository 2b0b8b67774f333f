package docs

import (
	"fmt"
	"time"
)

// State is the viewer's lifecycle phase. Transitions are linear:
// Idle -> Loading -> Rendered, with Redirecting as the terminal state
// when a requested document cannot be loaded.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateRedirecting:
		return "redirecting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Location is one addressable position in the viewer: a document plus
// the section (or composite subsection) in view.
type Location struct {
	DocID     string
	SectionID string
}

// Options tune the controller's timing behavior.
type Options struct {
	// ManualNavDelay is how long scroll events are ignored after a
	// click on a table of contents entry, so the smooth scroll the
	// click triggers cannot re-derive a different active section.
	ManualNavDelay time.Duration
	// InitialStateDelay is how long after the first render the initial
	// location is recorded in history.
	InitialStateDelay time.Duration
	// ScrollSettleDelay is how long scrolling must pause before the
	// active section is recomputed.
	ScrollSettleDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		ManualNavDelay:    100 * time.Millisecond,
		InitialStateDelay: 300 * time.Millisecond,
		ScrollSettleDelay: 500 * time.Millisecond,
	}
}

// Controller tracks the viewer's navigation state: which document is
// loading or rendered, which section is active, and the history stack
// behind back/forward. All mutating entry points funnel through it so
// scroll sync and manual navigation cannot race each other.
type Controller struct {
	opts    Options
	now     func() time.Time
	history *History

	state       State
	docID       string
	active      string
	navigatedAt time.Time
	initialized bool
}

func NewController(opts Options) *Controller {
	return &Controller{
		opts:    opts,
		now:     time.Now,
		history: NewHistory(),
	}
}

// SetClock replaces the time source, for tests that exercise the
// manual navigation window.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

func (c *Controller) State() State          { return c.state }
func (c *Controller) ActiveSection() string { return c.active }
func (c *Controller) History() *History     { return c.history }

// StartLoading moves the controller into the loading phase for docID.
// Scroll events during loading are discarded.
func (c *Controller) StartLoading(docID string) error {
	if c.state == StateLoading {
		return fmt.Errorf("already loading %s", c.docID)
	}
	c.state = StateLoading
	c.docID = docID
	c.active = ""
	c.initialized = false
	return nil
}

// RenderComplete marks the document rendered and records the initial
// location. The first entry always replaces rather than pushes, so
// backing out of the viewer leaves the site rather than stepping
// through a synthetic entry.
func (c *Controller) RenderComplete(firstSectionID string) error {
	if c.state != StateLoading {
		return fmt.Errorf("render complete in state %s", c.state)
	}
	c.state = StateRendered
	c.active = firstSectionID
	c.history.Replace(Location{DocID: c.docID, SectionID: firstSectionID})
	c.initialized = true
	return nil
}

// RedirectToSelector is the failure path: the requested document could
// not be loaded and the viewer bounces back to the selector page.
func (c *Controller) RedirectToSelector() {
	c.state = StateRedirecting
	c.active = ""
}

// NavigateTo handles a table of contents click. The target becomes the
// active section immediately, the location is pushed onto history, and
// scroll events are suppressed for the manual navigation window.
func (c *Controller) NavigateTo(sectionID string) error {
	if c.state != StateRendered {
		return fmt.Errorf("navigate in state %s", c.state)
	}
	c.active = sectionID
	c.navigatedAt = c.now()
	c.history.Push(Location{DocID: c.docID, SectionID: sectionID})
	return nil
}

// HandleScroll recomputes the active section from the current section
// geometry. During loading, before initialization, and inside the
// manual navigation window the event is ignored. A change of active
// section replaces the current history entry; scrolling never grows
// the history stack.
func (c *Controller) HandleScroll(viewport float64, sections []SectionPosition) {
	if c.state != StateRendered || !c.initialized {
		return
	}
	if c.now().Sub(c.navigatedAt) < c.opts.ManualNavDelay {
		return
	}

	target := activeTarget(viewport, sections)
	if target == "" || target == c.active {
		return
	}
	c.active = target
	c.history.Replace(Location{DocID: c.docID, SectionID: target})
}

// Back steps the history stack backwards and restores that location's
// active section.
func (c *Controller) Back() (Location, bool) {
	loc, ok := c.history.Back()
	if ok {
		c.docID = loc.DocID
		c.active = loc.SectionID
	}
	return loc, ok
}

// Forward is the inverse of Back.
func (c *Controller) Forward() (Location, bool) {
	loc, ok := c.history.Forward()
	if ok {
		c.docID = loc.DocID
		c.active = loc.SectionID
	}
	return loc, ok
}
