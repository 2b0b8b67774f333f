package docs

// History models the browser history stack server-side: a list of
// locations with a cursor. Pushing while the cursor is mid-stack
// discards the forward entries, the same way a browser does.
type History struct {
	entries []Location
	pos     int
}

func NewHistory() *History {
	return &History{pos: -1}
}

// Push appends a location after the cursor and moves the cursor onto
// it.
func (h *History) Push(loc Location) {
	h.entries = append(h.entries[:h.pos+1], loc)
	h.pos = len(h.entries) - 1
}

// Replace overwrites the current entry without growing the stack. On
// an empty stack it behaves like Push.
func (h *History) Replace(loc Location) {
	if h.pos < 0 {
		h.Push(loc)
		return
	}
	h.entries[h.pos] = loc
}

// Back moves the cursor one entry backwards.
func (h *History) Back() (Location, bool) {
	if h.pos <= 0 {
		return Location{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves the cursor one entry forwards.
func (h *History) Forward() (Location, bool) {
	if h.pos < 0 || h.pos >= len(h.entries)-1 {
		return Location{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Current returns the entry under the cursor.
func (h *History) Current() (Location, bool) {
	if h.pos < 0 {
		return Location{}, false
	}
	return h.entries[h.pos], true
}

// Len reports the stack depth.
func (h *History) Len() int { return len(h.entries) }
