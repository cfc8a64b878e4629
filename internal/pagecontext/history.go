package pagecontext

// DefaultHistoryLimit is the number of change events retained when no
// explicit limit is configured.
const DefaultHistoryLimit = 10

// History is a bounded, newest-first log of classified change events.
// Pushing beyond the limit evicts the oldest entry.
//
// History is not safe for concurrent use; the owning client serializes
// access to it.
type History struct {
	limit  int
	events []ChangeEvent
}

// NewHistory creates a History retaining at most limit events.
// A non-positive limit is replaced with DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		limit:  limit,
		events: make([]ChangeEvent, 0, limit),
	}
}

// Push prepends an event, evicting the oldest entry once the limit is exceeded.
func (h *History) Push(ev ChangeEvent) {
	h.events = append(h.events, ChangeEvent{})
	copy(h.events[1:], h.events)
	h.events[0] = ev

	if len(h.events) > h.limit {
		h.events = h.events[:h.limit]
	}
}

// Events returns a copy of the retained events, newest first.
func (h *History) Events() []ChangeEvent {
	out := make([]ChangeEvent, len(h.events))
	copy(out, h.events)
	return out
}

// Len returns the number of retained events.
func (h *History) Len() int {
	return len(h.events)
}

// Limit returns the maximum number of retained events.
func (h *History) Limit() int {
	return h.limit
}

// Clear discards all retained events.
func (h *History) Clear() {
	h.events = h.events[:0]
}
