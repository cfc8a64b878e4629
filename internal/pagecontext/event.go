package pagecontext

import "time"

// ChangeKind classifies how a page context differs from its predecessor.
type ChangeKind int

const (
	// KindInitialLoad is the first context observed after a bridge attaches;
	// there is no previous context.
	KindInitialLoad ChangeKind = iota
	// KindPageChange means the page ID differs from the previous context.
	KindPageChange
	// KindRouteChange means the page ID is unchanged but the route differs.
	KindRouteChange
	// KindNameChange means only the page name differs.
	KindNameChange
	// KindUpdate is the fallback: the host emitted a change the other kinds
	// do not describe, including a notification with no detectable difference.
	KindUpdate
)

// String returns a human-readable name for a change kind.
func (k ChangeKind) String() string {
	switch k {
	case KindInitialLoad:
		return "initial_load"
	case KindPageChange:
		return "page_change"
	case KindRouteChange:
		return "route_change"
	case KindNameChange:
		return "name_change"
	case KindUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Classify determines the change kind for a transition from previous to
// current. It is a total, deterministic function of the pair: a nil previous
// always yields KindInitialLoad, and fields are tested in a fixed order
// (pageId, then pageRoute, then pageName) so a transition that changes
// several fields is classified by the first differing one.
func Classify(previous *Context, current Context) ChangeKind {
	if previous == nil {
		return KindInitialLoad
	}
	switch {
	case previous.ID != current.ID:
		return KindPageChange
	case previous.Route != current.Route:
		return KindRouteChange
	case previous.Name != current.Name:
		return KindNameChange
	default:
		return KindUpdate
	}
}

// ChangeEvent records one classified page-context transition. Events are
// constructed only by the client, never hand-built from host payloads.
type ChangeEvent struct {
	// Time is when the client observed the change.
	Time time.Time `json:"timestamp"`
	// Previous is the context before the change; nil on initial load.
	Previous *Context `json:"previous,omitempty"`
	// Current is the context after the change.
	Current Context `json:"current"`
	// Kind classifies the transition.
	Kind ChangeKind `json:"kind"`
}

// NewChangeEvent builds a ChangeEvent for the transition from previous to
// current, stamped with the current time.
func NewChangeEvent(previous *Context, current Context) ChangeEvent {
	return ChangeEvent{
		Time:     time.Now(),
		Previous: previous,
		Current:  current,
		Kind:     Classify(previous, current),
	}
}
