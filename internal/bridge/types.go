package bridge

import (
	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

// ContextRetriever is the bridge capability that reports the host's current
// page. A (nil, nil) return means the host has no current page yet; that is
// an expected condition, not an error.
type ContextRetriever interface {
	// RetrieveCurrent returns the host's current page context, or nil if the
	// host has none. It must have no observable side effects.
	RetrieveCurrent() (*pagecontext.Context, error)
}

// ChangeNotifier is the bridge capability that delivers page-context change
// notifications.
type ChangeNotifier interface {
	// Subscribe registers exactly one listener per call and returns a stop
	// function. The stop function may be called any number of times; calls
	// after the first are no-ops.
	Subscribe(listener func(pagecontext.Context)) (stop func())
}

// Listener is a caller-registered function invoked with the new context on
// each valid change notification.
type Listener func(pagecontext.Context)

// ConnectionState describes the client's relationship with the host bridge.
// The state is owned exclusively by the client; the host never observes or
// sets it.
type ConnectionState int

const (
	// StateDisconnected means no bridge is attached, or the bridge was withdrawn.
	StateDisconnected ConnectionState = iota
	// StateConnected means a bridge is attached and contexts are retrievable.
	StateConnected
	// StateListening means the client is connected and holds an active
	// change subscription with the bridge.
	StateListening
)

// String returns a human-readable name for a connection state.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateListening:
		return "listening"
	default:
		return "unknown"
	}
}
