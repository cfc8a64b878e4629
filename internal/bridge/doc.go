// Package bridge implements the client side of the host's page-context
// service bridge.
//
// The host owns a bridge object exposing two capabilities: retrieving the
// currently displayed page and subscribing to change notifications. The
// Client in this package is the sole mediator between plugin code and that
// bridge: it probes an opaque handle for the required capabilities, validates
// every context crossing the boundary, classifies changes, retains a bounded
// change history, and manages the single forwarding subscription held with
// the host.
//
// A Client moves through three connection states:
//
//	Disconnected → Connected → Listening → Connected → Disconnected
//
// Attaching a nil handle is a normal startup condition, never an error.
// Detach must be called before the owner discards the client, otherwise the
// subscription held with the host leaks.
package bridge
