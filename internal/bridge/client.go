package bridge

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"

	"github.com/BrainDriveAI/pagecontext/internal/errors"
	"github.com/BrainDriveAI/pagecontext/internal/logging"
	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

// registeredListener pairs a listener with an insertion-ordered identity so
// dispatch order is reproducible and removal is well defined even when the
// same function value is registered twice.
type registeredListener struct {
	id uint64
	fn Listener
}

// Client is the sole mediator between plugin code and a host-supplied
// page-context bridge. It owns validation, change classification, history
// retention, and the subscription lifecycle.
//
// The client assumes a single logical owner driving Attach, Subscribe,
// CurrentContext, and Detach. Host notifications are the one asynchronous
// entry point; an internal mutex serializes them against each other and
// against caller-issued operations, so each notification is processed
// atomically with respect to client state.
type Client struct {
	ownerID    string
	instanceID string
	logger     *logging.Logger

	mu        sync.Mutex
	handle    any
	retriever ContextRetriever
	notifier  ChangeNotifier

	state   ConnectionState
	current *pagecontext.Context
	history *pagecontext.History

	listeners      []registeredListener
	nextListenerID uint64
	bridgeStop     func() // non-nil while the forwarding subscription is live
	stopHandle     func() // shared teardown handle returned from Subscribe
	subGen         uint64 // invalidates stop handles from earlier subscriptions
}

// New creates a Client labeled with the given identifier pair. The pair is
// used only for diagnostics; an empty instanceID is replaced with a random
// one. The client holds no bridge until Attach is called.
func New(ownerID, instanceID string, opts ...Option) *Client {
	if instanceID == "" {
		instanceID = uuid.NewString()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NopLogger()
	}

	return &Client{
		ownerID:    ownerID,
		instanceID: instanceID,
		logger:     cfg.logger.WithClient(ownerID, instanceID),
		history:    pagecontext.NewHistory(cfg.historyLimit),
		state:      StateDisconnected,
	}
}

// OwnerID returns the diagnostic owner identifier.
func (c *Client) OwnerID() string { return c.ownerID }

// InstanceID returns the diagnostic instance identifier.
func (c *Client) InstanceID() string { return c.instanceID }

// Attach connects the client to a host bridge handle, replacing any earlier
// bridge. A nil handle is the explicit "no bridge" signal: the client
// transitions to Disconnected with an empty history and no error, since an
// absent bridge is a normal condition during host startup.
//
// The handle must expose both required capabilities (ContextRetriever and
// ChangeNotifier); if either is missing, Attach returns a *errors.CapabilityError
// naming it and the client stays Disconnected. A failure or invalid shape
// from the initial context fetch is logged and absorbed; it never aborts
// attachment.
func (c *Client) Attach(handle any) error {
	c.mu.Lock()
	stop := c.resetLocked()
	c.mu.Unlock()
	if stop != nil {
		stop()
	}

	if handle == nil {
		c.logger.Debug("no bridge supplied, staying disconnected")
		return nil
	}

	retriever, ok := handle.(ContextRetriever)
	if !ok {
		err := errors.NewCapabilityError("retrieveCurrent")
		c.logger.Error("bridge handle rejected", "error", err)
		return err
	}
	notifier, ok := handle.(ChangeNotifier)
	if !ok {
		err := errors.NewCapabilityError("subscribe")
		c.logger.Error("bridge handle rejected", "error", err)
		return err
	}

	// The bridge is not published to other entry points yet, so the initial
	// fetch can run outside the lock.
	current, err := retriever.RetrieveCurrent()
	switch {
	case err != nil:
		c.logger.Warn("initial context retrieval failed, continuing without one", "error", err)
		current = nil
	case current != nil:
		if verr := current.Validate(); verr != nil {
			c.logger.Warn("initial context rejected", "error", verr)
			current = nil
		} else {
			cp := *current
			current = &cp
		}
	}

	c.mu.Lock()
	c.handle = handle
	c.retriever = retriever
	c.notifier = notifier
	c.current = current
	if current != nil {
		c.history.Push(pagecontext.NewChangeEvent(nil, *current))
	}
	c.state = StateConnected
	c.mu.Unlock()

	c.logger.Info("bridge attached", "has_context", current != nil)
	return nil
}

// Subscribe registers a listener for page-context changes and ensures the
// single internal forwarding subscription with the bridge exists. Repeated
// calls while already listening register additional listeners but reuse the
// existing bridge subscription and return the same teardown handle.
//
// The returned stop function tears down the listening session: it releases
// the bridge subscription, clears the listener registry, and drops the state
// back to Connected. Calling it more than once is safe, and a handle from an
// earlier session is inert after a new Subscribe.
//
// Subscribe fails with errors.ErrNotConnected when no bridge is attached.
func (c *Client) Subscribe(listener Listener) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDisconnected {
		return nil, errors.ErrNotConnected
	}

	if listener != nil {
		c.nextListenerID++
		c.listeners = append(c.listeners, registeredListener{id: c.nextListenerID, fn: listener})
	}

	if c.bridgeStop == nil {
		c.bridgeStop = c.notifier.Subscribe(c.handleNotification)
		c.state = StateListening
		c.subGen++
		gen := c.subGen

		c.stopHandle = func() {
			c.mu.Lock()
			if gen != c.subGen || c.bridgeStop == nil {
				c.mu.Unlock()
				return
			}
			stop := c.bridgeStop
			c.bridgeStop = nil
			c.stopHandle = nil
			c.listeners = nil
			c.state = StateConnected
			c.mu.Unlock()

			stop()
			c.logger.Debug("change subscription released")
		}

		c.logger.Debug("change subscription registered")
	}

	return c.stopHandle, nil
}

// CurrentContext re-fetches the host's current page context through the
// bridge. This is a live fetch, not a cache read. On success the returned
// context also becomes the baseline for classifying the next change; the
// fetch never appends to history and never invokes listeners.
//
// It fails with errors.ErrNotConnected when no bridge is attached, with a
// *errors.RetrievalError when the bridge fetch fails, and with a
// *errors.ContextError when the returned shape is invalid. A (nil, nil)
// return means the host has no current page.
func (c *Client) CurrentContext() (*pagecontext.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDisconnected {
		return nil, errors.ErrNotConnected
	}

	current, err := c.retriever.RetrieveCurrent()
	if err != nil {
		return nil, errors.NewRetrievalError(err)
	}
	if current == nil {
		c.current = nil
		return nil, nil
	}
	if verr := current.Validate(); verr != nil {
		return nil, verr
	}

	cp := *current
	c.current = &cp
	out := cp
	return &out, nil
}

// Detach tears the client down: it releases the bridge subscription, clears
// the stored context and history, and transitions to Disconnected. The owner
// must call Detach before discarding the client; a skipped Detach leaks the
// subscription held with the host.
func (c *Client) Detach() {
	c.mu.Lock()
	stop := c.resetLocked()
	c.mu.Unlock()
	if stop != nil {
		stop()
	}
	c.logger.Info("bridge detached")
}

// State returns the client's current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// History returns a copy of the retained change events, newest first.
func (c *Client) History() []pagecontext.ChangeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Events()
}

// resetLocked clears the subscription, bridge references, stored context,
// and history, and transitions to Disconnected. It returns the bridge stop
// function (if a subscription was live) for the caller to invoke after
// releasing the lock.
func (c *Client) resetLocked() (stop func()) {
	stop = c.bridgeStop
	c.bridgeStop = nil
	c.stopHandle = nil
	c.listeners = nil
	c.handle = nil
	c.retriever = nil
	c.notifier = nil
	c.current = nil
	c.history.Clear()
	c.state = StateDisconnected
	return stop
}

// handleNotification is the single forwarding listener registered with the
// bridge. It validates the payload, classifies and records the change, then
// dispatches to external listeners in registration order.
func (c *Client) handleNotification(next pagecontext.Context) {
	c.mu.Lock()

	// A notification may race with teardown; once the subscription is gone
	// the payload is dropped.
	if c.bridgeStop == nil {
		c.mu.Unlock()
		return
	}

	if err := next.Validate(); err != nil {
		c.mu.Unlock()
		c.logger.Warn("discarding malformed page context notification", "error", err)
		return
	}

	ev := pagecontext.NewChangeEvent(c.current, next)
	cur := next
	c.current = &cur
	c.history.Push(ev)
	if c.state != StateListening {
		c.state = StateListening
	}

	snapshot := make([]registeredListener, len(c.listeners))
	copy(snapshot, c.listeners)
	c.mu.Unlock()

	c.logger.Debug("page context changed", "kind", ev.Kind.String(), "page_id", next.ID)

	for _, l := range snapshot {
		c.invoke(l, next)
	}
}

// invoke calls one listener, recovering and logging any panic so one
// listener's failure cannot prevent the others from running.
func (c *Client) invoke(l registeredListener, next pagecontext.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("page context listener panicked",
				"listener_id", l.id, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
		}
	}()
	l.fn(next)
}
