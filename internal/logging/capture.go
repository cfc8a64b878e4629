package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Entry is one captured log record with its structured fields flattened
// into a map.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   map[string]any
}

// Filter defines criteria for selecting captured entries.
type Filter struct {
	// Level filters to entries at or above this level (DEBUG < INFO < WARN < ERROR).
	// Empty string means no level filtering.
	Level string

	// MessageContains filters to entries whose message contains this substring.
	// Empty string means no message filtering.
	MessageContains string

	// Attrs filters to entries whose fields include every given key with an
	// equal (fmt-comparable) value. Nil means no attribute filtering.
	Attrs map[string]any
}

// levelOrder defines the ordering of log levels for filtering.
var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Capture is an in-memory log sink. It lets tests assert on the diagnostic
// events a component emits without parsing rendered text.
// It is safe for concurrent use.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
	attrs   []slog.Attr
	level   slog.Level
	parent  *Capture
}

// NewCapture returns a Logger wired to an in-memory Capture recording every
// entry at or above the given level.
func NewCapture(level string) (*Logger, *Capture) {
	c := &Capture{level: parseLevel(level)}
	logger := &Logger{
		logger: slog.New(c),
		attrs:  make([]slog.Attr, 0),
	}
	return logger, c
}

// Enabled implements slog.Handler.
func (c *Capture) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.root().level
}

// Handle implements slog.Handler, recording the entry.
func (c *Capture) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(c.attrs))
	for _, a := range c.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	entry := Entry{
		Time:    r.Time,
		Level:   levelName(r.Level),
		Message: r.Message,
		Attrs:   attrs,
	}

	root := c.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.entries = append(root.entries, entry)
	return nil
}

// WithAttrs implements slog.Handler. The derived handler records into the
// same underlying capture.
func (c *Capture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	merged = append(merged, attrs...)
	return &Capture{attrs: merged, parent: c.root()}
}

// WithGroup implements slog.Handler. Groups are flattened; the page-context
// plugin never nests attribute groups.
func (c *Capture) WithGroup(string) slog.Handler {
	return c
}

// root returns the capture that owns the entry buffer.
func (c *Capture) root() *Capture {
	if c.parent != nil {
		return c.parent
	}
	return c
}

// Entries returns a copy of all captured entries in emission order.
func (c *Capture) Entries() []Entry {
	root := c.root()
	root.mu.Lock()
	defer root.mu.Unlock()

	out := make([]Entry, len(root.entries))
	copy(out, root.entries)
	return out
}

// Select returns the captured entries matching the filter, in emission order.
func (c *Capture) Select(f Filter) []Entry {
	var out []Entry
	for _, e := range c.Entries() {
		if matches(e, f) {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all captured entries.
func (c *Capture) Reset() {
	root := c.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.entries = nil
}

// matches reports whether an entry satisfies all filter criteria.
func matches(e Entry, f Filter) bool {
	if f.Level != "" {
		want, ok := levelOrder[ParseLevel(f.Level)]
		if !ok || levelOrder[e.Level] < want {
			return false
		}
	}
	if f.MessageContains != "" && !strings.Contains(e.Message, f.MessageContains) {
		return false
	}
	for k, v := range f.Attrs {
		got, ok := e.Attrs[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}

// levelName maps an slog.Level to the package's level constants.
func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}
