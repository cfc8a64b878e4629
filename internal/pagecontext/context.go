package pagecontext

import (
	"github.com/BrainDriveAI/pagecontext/internal/errors"
)

// Context describes the host's currently displayed page. A new Context
// entirely replaces the old one; there are no partial updates.
type Context struct {
	// ID is the host's unique identifier for the page.
	ID string `json:"pageId" mapstructure:"id"`
	// Name is the human-readable page title.
	Name string `json:"pageName" mapstructure:"name"`
	// Route is the page's URL path (e.g. "/dashboard").
	Route string `json:"pageRoute" mapstructure:"route"`
}

// Validate checks that all three fields are non-empty strings.
// It returns a *errors.ContextError naming the first offending field in the
// host contract's spelling, or nil when the context is well formed.
func (c Context) Validate() error {
	if c.ID == "" {
		return errors.NewContextError("pageId", c.ID)
	}
	if c.Name == "" {
		return errors.NewContextError("pageName", c.Name)
	}
	if c.Route == "" {
		return errors.NewContextError("pageRoute", c.Route)
	}
	return nil
}

// Equal reports whether two contexts are structurally identical.
func (c Context) Equal(other Context) bool {
	return c.ID == other.ID && c.Name == other.Name && c.Route == other.Route
}

// String returns a compact representation for diagnostics.
func (c Context) String() string {
	return c.ID + " (" + c.Name + " @ " + c.Route + ")"
}
