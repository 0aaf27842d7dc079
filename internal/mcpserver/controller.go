package mcpserver

import (
	"sync"

	"github.com/mark3labs/ideaeval/internal/evaluation"
)

// Controller serializes tool calls against a single evaluation state.
// Each mutation swaps in the new snapshot returned by State.
type Controller struct {
	mu    sync.Mutex
	state evaluation.State
}

// NewController creates a controller seeded with the given idea names, or a
// single blank idea when none are given.
func NewController(names ...string) *Controller {
	return &Controller{state: evaluation.NewStateWithNames(names...)}
}

// State returns the current snapshot.
func (c *Controller) State() evaluation.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply runs fn on the current snapshot and stores the result.
func (c *Controller) Apply(fn func(evaluation.State) evaluation.State) evaluation.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = fn(c.state)
	return c.state
}
