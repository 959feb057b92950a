package widgets

import (
	"github.com/odvcencio/sectionlist/state"
)

// Component is a focusable widget that owns subscriptions.
type Component struct {
	FocusableBase
	Subs *state.Subscriptions
}

// Observe registers a subscription on the component scheduler.
func (c *Component) Observe(sub state.Subscribable, fn func()) {
	if c.Subs == nil {
		c.Subs = state.NewSubscriptions(nil)
	}
	c.Subs.Observe(sub, fn)
}

// Unmount drops every subscription.
func (c *Component) Unmount() {
	c.Subs.Clear()
}
