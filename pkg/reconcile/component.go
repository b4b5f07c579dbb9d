package reconcile

import (
	"fmt"

	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// RenderFunc is the shape of a component function: it takes arbitrary
// arguments and produces a vnode (or any renderable value).
type RenderFunc func(args ...any) any

// instance is the private identity token of one component boundary. It is
// created once per Component call and lives as long as the wrapped
// function is referenced.
type instance struct {
	vnode any
	el    *dom.Node
	// pending is the watch key of a candidate vnode that has not been
	// mounted yet, so a superseded candidate can be unregistered.
	pending uintptr
}

// Component wraps fn so that repeated invocation updates the
// previously-mounted DOM in place when that is safe, and otherwise returns
// a fresh vnode for the caller to mount. After an in-place update the
// wrapped function returns nil, a passive value, so an enclosing event
// handler does not trigger a second, redundant replacement. Each Component
// call creates one boundary identity; mount the same factory twice for two
// independent instances.
func (c *Context) Component(fn RenderFunc) RenderFunc {
	inst := &instance{}

	return func(args ...any) any {
		// In-place updates require an attached element and no concurrent
		// writer. An event handler dispatched inside this very boundary is
		// not a conflicting writer, so its synchronous window stays
		// eligible; anything suspended on a future does not.
		eligible := inst.el != nil &&
			inst.el.Parent() != nil &&
			c.updateDepth == 0 &&
			(c.eventRoot == nil || c.eventRoot == inst.el) &&
			c.pendingEvents == 0

		candidate := c.invokeComponent(fn, args)

		if !eligible {
			// The caller mounts the candidate; watch for the element it
			// renders to so the next invocation can find it.
			if ptr := vnodePtr(candidate); ptr != 0 {
				if inst.pending != 0 {
					delete(c.watch, inst.pending)
				}
				inst.vnode = candidate
				inst.pending = ptr
				c.watch[ptr] = inst
			}
			return candidate
		}

		parent := inst.el.Parent()
		p := vdom.Diff(inst.vnode, candidate)
		switch {
		case p == nil:
			inst.vnode = candidate
		case p.Op == vdom.OpReplace || p.Op == vdom.OpCreate:
			c.releaseTicks(inst.el)
			el := c.renderTree(candidate, true, childNamespace(parent))
			parent.ReplaceChild(el, inst.el)
			c.rebindRoot(inst.el, el, candidate)
			inst.el = el
			inst.vnode = candidate
		case p.Op == vdom.OpRemove:
			c.releaseTicks(inst.el)
			parent.RemoveChild(inst.el)
			inst.el = nil
			inst.vnode = nil
		default:
			idx := parent.IndexOf(inst.el)
			c.Apply(parent, p, idx)
			inst.vnode = candidate
		}
		return nil
	}
}

// invokeComponent runs the user function under the update-depth counter,
// so nested component calls inside the body see themselves as non-top-level
// and skip their own in-place update for this pass. A panicking component
// renders an error placeholder instead of aborting the tree.
func (c *Context) invokeComponent(fn RenderFunc, args []any) (out any) {
	defer func() {
		c.updateDepth--
		if r := recover(); r != nil {
			c.log.Error("component function failed", "error", r)
			out = vdom.New("div", nil, fmt.Sprintf("Error: %v", r))
		}
	}()
	c.updateDepth++
	return fn(args...)
}
