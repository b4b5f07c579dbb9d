package reconcile

import (
	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// Handler is a declarative event handler. Returning a vnode replaces the
// nearest reconciliation root with a fresh render of it; returning nil,
// false, or "" is passive and leaves the DOM alone. Returning a Thenable
// defers that decision to the future's resolution.
type Handler func(e *dom.Event) any

// FormHandler is the handler shape for oninput, onchange, and onsubmit.
// The first argument is the target's value for input and change, and the
// target's form controls for submit.
type FormHandler func(arg any, e *dom.Event) any

// isHandlerValue reports whether val is an accepted event handler shape.
func isHandlerValue(val any) bool {
	switch val.(type) {
	case Handler, func(*dom.Event) any, FormHandler, func(any, *dom.Event) any, func(*dom.Event):
		return true
	}
	return false
}

// formEvent reports whether name carries a form argument.
func formEvent(name string) bool {
	switch name {
	case "input", "change", "submit":
		return true
	}
	return false
}

func formArgument(name string, e *dom.Event) any {
	if e.Target == nil {
		return nil
	}
	if name == "submit" {
		return e.Target.FormControls()
	}
	return e.Target.Property("value")
}

// bridgeHandler wraps a user handler value for assignment as a live DOM
// handler. The wrapper locates the nearest reconciliation root, tracks it
// as the current event root for the handler's duration, and turns a vnode
// result into a replacement of that root.
func (c *Context) bridgeHandler(el *dom.Node, name string, val any) func(*dom.Event) {
	call := func(e *dom.Event) any {
		switch h := val.(type) {
		case Handler:
			return h(e)
		case func(*dom.Event) any:
			return h(e)
		case FormHandler:
			return h(formArgument(name, e), e)
		case func(any, *dom.Event) any:
			return h(formArgument(name, e), e)
		case func(*dom.Event):
			h(e)
			return nil
		}
		return nil
	}

	return func(e *dom.Event) {
		root := eventRootFor(el)
		if root == nil {
			// The element is detached from any render root.
			return
		}
		prev := c.eventRoot
		c.eventRoot = root
		// Handler panics propagate to the dispatcher; the event root is
		// still restored so one bad handler cannot wedge the engine.
		defer func() { c.eventRoot = prev }()
		res := call(e)

		if fut, ok := res.(Thenable); ok {
			// Keep in-place component updates disabled until resolution.
			c.pendingEvents++
			fut.Then(func(v any) {
				c.pendingEvents--
				c.completeEvent(root, e, name, v)
			})
			return
		}
		c.completeEvent(root, e, name, res)
	}
}

// completeEvent consumes a handler result, synchronously or after its
// future resolved.
func (c *Context) completeEvent(root *dom.Node, e *dom.Event, name string, res any) {
	if passiveResult(res) {
		return
	}
	if name == "submit" {
		// Any non-passive result means "handled": suppress native submit
		// even when the result is not renderable.
		e.PreventDefault()
	}
	node, ok := vdom.AsNode(res)
	if !ok {
		if c.debug {
			c.log.Warn("event handler returned a non-renderable value",
				"event", name, "value", res)
		}
		return
	}

	parent := root.Parent()
	if parent == nil {
		// Stale resolution: the root was detached while the handler was
		// in flight.
		return
	}
	c.releaseTicks(root)
	el := c.renderTree(node, true, childNamespace(parent))
	parent.ReplaceChild(el, root)
	c.rebindRoot(root, el, node)
}

// passiveResult reports whether res belongs to the passive set that leaves
// the DOM untouched and native behavior intact.
func passiveResult(res any) bool {
	switch v := res.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	}
	return false
}

// eventRootFor walks up from el to the nearest element marked as a
// reconciliation root.
func eventRootFor(el *dom.Node) *dom.Node {
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur.IsEventRoot() {
			return cur
		}
	}
	return nil
}

// rebindRoot moves any container association from the replaced root to its
// replacement.
func (c *Context) rebindRoot(old, repl *dom.Node, vnode any) {
	for _, st := range c.containers {
		if st.el == old {
			st.el = repl
			st.vnode = vnode
		}
	}
}
