package reconcile

import (
	"github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// RenderOption configures one Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	replace bool
}

// WithReplace forces a full remount, discarding the container's stored
// previous vnode instead of diffing against it.
func WithReplace() RenderOption {
	return func(o *renderOptions) { o.replace = true }
}

// Render mounts or updates a vnode tree against container. The first
// render of a container is a full mount; later renders diff against the
// stored previous tree and apply the minimal patch. A nil container is
// only valid for a tree rooted at the html tag, which targets the
// document itself.
func (c *Context) Render(v any, container *dom.Node, opts ...RenderOption) error {
	var o renderOptions
	for _, fn := range opts {
		fn(&o)
	}

	if container == nil {
		if node, ok := vdom.AsNode(v); ok && node.Tag() == "html" {
			container = c.doc.Root()
		} else {
			return errors.New("E501")
		}
	}

	st, mounted := c.containers[container]
	if !mounted || o.replace {
		if mounted && st.el != nil && st.el.Parent() == container {
			c.releaseTicks(st.el)
			container.RemoveChild(st.el)
		}
		el := c.renderTree(v, true, childNamespace(container))
		if el.Parent() == nil {
			container.AppendChild(el)
		}
		c.containers[container] = &rootState{vnode: v, el: el}
		return nil
	}

	p := vdom.Diff(st.vnode, v)
	if p == nil {
		st.vnode = v
		return nil
	}

	idx := container.IndexOf(st.el)
	switch p.Op {
	case vdom.OpCreate, vdom.OpReplace:
		if st.el != nil {
			c.releaseTicks(st.el)
		}
		el := c.renderTree(v, true, childNamespace(container))
		switch {
		case st.el != nil && st.el.Parent() == container && el != st.el:
			container.ReplaceChild(el, st.el)
		case el.Parent() == nil:
			if idx >= 0 {
				container.InsertBefore(el, container.ChildAt(idx))
			} else {
				container.AppendChild(el)
			}
		}
		st.el = el
		st.vnode = v
	case vdom.OpRemove:
		if st.el != nil && st.el.Parent() == container {
			c.releaseTicks(st.el)
			container.RemoveChild(st.el)
		}
		delete(c.containers, container)
	case vdom.OpUpdate:
		c.Apply(container, p, idx)
		st.vnode = v
	}
	return nil
}
