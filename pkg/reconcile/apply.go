package reconcile

import (
	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// Apply walks a patch against the live child of parent at index, calling
// back into the renderer for CREATE and REPLACE and into the props
// reconciler for UPDATE. A nil patch is a no-op.
func (c *Context) Apply(parent *dom.Node, p *vdom.Patch, index int) {
	if p == nil {
		return
	}
	switch p.Op {
	case vdom.OpCreate:
		el := c.renderTree(p.Node, false, childNamespace(parent))
		// Insert before the current occupant to keep child order under
		// insert-in-middle, append when the index is past the end.
		parent.InsertBefore(el, parent.ChildAt(index))
	case vdom.OpRemove:
		if ch := parent.ChildAt(index); ch != nil {
			c.releaseTicks(ch)
			parent.RemoveChild(ch)
		}
	case vdom.OpReplace:
		el := c.renderTree(p.Node, false, childNamespace(parent))
		if old := parent.ChildAt(index); old != nil {
			c.releaseTicks(old)
			parent.ReplaceChild(el, old)
		} else {
			parent.AppendChild(el)
		}
	case vdom.OpUpdate:
		el := parent.ChildAt(index)
		if el == nil {
			return
		}
		if p.NextProps != nil || p.PrevProps != nil {
			c.clearMissing(el, p.PrevProps, p.NextProps)
			c.assignProps(el, p.NextProps)
		}
		// Child patches apply in reverse order so removals and insertions
		// never invalidate the indices of patches still to come, which
		// were computed against the pre-mutation child list.
		for i := len(p.Children) - 1; i >= 0; i-- {
			cp := p.Children[i]
			c.Apply(el, cp.Patch, cp.Index)
		}
	}
}
