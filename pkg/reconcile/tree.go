package reconcile

import (
	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// renderTree materializes a vnode subtree into real DOM nodes. isRoot marks
// the produced element as a reconciliation root; ns is the namespace
// inherited from the insertion point.
func (c *Context) renderTree(v any, isRoot bool, ns string) *dom.Node {
	switch vdom.KindOf(v) {
	case vdom.KindText:
		text, _ := vdom.TextOf(v)
		return c.doc.CreateText(text)
	case vdom.KindEmpty:
		return c.doc.CreateComment("empty")
	case vdom.KindNode:
		node, _ := vdom.AsNode(v)
		return c.renderElement(node, isRoot, ns)
	default:
		c.log.Error("cannot render malformed node", "value", v)
		return c.doc.CreateComment("invalid")
	}
}

func (c *Context) renderElement(node vdom.VNode, isRoot bool, ns string) *dom.Node {
	tag := node.Tag()

	elemNS := ns
	switch tag {
	case "svg":
		elemNS = dom.NamespaceSVG
	case "math":
		elemNS = dom.NamespaceMathML
	}

	var el *dom.Node
	singleton := false
	switch tag {
	case "html":
		el, singleton = c.doc.DocumentElement(), true
	case "head":
		el, singleton = c.doc.Head(), true
	case "body":
		el, singleton = c.doc.Body(), true
	default:
		el = c.doc.CreateElementNS(elemNS, tag)
	}
	if singleton {
		// A fresh render of a singleton replaces its content.
		for el.ChildCount() > 0 {
			el.RemoveChild(el.ChildAt(el.ChildCount() - 1))
		}
	}

	if isRoot && !singleton {
		el.MarkEventRoot(true)
	}
	c.claimElement(node, el)

	props := node.Props()
	c.assignProps(el, props)

	// Declared children are ignored when raw markup was assigned.
	if _, ok := props["innerHTML"]; ok {
		return el
	}

	childNS := elemNS
	switch {
	case elemNS == dom.NamespaceSVG && tag == "foreignObject":
		childNS = dom.NamespaceHTML
	case elemNS == dom.NamespaceMathML && tag == "annotation-xml":
		if enc, ok := props["encoding"].(string); ok && htmlEncoding(enc) {
			childNS = dom.NamespaceHTML
		}
	}

	for _, child := range node.Children() {
		el.AppendChild(c.renderTree(child, false, childNS))
	}
	return el
}

// claimElement hands el to the component instance waiting on this vnode,
// if any, and marks the element as that boundary's root.
func (c *Context) claimElement(node vdom.VNode, el *dom.Node) {
	ptr := vnodePtr(node)
	if ptr == 0 {
		return
	}
	inst, ok := c.watch[ptr]
	if !ok {
		return
	}
	delete(c.watch, ptr)
	inst.pending = 0
	inst.el = el
	el.MarkEventRoot(true)
}
