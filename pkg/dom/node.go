package dom

import (
	"sort"
	"strings"

	"github.com/arbor-ui/arbor/internal/errors"
)

// Supported element namespaces.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)

// NodeType discriminates the node kinds a Document can hold.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}

// Node is a single node in a Document tree. Elements carry attributes,
// inline style, DOM properties, and event handlers; text and comment nodes
// carry character data.
type Node struct {
	doc      *Document
	kind     NodeType
	tag      string
	ns       string
	parent   *Node
	children []*Node

	attrs     map[string]string
	attrOrder []string
	style     map[string]string
	props     map[string]any
	handlers  map[string]func(*Event)

	data string

	eventRoot bool
}

// Type returns the node kind.
func (n *Node) Type() NodeType { return n.kind }

// Tag returns the element tag name, or "" for non-elements.
func (n *Node) Tag() string { return n.tag }

// Namespace returns the element namespace URI.
func (n *Node) Namespace() string { return n.ns }

// Parent returns the parent node, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Data returns the character data of a text or comment node.
func (n *Node) Data() string { return n.data }

// SetData replaces the character data of a text or comment node.
func (n *Node) SetData(data string) {
	if n.data == data {
		return
	}
	n.data = data
	n.doc.recordMutation()
}

// ChildCount returns the number of child nodes.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the child at index i, or nil when i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the child list. The returned slice is live; callers must
// not modify it.
func (n *Node) Children() []*Node { return n.children }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.ChildAt(0) }

// IndexOf returns the index of child under n, or -1 when child is not a
// direct child. Comparison is by identity.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AppendChild detaches c from its current parent and appends it to n.
func (n *Node) AppendChild(c *Node) {
	c.Remove()
	c.parent = n
	n.children = append(n.children, c)
	n.doc.recordMutation()
}

// InsertBefore detaches c and inserts it immediately before ref. A nil ref
// appends.
func (n *Node) InsertBefore(c, ref *Node) {
	if ref == nil {
		n.AppendChild(c)
		return
	}
	c.Remove()
	i := n.IndexOf(ref)
	if i < 0 {
		i = len(n.children)
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	n.doc.recordMutation()
}

// RemoveChild detaches c from n. Unknown children are ignored.
func (n *Node) RemoveChild(c *Node) {
	i := n.IndexOf(c)
	if i < 0 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children = n.children[:len(n.children)-1]
	c.parent = nil
	n.doc.recordMutation()
}

// ReplaceChild swaps old for repl in n's child list, keeping the position.
func (n *Node) ReplaceChild(repl, old *Node) {
	if repl == old {
		return
	}
	i := n.IndexOf(old)
	if i < 0 {
		return
	}
	repl.Remove()
	n.children[i] = repl
	repl.parent = n
	old.parent = nil
	n.doc.recordMutation()
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Connected reports whether n is reachable from its document root.
func (n *Node) Connected() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.kind == DocumentNode {
			return true
		}
	}
	return false
}

// MarkEventRoot flags n as a live event root.
func (n *Node) MarkEventRoot(v bool) { n.eventRoot = v }

// IsEventRoot reports whether n is flagged as a live event root.
func (n *Node) IsEventRoot() bool { return n.eventRoot }

// SetAttribute sets a content attribute, preserving first-set order. The
// name must be a valid attribute name.
func (n *Node) SetAttribute(name, value string) error {
	if !validAttributeName(name) {
		return errors.Newf(errors.CategoryDOM, "invalid attribute name %q", name)
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if _, ok := n.attrs[name]; !ok {
		n.attrOrder = append(n.attrOrder, name)
	} else if n.attrs[name] == value {
		return nil
	}
	n.attrs[name] = value
	n.doc.recordMutation()
	return nil
}

// RemoveAttribute deletes a content attribute if present.
func (n *Node) RemoveAttribute(name string) {
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	for i, a := range n.attrOrder {
		if a == name {
			n.attrOrder = append(n.attrOrder[:i], n.attrOrder[i+1:]...)
			break
		}
	}
	n.doc.recordMutation()
}

// Attribute returns the value of a content attribute.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// AttributeNames returns attribute names in first-set order.
func (n *Node) AttributeNames() []string {
	out := make([]string, len(n.attrOrder))
	copy(out, n.attrOrder)
	return out
}

func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == ':' || r == '.':
		default:
			return false
		}
	}
	return true
}

// SetStyle sets one inline style declaration.
func (n *Node) SetStyle(name, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	if old, ok := n.style[name]; ok && old == value {
		return
	}
	n.style[name] = value
	n.doc.recordMutation()
}

// RemoveStyle deletes one inline style declaration.
func (n *Node) RemoveStyle(name string) {
	if _, ok := n.style[name]; !ok {
		return
	}
	delete(n.style, name)
	n.doc.recordMutation()
}

// StyleValue returns one inline style declaration.
func (n *Node) StyleValue(name string) (string, bool) {
	v, ok := n.style[name]
	return v, ok
}

// StyleNames returns the inline style property names in sorted order.
func (n *Node) StyleNames() []string {
	out := make([]string, 0, len(n.style))
	for k := range n.style {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StyleLen returns the number of inline style declarations.
func (n *Node) StyleLen() int { return len(n.style) }

// ClearStyle removes all inline style declarations.
func (n *Node) ClearStyle() {
	if len(n.style) == 0 {
		return
	}
	n.style = nil
	n.doc.recordMutation()
}

// styleText serializes the inline style in sorted property order.
func (n *Node) styleText() string {
	if len(n.style) == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range n.StyleNames() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(n.style[k])
	}
	return b.String()
}

// HasProperty reports whether name is a DOM property of this element's tag,
// as opposed to a plain content attribute.
func (n *Node) HasProperty(name string) bool {
	set, ok := elementProperties[n.tag]
	if !ok {
		return false
	}
	return set[name]
}

// SetProperty assigns a DOM property. Assigning nil resets the property to
// its per-tag default.
func (n *Node) SetProperty(name string, v any) {
	if v == nil {
		if _, ok := n.props[name]; !ok {
			return
		}
		delete(n.props, name)
		n.doc.recordMutation()
		return
	}
	if n.props == nil {
		n.props = make(map[string]any)
	}
	if old, ok := n.props[name]; ok && scalarEqual(old, v) {
		return
	}
	n.props[name] = v
	n.doc.recordMutation()
}

// scalarEqual reports whether two property values are equal scalars. Only
// scalar kinds reach the == operator, so uncomparable values such as maps,
// slices, and funcs never panic; they always count as changed.
func scalarEqual(a, b any) bool {
	switch a.(type) {
	case string, bool, int, int64, float64:
		return a == b
	}
	return false
}

// Property returns the current value of a DOM property, falling back to the
// tag's default when it was never assigned.
func (n *Node) Property(name string) any {
	if v, ok := n.props[name]; ok {
		return v
	}
	return propertyDefault(name)
}

// SetHandler installs the event handler for one event type, replacing any
// previous handler. A nil handler removes it.
func (n *Node) SetHandler(event string, h func(*Event)) {
	if h == nil {
		if _, ok := n.handlers[event]; !ok {
			return
		}
		delete(n.handlers, event)
		n.doc.recordMutation()
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[string]func(*Event))
	}
	n.handlers[event] = h
	n.doc.recordMutation()
}

// Handler returns the installed handler for an event type, or nil.
func (n *Node) Handler(event string) func(*Event) {
	return n.handlers[event]
}

// DispatchEvent delivers e to n and bubbles it toward the document root,
// invoking each installed handler along the path.
func (n *Node) DispatchEvent(e *Event) {
	if e.Target == nil {
		e.Target = n
	}
	for cur := n; cur != nil; cur = cur.parent {
		if h := cur.handlers[e.Type]; h != nil {
			h(e)
			if e.stopped {
				return
			}
		}
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	switch n.kind {
	case TextNode:
		b.WriteString(n.data)
	case ElementNode, DocumentNode:
		for _, c := range n.children {
			c.appendText(b)
		}
	}
}

// FormControls walks n's subtree and collects its form control elements in
// document order.
func (n *Node) FormControls() []*Node {
	var out []*Node
	n.collectControls(&out)
	return out
}

func (n *Node) collectControls(out *[]*Node) {
	if n.kind == ElementNode {
		switch n.tag {
		case "input", "select", "textarea", "button":
			*out = append(*out, n)
		}
	}
	for _, c := range n.children {
		c.collectControls(out)
	}
}

// ControlByName returns the first descendant form control whose name
// attribute matches, or nil.
func (n *Node) ControlByName(name string) *Node {
	for _, c := range n.FormControls() {
		if v, ok := c.Attribute("name"); ok && v == name {
			return c
		}
	}
	return nil
}
