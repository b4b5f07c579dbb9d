package reconcile

import (
	"log/slog"
	"reflect"

	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// rootState tracks one mounted render target: the vnode last rendered into
// the container and the element it produced.
type rootState struct {
	vnode any
	el    *dom.Node
}

// Context holds the engine's coordination state for one document.
type Context struct {
	doc   *dom.Document
	log   *slog.Logger
	debug bool

	// updateDepth counts nested component invocations within one pass.
	// Component boundaries only update in place at depth zero.
	updateDepth int
	// eventRoot is the root of the event handler currently executing, if
	// any. It disables component in-place updates for the handler's
	// synchronous window.
	eventRoot *dom.Node
	// pendingEvents counts event handlers suspended on a future. In-place
	// updates stay disabled for the whole window any handler is in flight.
	pendingEvents int

	// containers maps each render target to its mounted state.
	containers map[*dom.Node]*rootState
	// watch holds component instances waiting to claim the element their
	// candidate vnode renders to. Keyed by the vnode's backing array
	// identity; entries are removed as soon as they are claimed.
	watch map[uintptr]*instance
	// ticks holds the per-element tick loops.
	ticks map[*dom.Node]*tickLoop
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the structured logger the engine reports through.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.log = l }
}

// WithDebug enables developer warnings for recoverable mistakes, such as
// attribute assignment failures and event handlers returning
// non-renderable values.
func WithDebug(v bool) Option {
	return func(c *Context) { c.debug = v }
}

// NewContext creates a reconciliation context for doc.
func NewContext(doc *dom.Document, opts ...Option) *Context {
	c := &Context{
		doc:        doc,
		log:        slog.Default(),
		containers: make(map[*dom.Node]*rootState),
		watch:      make(map[uintptr]*instance),
		ticks:      make(map[*dom.Node]*tickLoop),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Document returns the document this context drives.
func (c *Context) Document() *dom.Document { return c.doc }

// vnodePtr returns a stable identity for a vnode's backing array, used to
// hand a freshly rendered element back to the component instance that
// produced the vnode.
func vnodePtr(v any) uintptr {
	node, ok := vdom.AsNode(v)
	if !ok || len(node) == 0 {
		return 0
	}
	return reflect.ValueOf([]any(node)).Pointer()
}

// childNamespace returns the namespace new children of parent are created
// in, honoring the foreignObject and annotation-xml resets.
func childNamespace(parent *dom.Node) string {
	if parent == nil || parent.Type() != dom.ElementNode {
		return dom.NamespaceHTML
	}
	ns := parent.Namespace()
	switch {
	case ns == dom.NamespaceSVG && parent.Tag() == "foreignObject":
		return dom.NamespaceHTML
	case ns == dom.NamespaceMathML && parent.Tag() == "annotation-xml":
		if enc, ok := parent.Attribute("encoding"); ok && htmlEncoding(enc) {
			return dom.NamespaceHTML
		}
	}
	if ns == "" {
		return dom.NamespaceHTML
	}
	return ns
}

func htmlEncoding(enc string) bool {
	switch enc {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}
