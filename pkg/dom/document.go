package dom

// Document is the root of a headless DOM tree. It owns node creation, the
// html/head/body singletons, the frame scheduler, and a mutation counter
// that tests use to assert no-op renders really were no-ops.
type Document struct {
	root *Node
	html *Node

	frames    []frameCallback
	nextFrame int

	mutations int64
}

// NewDocument creates an empty document with a documentElement already
// attached. head and body are created lazily on first access.
func NewDocument() *Document {
	d := &Document{nextFrame: 1}
	d.root = &Node{doc: d, kind: DocumentNode}
	d.html = d.CreateElement("html")
	d.root.AppendChild(d.html)
	d.mutations = 0
	return d
}

// CreateElement creates a detached HTML element.
func (d *Document) CreateElement(tag string) *Node {
	return d.CreateElementNS(NamespaceHTML, tag)
}

// CreateElementNS creates a detached element in the given namespace.
func (d *Document) CreateElementNS(ns, tag string) *Node {
	return &Node{doc: d, kind: ElementNode, tag: tag, ns: ns}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *Node {
	return &Node{doc: d, kind: TextNode, data: data}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Node {
	return &Node{doc: d, kind: CommentNode, data: data}
}

// Root returns the document node itself.
func (d *Document) Root() *Node { return d.root }

// DocumentElement returns the html element.
func (d *Document) DocumentElement() *Node { return d.html }

// Head returns the head element, creating and attaching it when missing.
func (d *Document) Head() *Node {
	if h := d.childElement(d.html, "head"); h != nil {
		return h
	}
	h := d.CreateElement("head")
	d.html.InsertBefore(h, d.html.FirstChild())
	return h
}

// Body returns the body element, creating and attaching it when missing.
func (d *Document) Body() *Node {
	if b := d.childElement(d.html, "body"); b != nil {
		return b
	}
	b := d.CreateElement("body")
	d.html.AppendChild(b)
	return b
}

func (d *Document) childElement(parent *Node, tag string) *Node {
	for _, c := range parent.children {
		if c.kind == ElementNode && c.tag == tag {
			return c
		}
	}
	return nil
}

// Mutations returns the number of tree mutations recorded since the
// document was created.
func (d *Document) Mutations() int64 { return d.mutations }

func (d *Document) recordMutation() {
	if d != nil {
		d.mutations++
	}
}
