package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/arbor-ui/arbor/internal/errors"
)

// SetInnerHTML replaces n's children with the parse of markup. The markup
// is parsed as a fragment in the context of n's tag.
func (n *Node) SetInnerHTML(markup string) error {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     n.tag,
		DataAtom: atom.Lookup([]byte(n.tag)),
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return errors.FromError(err, "E201")
	}
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
	}
	for _, p := range parsed {
		if c := n.doc.fromHTMLNode(p); c != nil {
			n.AppendChild(c)
		}
	}
	return nil
}

// InnerHTML serializes n's children to markup.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.children {
		if h := c.toHTMLNode(); h != nil {
			html.Render(&b, h)
		}
	}
	return b.String()
}

// OuterHTML serializes n itself, children included.
func (n *Node) OuterHTML() string {
	h := n.toHTMLNode()
	if h == nil {
		return ""
	}
	var b strings.Builder
	html.Render(&b, h)
	return b.String()
}

func (d *Document) fromHTMLNode(h *html.Node) *Node {
	switch h.Type {
	case html.ElementNode:
		ns := NamespaceHTML
		switch h.Namespace {
		case "svg":
			ns = NamespaceSVG
		case "math":
			ns = NamespaceMathML
		}
		n := d.CreateElementNS(ns, h.Data)
		for _, a := range h.Attr {
			if a.Key == "style" {
				for name, val := range parseStyleText(a.Val) {
					n.SetStyle(name, val)
				}
				continue
			}
			n.SetAttribute(a.Key, a.Val)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if child := d.fromHTMLNode(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	case html.TextNode:
		return d.CreateText(h.Data)
	case html.CommentNode:
		return d.CreateComment(h.Data)
	default:
		return nil
	}
}

func (n *Node) toHTMLNode() *html.Node {
	switch n.kind {
	case ElementNode:
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     n.tag,
			DataAtom: atom.Lookup([]byte(n.tag)),
		}
		switch n.ns {
		case NamespaceSVG:
			h.Namespace = "svg"
		case NamespaceMathML:
			h.Namespace = "math"
		}
		for _, name := range n.attrOrder {
			h.Attr = append(h.Attr, html.Attribute{Key: name, Val: n.attrs[name]})
		}
		if st := n.styleText(); st != "" {
			h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: st})
		}
		for _, c := range n.children {
			if ch := c.toHTMLNode(); ch != nil {
				h.AppendChild(ch)
			}
		}
		return h
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.data}
	case CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.data}
	default:
		return nil
	}
}

// parseStyleText splits a style attribute into property/value pairs.
func parseStyleText(s string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out[strings.TrimSpace(name)] = strings.TrimSpace(val)
	}
	return out
}
