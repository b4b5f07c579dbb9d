package render

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed output with indentation. Intended for
	// development; it increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer handles server-side rendering of vnode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a vnode tree to an HTML string.
func (r *Renderer) RenderToString(v any) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a vnode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, v any) error {
	return r.renderNode(w, v, 0)
}

func (r *Renderer) renderNode(w io.Writer, v any, depth int) error {
	switch vdom.KindOf(v) {
	case vdom.KindEmpty:
		return nil
	case vdom.KindText:
		text, _ := vdom.TextOf(v)
		_, err := io.WriteString(w, escapeHTML(text))
		return err
	case vdom.KindNode:
		node, _ := vdom.AsNode(v)
		if node.IsFragment() {
			return r.renderChildren(w, node.Children(), depth)
		}
		return r.renderElement(w, node, depth)
	default:
		return errors.New("E101")
	}
}

func (r *Renderer) renderElement(w io.Writer, node vdom.VNode, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	props := node.Props()
	if err := r.renderAttributes(w, props); err != nil {
		return err
	}

	if voidElements[tag] {
		_, err := io.WriteString(w, ">")
		if err == nil && r.config.Pretty {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Raw markup takes the place of declared children, mirroring the
	// reconciler's innerHTML contract.
	if raw, ok := props["innerHTML"]; ok {
		if _, err := io.WriteString(w, vdom.AttrString(raw)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	}

	children := node.Children()
	pretty := r.config.Pretty && hasElementChild(children)
	if pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if err := r.renderChildren(w, children, depth+1); err != nil {
		return err
	}
	if pretty {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if r.config.Pretty && depth > 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, children []any, depth int) error {
	for _, c := range children {
		if err := r.renderNode(w, c, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes writes props in sorted key order for deterministic
// output. Event handlers and ontick have no serialized form.
func (r *Renderer) renderAttributes(w io.Writer, props vdom.Props) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		if skipAttribute(k, props[k]) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := props[k]
		if k == "style" {
			if st := styleAttr(v); st != "" {
				if _, err := io.WriteString(w, ` style="`+escapeAttr(st)+`"`); err != nil {
					return err
				}
			}
			continue
		}
		if b, ok := v.(bool); ok {
			// Boolean attributes serialize by presence.
			if b {
				if _, err := io.WriteString(w, " "+k); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := io.WriteString(w, " "+k+`="`+escapeAttr(vdom.AttrString(v))+`"`); err != nil {
			return err
		}
	}
	return nil
}

func skipAttribute(key string, val any) bool {
	if key == "innerHTML" || key == "ontick" {
		return true
	}
	if strings.HasPrefix(key, "on") {
		switch val.(type) {
		case string, int, int64, float64, bool:
			return false
		}
		return true
	}
	return false
}

// styleAttr serializes a style mapping in sorted property order.
func styleAttr(v any) string {
	var m map[string]any
	switch s := v.(type) {
	case vdom.Props:
		m = map[string]any(s)
	case map[string]any:
		m = s
	case map[string]string:
		m = make(map[string]any, len(s))
		for k, val := range s {
			m[k] = val
		}
	default:
		return vdom.AttrString(v)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(vdom.AttrString(m[k]))
	}
	return b.String()
}

func hasElementChild(children []any) bool {
	for _, c := range children {
		if vdom.KindOf(c) == vdom.KindNode {
			return true
		}
	}
	return false
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}

// voidElements have no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}
