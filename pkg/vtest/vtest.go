// Package vtest provides test helpers for exercising Arbor components
// against a headless document: mounting, synthetic events, simulated
// animation frames, and rendered-output assertions.
package vtest

import (
	"strings"
	"testing"

	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/reconcile"
	"github.com/arbor-ui/arbor/pkg/render"
)

// Harness drives one mounted tree through its lifecycle in tests.
type Harness struct {
	t   *testing.T
	doc *dom.Document
	rc  *reconcile.Context

	container *dom.Node
	clock     float64
}

// New creates a harness with a fresh document; the body is the mount
// container.
func New(t *testing.T) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	return &Harness{
		t:         t,
		doc:       doc,
		rc:        reconcile.NewContext(doc),
		container: doc.Body(),
	}
}

// Document returns the harness document.
func (h *Harness) Document() *dom.Document { return h.doc }

// Context returns the reconciliation context, for wiring components.
func (h *Harness) Context() *reconcile.Context { return h.rc }

// Mount renders v into the container and returns the mounted root element.
func (h *Harness) Mount(v any) *dom.Node {
	h.t.Helper()
	if err := h.rc.Render(v, h.container); err != nil {
		h.t.Fatalf("mount: %v", err)
	}
	return h.container.ChildAt(0)
}

// Root returns the currently mounted root element.
func (h *Harness) Root() *dom.Node {
	return h.container.ChildAt(0)
}

// Click dispatches a click event at el.
func (h *Harness) Click(el *dom.Node) *dom.Event {
	e := dom.NewEvent("click")
	el.DispatchEvent(e)
	return e
}

// Input sets el's value property and dispatches an input event.
func (h *Harness) Input(el *dom.Node, value string) *dom.Event {
	el.SetProperty("value", value)
	e := dom.NewEvent("input")
	el.DispatchEvent(e)
	return e
}

// Submit dispatches a submit event at el.
func (h *Harness) Submit(el *dom.Node) *dom.Event {
	e := dom.NewEvent("submit")
	el.DispatchEvent(e)
	return e
}

// StepFrame advances the simulated animation clock by dt and runs the
// pending frame callbacks.
func (h *Harness) StepFrame(dt float64) {
	h.clock += dt
	h.doc.Step(h.clock)
}

// Find returns the first element in the mounted tree with the given tag,
// or nil.
func (h *Harness) Find(tag string) *dom.Node {
	return findTag(h.container, tag)
}

func findTag(n *dom.Node, tag string) *dom.Node {
	for _, c := range n.Children() {
		if c.Type() == dom.ElementNode && c.Tag() == tag {
			return c
		}
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// ExpectText fails the test unless the mounted tree's text content
// contains want.
func (h *Harness) ExpectText(want string) {
	h.t.Helper()
	got := h.container.TextContent()
	if !strings.Contains(got, want) {
		h.t.Errorf("mounted text %q does not contain %q", got, want)
	}
}

// ExpectHTML fails the test unless the container's markup contains want.
func (h *Harness) ExpectHTML(want string) {
	h.t.Helper()
	got := h.container.InnerHTML()
	if !strings.Contains(got, want) {
		h.t.Errorf("markup %q does not contain %q", got, want)
	}
}

// RenderToString serializes a vnode, for asserting on server-rendered
// output.
func RenderToString(v any) string {
	r := render.NewRenderer(render.RendererConfig{})
	out, err := r.RenderToString(v)
	if err != nil {
		return ""
	}
	return out
}

// ExpectContains asserts that the serialized form of v contains want.
func ExpectContains(t *testing.T, v any, want string) {
	t.Helper()
	got := RenderToString(v)
	if !strings.Contains(got, want) {
		t.Errorf("rendered output %q does not contain %q", got, want)
	}
}
