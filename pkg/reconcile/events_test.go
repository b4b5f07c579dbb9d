package reconcile

import (
	"testing"

	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

func TestSubmitHandlerReceivesFormControls(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	var gotArg any
	var gotEvent *dom.Event
	v := vdom.New("form", vdom.Props{
		"onsubmit": FormHandler(func(arg any, e *dom.Event) any {
			gotArg = arg
			gotEvent = e
			return nil
		}),
	},
		vdom.New("input", vdom.Props{"name": "user"}),
		vdom.New("select", vdom.Props{"name": "plan"}),
	)
	mustRender(t, c, v, body)

	form := body.ChildAt(0)
	form.DispatchEvent(dom.NewEvent("submit"))

	controls, ok := gotArg.([]*dom.Node)
	if !ok {
		t.Fatalf("submit argument = %T", gotArg)
	}
	want := gotEvent.Target.FormControls()
	if len(controls) != len(want) {
		t.Fatalf("controls = %d, want %d", len(controls), len(want))
	}
	for i := range controls {
		if controls[i] != want[i] {
			t.Errorf("control %d differs from the target's controls", i)
		}
	}
}

func TestInputHandlerReceivesValue(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	var gotArg any
	v := vdom.New("input", vdom.Props{
		"oninput": FormHandler(func(arg any, e *dom.Event) any {
			gotArg = arg
			return nil
		}),
	})
	mustRender(t, c, v, body)

	input := body.ChildAt(0)
	input.SetProperty("value", "typed")
	input.DispatchEvent(dom.NewEvent("input"))

	if gotArg != "typed" {
		t.Errorf("input argument = %v, want the target value", gotArg)
	}
}

func TestPassiveResultsLeaveDOMAlone(t *testing.T) {
	passives := map[string]any{
		"nil":          nil,
		"false":        false,
		"empty string": "",
	}
	for name, res := range passives {
		t.Run(name, func(t *testing.T) {
			c, doc := newTestContext(t)
			body := doc.Body()

			v := vdom.New("form", vdom.Props{
				"onsubmit": Handler(func(*dom.Event) any { return res }),
			})
			mustRender(t, c, v, body)
			el := body.ChildAt(0)

			e := dom.NewEvent("submit")
			el.DispatchEvent(e)

			if body.ChildAt(0) != el {
				t.Error("passive result must not replace the root")
			}
			if e.DefaultPrevented() {
				t.Error("passive result must not prevent the default")
			}
		})
	}
}

func TestActiveResultReplacesRoot(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	v := vdom.New("form", vdom.Props{
		"onsubmit": Handler(func(*dom.Event) any {
			return vdom.New("div", vdom.Props{"id": "done"})
		}),
	})
	mustRender(t, c, v, body)
	el := body.ChildAt(0)

	e := dom.NewEvent("submit")
	el.DispatchEvent(e)

	repl := body.ChildAt(0)
	if repl == el {
		t.Fatal("active result must replace the root")
	}
	if id, _ := repl.Attribute("id"); id != "done" {
		t.Errorf("replacement id = %q", id)
	}
	if !e.DefaultPrevented() {
		t.Error("non-passive submit result must prevent the default")
	}
	if !repl.IsEventRoot() {
		t.Error("the replacement must become the new root")
	}
}

func TestNonRenderableResultOnlySuppressesSubmit(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	v := vdom.New("form", vdom.Props{
		"onsubmit": Handler(func(*dom.Event) any { return "handled" }),
	})
	mustRender(t, c, v, body)
	el := body.ChildAt(0)

	e := dom.NewEvent("submit")
	el.DispatchEvent(e)

	if body.ChildAt(0) != el {
		t.Error("non-renderable result must not replace the root")
	}
	if !e.DefaultPrevented() {
		t.Error("a defined submit result means handled")
	}
}

func TestEventBubblesToNearestRoot(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	v := vdom.New("div", nil,
		vdom.New("button", vdom.Props{
			"onclick": Handler(func(*dom.Event) any {
				return vdom.New("div", vdom.Props{"id": "next"})
			}),
		}, "go"),
	)
	mustRender(t, c, v, body)
	root := body.ChildAt(0)
	button := root.ChildAt(0)

	button.DispatchEvent(dom.NewEvent("click"))

	if body.ChildAt(0) == root {
		t.Fatal("the nearest root, not the button, must be replaced")
	}
	if id, _ := body.ChildAt(0).Attribute("id"); id != "next" {
		t.Errorf("replacement id = %q", id)
	}
}

func TestAsyncResultReplacesOnResolve(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	fut := NewFuture()
	v := vdom.New("div", vdom.Props{
		"onclick": Handler(func(*dom.Event) any { return fut }),
	})
	mustRender(t, c, v, body)
	el := body.ChildAt(0)

	el.DispatchEvent(dom.NewEvent("click"))
	if body.ChildAt(0) != el {
		t.Fatal("nothing may change before the future resolves")
	}

	fut.Resolve(vdom.New("div", vdom.Props{"id": "later"}))
	if id, _ := body.ChildAt(0).Attribute("id"); id != "later" {
		t.Errorf("replacement id = %q", id)
	}
}

func TestAsyncGateDisablesInPlaceUpdates(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	counter := makeCounter(c)
	mustRender(t, c, counter(0), body)
	el := body.ChildAt(0)

	fut := NewFuture()
	other := vdom.New("div", vdom.Props{
		"onclick": Handler(func(*dom.Event) any { return fut }),
	})
	mustRender(t, c, other, doc.Head())
	doc.Head().ChildAt(0).DispatchEvent(dom.NewEvent("click"))

	// Any in-flight handler anywhere disables in-place updates.
	out := counter(9)
	if out == nil {
		t.Fatal("boundary must not update in place while a handler is in flight")
	}
	if el.TextContent() != "count:0" {
		t.Errorf("text = %q, must be untouched", el.TextContent())
	}

	fut.Resolve(nil)
	if counter(1) != nil {
		t.Error("boundary should update in place again after resolution")
	}
}

func TestStaleResolutionIsNoop(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	fut := NewFuture()
	v := vdom.New("div", vdom.Props{
		"onclick": Handler(func(*dom.Event) any { return fut }),
	})
	mustRender(t, c, v, body)
	el := body.ChildAt(0)

	el.DispatchEvent(dom.NewEvent("click"))
	body.RemoveChild(el)

	fut.Resolve(vdom.New("div", vdom.Props{"id": "late"}))
	if body.ChildCount() != 0 {
		t.Errorf("stale resolution must not mount anything, children = %d", body.ChildCount())
	}
}

func TestDetachedElementHandlerIsIgnored(t *testing.T) {
	c, doc := newTestContext(t)
	body := doc.Body()

	called := false
	v := vdom.New("div", vdom.Props{
		"onclick": Handler(func(*dom.Event) any {
			called = true
			return nil
		}),
	})
	mustRender(t, c, v, body)
	el := body.ChildAt(0)
	el.MarkEventRoot(false)
	body.RemoveChild(el)

	el.DispatchEvent(dom.NewEvent("click"))
	if called {
		t.Error("handlers without a reachable root must not run")
	}
}
