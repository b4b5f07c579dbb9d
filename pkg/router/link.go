package router

import (
	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/el"
	"github.com/arbor-ui/arbor/pkg/reconcile"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// Link creates an anchor whose click is intercepted and turned into a
// Navigate call instead of a full page load.
func (r *Router) Link(href string, children ...any) vdom.VNode {
	args := append([]any{vdom.Props{
		"href":      href,
		"data-link": "true",
		"onclick": reconcile.Handler(func(e *dom.Event) any {
			e.PreventDefault()
			if err := r.Navigate(href); err != nil {
				r.log.Error("link navigation failed", "href", href, "error", err)
			}
			return nil
		}),
	}}, children...)
	return el.A(args...)
}

// ActiveLink is Link with a class applied while the target path is the
// current one.
func (r *Router) ActiveLink(href, activeClass string, children ...any) vdom.VNode {
	v := r.Link(href, children...)
	if r.current == href {
		v.Props()["class"] = activeClass
	}
	return v
}
