// Package el is the UI DSL for Arbor.
//
// Element constructors build the plain [tag, props, ...children] vnode
// sequences the reconciler consumes. Arguments are positional-free: a
// vdom.Props argument contributes props, everything else becomes a child.
//
// Typical usage:
//
//	import (
//	    "github.com/arbor-ui/arbor/pkg/vdom"
//	    . "github.com/arbor-ui/arbor/pkg/el"
//	)
//
//	Div(vdom.Props{"id": "app"},
//	    H1("Hello"),
//	    Ul(Range(items, func(it string, i int) vdom.VNode {
//	        return Li(it)
//	    })),
//	)
package el
