// Package reconcile is Arbor's reconciliation engine. It turns vnode trees
// from pkg/vdom into live pkg/dom mutations: full mounts, minimal patch
// application, component-boundary in-place updates, declarative event
// handling, and the per-frame ontick loop.
//
// All coordination state lives on a Context rather than in package globals,
// so independent render roots (and tests) never interfere. A Context and the
// Document it drives are confined to one goroutine.
package reconcile
