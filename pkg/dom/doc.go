// Package dom provides the headless live DOM that Arbor's reconciler
// mutates.
//
// Go has no ambient browser, so the document tree, inline styles, DOM
// properties, event dispatch, and the animation-frame facility live here.
// The tree is goroutine-confined: a Document and every node under it must
// only be touched from a single goroutine, mirroring the single-threaded
// host model the reconciler assumes.
//
// Nodes support namespace-aware attributes (HTML, SVG, MathML), per-tag DOM
// properties with documented defaults (checked resets to false, volume to 1,
// and so on), bubbling event dispatch with PreventDefault, and an
// innerHTML/OuterHTML pair backed by golang.org/x/net/html.
//
// Frames are driven explicitly: callbacks registered with RequestFrame run
// when the embedder calls Step(ts), which is also how tests simulate
// animation frames.
package dom
