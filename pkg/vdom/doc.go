// Package vdom provides Arbor's virtual node model and tree differ.
//
// A vnode is a plain heterogeneous sequence: position 0 is a tag name (or
// the "fragment" sentinel), position 1 is a Props mapping, and positions 2+
// are children. Vnodes are ordinary data: any []any of that shape is
// accepted, and the differ and renderer never mutate their inputs.
//
// # Diffing
//
// Diff compares two tree values and returns a single Patch (Create, Remove,
// Replace, or Update with a sparse child delta), or nil when the trees are
// structurally equal. Children are aligned by position; there is no key
// system, so list reorders cost a replace/recreate per moved position.
package vdom
