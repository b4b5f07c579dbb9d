// Package render serializes vnode trees to HTML strings.
//
// The serializer consumes the same [tag, props, ...children] sequences the
// reconciler does, read-only. Event handlers and the ontick hook have no
// server-side meaning and are skipped; fragments flatten into their parent
// without a wrapper element.
package render
