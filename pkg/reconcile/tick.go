package reconcile

import (
	"reflect"
	"unsafe"

	"github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/pkg/dom"
)

// TickHandler is the per-frame callback for an element's tick loop. ctx is
// the value returned by the previous invocation (nil on the first live
// frame); dt is the time since the previous live frame in the document's
// timestamp units, 0 on the first. Returning a non-nil value replaces the
// stored context for the next frame; returning nil preserves it. Handlers
// must be synchronous.
type TickHandler func(el *dom.Node, ctx any, dt float64) any

// Tick is the value an ontick prop may carry when the loop needs a
// readiness gate in addition to the handler.
type Tick struct {
	Handler TickHandler
	// Ready, when set, must return true before the handler runs. Frames
	// where it returns false reschedule without advancing the clock.
	Ready func(el *dom.Node) bool
}

// tickValue normalizes the accepted ontick prop shapes.
func tickValue(val any) (TickHandler, func(*dom.Node) bool, bool) {
	switch v := val.(type) {
	case TickHandler:
		return v, nil, true
	case func(el *dom.Node, ctx any, dt float64) any:
		return v, nil, true
	case Tick:
		return v.Handler, v.Ready, v.Handler != nil
	case *Tick:
		return v.Handler, v.Ready, v != nil && v.Handler != nil
	}
	return nil, nil, false
}

// tickLoop is the per-element state machine: idle, scheduled, running, then
// scheduled again or stopped.
type tickLoop struct {
	c       *Context
	el      *dom.Node
	handler TickHandler
	ready   func(*dom.Node) bool

	ctx          any
	lastTS       float64
	hasLast      bool
	wasConnected bool

	frameID int
	stopped bool
}

// StartTick begins a tick loop for el. Starting again with the same
// handler and readiness predicate is a no-op; a different handler or
// predicate stops the old loop and starts a new one.
func (c *Context) StartTick(el *dom.Node, h TickHandler, ready func(*dom.Node) bool) {
	if cur, ok := c.ticks[el]; ok {
		if sameFunc(cur.handler, h) && sameFunc(cur.ready, ready) {
			return
		}
		c.StopTick(el)
	}
	loop := &tickLoop{c: c, el: el, handler: h, ready: ready}
	c.ticks[el] = loop
	loop.schedule()
}

// StopTick cancels el's tick loop. Stopping an element with no loop is a
// no-op.
func (c *Context) StopTick(el *dom.Node) {
	loop, ok := c.ticks[el]
	if !ok {
		return
	}
	loop.stopped = true
	c.doc.CancelFrame(loop.frameID)
	delete(c.ticks, el)
}

// releaseTicks stops the loops of every element in the subtree rooted at n.
// The disconnection check would catch them on their next frame anyway; this
// just frees them eagerly when the engine removes the subtree itself.
func (c *Context) releaseTicks(n *dom.Node) {
	for el := range c.ticks {
		if underSubtree(el, n) {
			c.StopTick(el)
		}
	}
}

func underSubtree(el, root *dom.Node) bool {
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur == root {
			return true
		}
	}
	return false
}

func (l *tickLoop) schedule() {
	l.frameID = l.c.doc.RequestFrame(l.frame)
}

func (l *tickLoop) frame(ts float64) {
	if l.stopped {
		return
	}
	if l.wasConnected && !l.el.Connected() {
		// Disconnection is a dead state: the loop never restarts on
		// reconnection, callers must StartTick again.
		l.c.StopTick(l.el)
		return
	}
	if !l.el.Connected() || (l.ready != nil && !l.ready(l.el)) {
		// Idle frames do not advance the clock, so dt never includes
		// time spent waiting.
		l.schedule()
		return
	}
	l.wasConnected = true

	var dt float64
	if l.hasLast {
		dt = ts - l.lastTS
	}
	l.lastTS = ts
	l.hasLast = true

	// If the handler panics the loop must stay stopped and the panic must
	// reach the frame scheduler's caller.
	done := false
	defer func() {
		if !done {
			l.c.StopTick(l.el)
		}
	}()
	res := l.handler(l.el, l.ctx, dt)
	done = true

	if _, ok := res.(Thenable); ok {
		l.c.StopTick(l.el)
		panic(errors.New("E451"))
	}
	if res != nil {
		l.ctx = res
	}
	l.schedule()
}

// sameFunc compares two func values by reference identity, not code
// pointer, so closures over different state never alias.
func sameFunc(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}
	if av.Kind() != reflect.Func || bv.Kind() != reflect.Func {
		return false
	}
	if av.IsNil() || bv.IsNil() {
		return av.IsNil() && bv.IsNil()
	}
	type iface struct{ typ, data unsafe.Pointer }
	pa := uintptr((*iface)(unsafe.Pointer(&a)).data)
	pb := uintptr((*iface)(unsafe.Pointer(&b)).data)
	return pa == pb
}
