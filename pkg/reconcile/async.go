package reconcile

// Thenable is the future shape the event bridge understands. An event
// handler may return a Thenable instead of an immediate result; the bridge
// subscribes to it and finishes the event when it resolves. Tick handlers
// must not return one.
type Thenable interface {
	// Then registers fn to run with the resolved value. If the value is
	// already resolved, fn runs immediately.
	Then(fn func(v any))
}

// Future is a single-assignment Thenable. Like the rest of the engine it
// is confined to the document's goroutine: Resolve and Then must be called
// from there.
type Future struct {
	done bool
	val  any
	subs []func(any)
}

// NewFuture creates an unresolved future.
func NewFuture() *Future {
	return &Future{}
}

// Resolve sets the future's value and runs the subscribers. Resolving
// twice is a no-op.
func (f *Future) Resolve(v any) {
	if f.done {
		return
	}
	f.done = true
	f.val = v
	subs := f.subs
	f.subs = nil
	for _, fn := range subs {
		fn(v)
	}
}

// Then implements Thenable.
func (f *Future) Then(fn func(v any)) {
	if f.done {
		fn(f.val)
		return
	}
	f.subs = append(f.subs, fn)
}
