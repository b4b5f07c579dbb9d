package dom

// Event is a synthetic DOM event. Events are dispatched at a target node
// and bubble to the document root unless stopped.
type Event struct {
	// Type is the event name without the "on" prefix, e.g. "click".
	Type string
	// Target is the node the event was dispatched at. DispatchEvent fills
	// it in when left nil.
	Target *Node

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault cancels the event's default action.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from bubbling further.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// TargetValue returns the string value property of the event target, which
// is what input and change handlers usually want.
func (e *Event) TargetValue() string {
	if e.Target == nil {
		return ""
	}
	if s, ok := e.Target.Property("value").(string); ok {
		return s
	}
	return ""
}
