package dom

// frameCallback pairs a frame handle with its callback.
type frameCallback struct {
	id int
	fn func(ts float64)
}

// RequestFrame schedules fn to run on the next Step and returns a handle
// that can cancel it.
func (d *Document) RequestFrame(fn func(ts float64)) int {
	id := d.nextFrame
	d.nextFrame++
	d.frames = append(d.frames, frameCallback{id: id, fn: fn})
	return id
}

// CancelFrame drops a pending frame callback. Unknown handles are ignored.
func (d *Document) CancelFrame(id int) {
	for i, f := range d.frames {
		if f.id == id {
			d.frames = append(d.frames[:i], d.frames[i+1:]...)
			return
		}
	}
}

// PendingFrames returns the number of callbacks waiting for the next Step.
func (d *Document) PendingFrames() int { return len(d.frames) }

// Step advances the frame clock to ts and runs every callback that was
// pending when Step was called. Callbacks scheduled during Step run on the
// following Step, matching requestAnimationFrame semantics. A panicking
// callback propagates to the caller; the remaining callbacks of that batch
// are dropped with it.
func (d *Document) Step(ts float64) {
	batch := d.frames
	d.frames = nil
	for _, f := range batch {
		f.fn(ts)
	}
}
