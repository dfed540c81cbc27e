package dom

import "slices"

type listener struct {
	event string
	fn    func(Event)
}

// ManualWindow is a [Window] whose frames run only when Step is called.
// It is not safe for concurrent use, matching the single-threaded browser loop.
type ManualWindow struct {
	width, height float64

	nextID    int
	frameIDs  []int
	frames    map[int]func(float64)
	listeners []*listener
	now       float64
}

// NewManualWindow creates a window with the given viewport size.
func NewManualWindow(width, height float64) *ManualWindow {
	return &ManualWindow{
		width:  width,
		height: height,
		frames: make(map[int]func(float64)),
	}
}

// InnerSize returns the viewport size.
func (w *ManualWindow) InnerSize() (float64, float64) {
	return w.width, w.height
}

// RequestAnimationFrame queues fn for the next Step.
func (w *ManualWindow) RequestAnimationFrame(fn func(float64)) int {
	w.nextID++
	w.frames[w.nextID] = fn
	w.frameIDs = append(w.frameIDs, w.nextID)
	return w.nextID
}

// CancelAnimationFrame removes a queued callback.
func (w *ManualWindow) CancelAnimationFrame(id int) {
	if _, ok := w.frames[id]; !ok {
		return
	}
	delete(w.frames, id)
	w.frameIDs = slices.DeleteFunc(w.frameIDs, func(x int) bool { return x == id })
}

// AddEventListener registers fn and returns its remover.
func (w *ManualWindow) AddEventListener(event string, fn func(Event)) func() {
	l := &listener{event: event, fn: fn}
	w.listeners = append(w.listeners, l)
	return func() {
		w.listeners = slices.DeleteFunc(w.listeners, func(x *listener) bool { return x == l })
	}
}

// Step runs the callbacks queued before the call, advancing the clock by
// one 60 Hz frame. Callbacks requested during the step run on the next one.
// It returns the number of callbacks run.
func (w *ManualWindow) Step() int {
	w.now += 1000.0 / 60.0
	ids := w.frameIDs
	w.frameIDs = nil
	ran := 0
	for _, id := range ids {
		fn, ok := w.frames[id]
		if !ok {
			continue
		}
		delete(w.frames, id)
		fn(w.now)
		ran++
	}
	return ran
}

// Steps calls Step n times and returns the total number of callbacks run.
func (w *ManualWindow) Steps(n int) int {
	total := 0
	for range n {
		total += w.Step()
	}
	return total
}

// PendingFrames returns the number of queued frame callbacks.
func (w *ManualWindow) PendingFrames() int { return len(w.frameIDs) }

// ListenerCount returns the number of listeners registered for event.
func (w *ManualWindow) ListenerCount(event string) int {
	n := 0
	for _, l := range w.listeners {
		if l.event == event {
			n++
		}
	}
	return n
}

// Dispatch delivers e to every listener registered for e.Type.
func (w *ManualWindow) Dispatch(e Event) {
	for _, l := range slices.Clone(w.listeners) {
		if l.event == e.Type {
			l.fn(e)
		}
	}
}

// MoveMouse dispatches a mousemove event at client coordinates (x, y).
func (w *ManualWindow) MoveMouse(x, y float64) {
	w.Dispatch(Event{Type: EventMouseMove, ClientX: x, ClientY: y})
}

// Resize changes the viewport size and dispatches a resize event.
func (w *ManualWindow) Resize(width, height float64) {
	w.width, w.height = width, height
	w.Dispatch(Event{Type: EventResize})
}
