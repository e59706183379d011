package sidenav

// DefaultDragThreshold is how far, in cells, the pointer may wander from its
// press position before the gesture counts as a drag.
const DefaultDragThreshold = 1

// GestureListener receives gestures recognized from the raw pointer stream.
// A true return claims the event.
type GestureListener interface {
	// OnDown is called on every press.
	OnDown(ev PointerEvent) bool
	// OnScroll is called for every move once the drag threshold is exceeded.
	// dx and dy are the distance moved since the previous event.
	OnScroll(down, ev PointerEvent, dx, dy int) bool
	// OnSingleTapUp is called on a release that never became a drag.
	OnSingleTapUp(ev PointerEvent) bool
}

// GestureDetector turns a single-pointer press/move/release stream into
// down, scroll and tap gestures. Long presses are not detected.
type GestureDetector struct {
	listener  GestureListener
	threshold int

	tracking bool
	dragging bool
	down     PointerEvent
	last     PointerEvent
}

// NewGestureDetector creates a detector that reports to listener.
func NewGestureDetector(listener GestureListener, threshold int) *GestureDetector {
	if threshold < 0 {
		threshold = 0
	}
	return &GestureDetector{listener: listener, threshold: threshold}
}

// Dragging reports whether the current sequence has passed the threshold.
func (d *GestureDetector) Dragging() bool {
	return d.dragging
}

// OnPointerEvent feeds one event and reports whether the listener claimed it.
func (d *GestureDetector) OnPointerEvent(ev PointerEvent) bool {
	switch ev.Action {
	case PointerPress:
		d.tracking = true
		d.dragging = false
		d.down = ev
		d.last = ev
		return d.listener.OnDown(ev)

	case PointerMove:
		if !d.tracking {
			return false
		}
		if !d.dragging && !d.exceedsThreshold(ev) {
			return false
		}
		d.dragging = true
		dx, dy := ev.X-d.last.X, ev.Y-d.last.Y
		d.last = ev
		return d.listener.OnScroll(d.down, ev, dx, dy)

	case PointerRelease:
		wasTap := d.tracking && !d.dragging
		d.reset()
		if wasTap {
			return d.listener.OnSingleTapUp(ev)
		}
		return false

	case PointerCancel:
		d.reset()
	}
	return false
}

func (d *GestureDetector) reset() {
	d.tracking = false
	d.dragging = false
}

func (d *GestureDetector) exceedsThreshold(ev PointerEvent) bool {
	return abs(ev.X-d.down.X) > d.threshold || abs(ev.Y-d.down.Y) > d.threshold
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
