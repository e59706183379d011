package sidenav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedScroll struct {
	down, ev PointerEvent
	dx, dy   int
}

type gestureRecorder struct {
	claim   bool
	downs   []PointerEvent
	scrolls []recordedScroll
	taps    []PointerEvent
}

func (r *gestureRecorder) OnDown(ev PointerEvent) bool {
	r.downs = append(r.downs, ev)
	return false
}

func (r *gestureRecorder) OnScroll(down, ev PointerEvent, dx, dy int) bool {
	r.scrolls = append(r.scrolls, recordedScroll{down: down, ev: ev, dx: dx, dy: dy})
	return r.claim
}

func (r *gestureRecorder) OnSingleTapUp(ev PointerEvent) bool {
	r.taps = append(r.taps, ev)
	return false
}

func TestGestureTap(t *testing.T) {
	r := &gestureRecorder{}
	d := NewGestureDetector(r, 2)

	d.OnPointerEvent(press(5, 5))
	d.OnPointerEvent(move(7, 5))
	assert.False(t, d.Dragging())
	d.OnPointerEvent(release(7, 5))

	assert.Len(t, r.downs, 1)
	assert.Empty(t, r.scrolls)
	assert.Equal(t, []PointerEvent{release(7, 5)}, r.taps)
}

func TestGestureScrollDeltas(t *testing.T) {
	r := &gestureRecorder{claim: true}
	d := NewGestureDetector(r, 1)

	d.OnPointerEvent(press(5, 5))
	assert.True(t, d.OnPointerEvent(move(8, 5)))
	assert.True(t, d.Dragging())
	assert.True(t, d.OnPointerEvent(move(9, 6)))
	assert.False(t, d.OnPointerEvent(release(9, 6)))

	assert.Equal(t, []recordedScroll{
		{down: press(5, 5), ev: move(8, 5), dx: 3, dy: 0},
		{down: press(5, 5), ev: move(9, 6), dx: 1, dy: 1},
	}, r.scrolls)
	assert.Empty(t, r.taps, "a drag is never a tap")
	assert.False(t, d.Dragging())
}

func TestGestureOnceDraggingEveryMoveScrolls(t *testing.T) {
	r := &gestureRecorder{}
	d := NewGestureDetector(r, 1)

	d.OnPointerEvent(press(5, 5))
	d.OnPointerEvent(move(8, 5))
	d.OnPointerEvent(move(8, 5))
	assert.Len(t, r.scrolls, 2)
}

func TestGestureIgnoresMovesWithoutPress(t *testing.T) {
	r := &gestureRecorder{claim: true}
	d := NewGestureDetector(r, 0)

	assert.False(t, d.OnPointerEvent(move(50, 5)))
	assert.False(t, d.OnPointerEvent(release(50, 5)))
	assert.Empty(t, r.scrolls)
	assert.Empty(t, r.taps)
}

func TestGestureCancelResets(t *testing.T) {
	r := &gestureRecorder{}
	d := NewGestureDetector(r, 1)

	d.OnPointerEvent(press(5, 5))
	d.OnPointerEvent(cancel(5, 5))
	d.OnPointerEvent(release(5, 5))
	assert.Empty(t, r.taps)
}

func TestGestureNegativeThreshold(t *testing.T) {
	r := &gestureRecorder{}
	d := NewGestureDetector(r, -3)

	d.OnPointerEvent(press(5, 5))
	d.OnPointerEvent(move(6, 5))
	assert.True(t, d.Dragging())
}
