package sidenav_test

import (
	"testing"

	"sidenav/ui/pan"
	"sidenav/ui/sidenav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type layouts map[string]func() *sidenav.Node

func (l layouts) Inflate(id string) (*sidenav.Node, error) {
	return l[id](), nil
}

type panFixture struct {
	c       *sidenav.Container
	engine  *pan.Engine
	button  *sidenav.Node
	item    *sidenav.Node
	buttonN int
	itemN   int
	starts  int
	ends    int
}

// newPanFixture is an 80x24 container with bounds 4/40, so the main panel
// rests at x=4 and travels 36 cells. Main has a button on row 0, navigation
// an item on row 1.
func newPanFixture(t *testing.T) *panFixture {
	t.Helper()
	f := &panFixture{engine: pan.NewEngine()}

	f.button = sidenav.NewNode("pan", sidenav.KindButton, "Pan")
	f.button.SetOnTap(func(*sidenav.Node) { f.buttonN++ })
	f.item = sidenav.NewNode("site", sidenav.KindItem, "Site")
	f.item.SetOnTap(func(*sidenav.Node) { f.itemN++ })

	opts := sidenav.DefaultOptions()
	opts.LeftPanBound = 4
	opts.RightPanBound = 40
	opts.NavigationLayout = "nav"
	opts.MainLayout = "main"
	opts.Inflater = layouts{
		"nav": func() *sidenav.Node {
			return sidenav.NewNode("nav", sidenav.KindGroup, "").
				Add(sidenav.NewNode("title", sidenav.KindTitle, "Sites"), f.item)
		},
		"main": func() *sidenav.Node {
			return sidenav.NewNode("main", sidenav.KindGroup, "").Add(f.button)
		},
	}

	c, err := sidenav.New(f.engine, opts)
	require.NoError(t, err)
	c.SetOnPanListener(sidenav.PanListener{
		OnPanStart: func() { f.starts++ },
		OnPanEnd:   func() { f.ends++ },
	})
	c.Resize(80, 24)
	f.c = c
	return f
}

func (f *panFixture) send(action sidenav.PointerAction, x, y int) sidenav.Dispatch {
	return f.c.DispatchPointer(sidenav.PointerEvent{Action: action, X: x, Y: y})
}

func (f *panFixture) mainX() int {
	return f.c.VisualFrame(f.c.MainContainer()).X
}

func TestPanEngineBounds(t *testing.T) {
	f := newPanFixture(t)
	assert.Equal(t, 4, f.c.MaxLeftPan())
	assert.Equal(t, 40, f.c.MaxRightPan())
	assert.Equal(t, 4, f.mainX())
	assert.True(t, f.c.IsMainViewVisible())
}

func TestDragPastHalfOpens(t *testing.T) {
	f := newPanFixture(t)

	assert.Equal(t, sidenav.DispatchNone, f.send(sidenav.PointerPress, 10, 5))
	assert.Equal(t, sidenav.DispatchIntercepted, f.send(sidenav.PointerMove, 30, 5))
	assert.True(t, f.engine.Focused())
	assert.Equal(t, 24, f.mainX())

	assert.Equal(t, sidenav.DispatchEngine, f.send(sidenav.PointerRelease, 30, 5))
	assert.False(t, f.engine.Focused())
	assert.True(t, f.c.IsNavigationViewVisible())
	assert.Equal(t, 40, f.mainX())
	assert.Equal(t, 1, f.starts)
	assert.Equal(t, 1, f.ends)
	assert.Nil(t, f.c.Session())
}

func TestShortDragSnapsBack(t *testing.T) {
	f := newPanFixture(t)

	f.send(sidenav.PointerPress, 10, 5)
	f.send(sidenav.PointerMove, 20, 5)
	assert.Equal(t, 14, f.mainX())
	f.send(sidenav.PointerRelease, 20, 5)

	assert.True(t, f.c.IsMainViewVisible())
	assert.Equal(t, 4, f.mainX())
	assert.Equal(t, 1, f.ends)
}

func TestDragIsClampedToTravel(t *testing.T) {
	f := newPanFixture(t)

	f.send(sidenav.PointerPress, 10, 5)
	f.send(sidenav.PointerMove, 79, 5)
	assert.Equal(t, 40, f.mainX())
	f.send(sidenav.PointerMove, 0, 5)
	assert.Equal(t, 4, f.mainX())
}

func TestVerticalDragIsNotClaimed(t *testing.T) {
	f := newPanFixture(t)

	f.send(sidenav.PointerPress, 10, 5)
	assert.Equal(t, sidenav.DispatchNone, f.send(sidenav.PointerMove, 11, 15))
	assert.False(t, f.engine.Focused())
	assert.Equal(t, sidenav.DispatchNone, f.send(sidenav.PointerRelease, 11, 15))
	assert.Equal(t, 0, f.starts)
}

func TestDragFromButtonDoesNotTap(t *testing.T) {
	f := newPanFixture(t)

	assert.Equal(t, sidenav.DispatchDescendant, f.send(sidenav.PointerPress, 6, 0))
	assert.True(t, f.button.Pressed())

	assert.Equal(t, sidenav.DispatchIntercepted, f.send(sidenav.PointerMove, 30, 0))
	assert.False(t, f.button.Pressed())

	assert.Equal(t, sidenav.DispatchEngine, f.send(sidenav.PointerRelease, 30, 0))
	assert.Equal(t, 0, f.buttonN)
	assert.True(t, f.c.IsNavigationViewVisible())
}

func TestTapButton(t *testing.T) {
	f := newPanFixture(t)

	f.send(sidenav.PointerPress, 6, 0)
	assert.Equal(t, sidenav.DispatchDescendant, f.send(sidenav.PointerRelease, 6, 0))
	assert.Equal(t, 1, f.buttonN)
	assert.False(t, f.button.Pressed())
	assert.Equal(t, 0, f.starts)
}

func TestCancelMidDragSnaps(t *testing.T) {
	f := newPanFixture(t)

	f.send(sidenav.PointerPress, 10, 5)
	f.send(sidenav.PointerMove, 15, 5)
	assert.Equal(t, sidenav.DispatchEngine, f.send(sidenav.PointerCancel, 15, 5))

	assert.False(t, f.engine.Focused())
	assert.True(t, f.c.IsMainViewVisible())
	assert.Equal(t, 1, f.ends)
}

func TestShowViewsNotifyOnlyOnChange(t *testing.T) {
	f := newPanFixture(t)

	f.c.ShowMainView()
	assert.Equal(t, 0, f.starts)
	assert.Equal(t, 0, f.ends)

	f.c.ShowNavigationView()
	assert.True(t, f.c.IsNavigationViewVisible())
	assert.Equal(t, 1, f.starts)
	assert.Equal(t, 1, f.ends)

	f.c.ShowNavigationView()
	assert.Equal(t, 1, f.ends)

	f.c.ShowMainView()
	assert.True(t, f.c.IsMainViewVisible())
	assert.Equal(t, 2, f.starts)
	assert.Equal(t, 2, f.ends)
}

func TestOpenNavigationItemTap(t *testing.T) {
	f := newPanFixture(t)
	f.c.ShowNavigationView()

	f.send(sidenav.PointerPress, 10, 1)
	assert.True(t, f.item.Pressed())
	f.send(sidenav.PointerRelease, 10, 1)
	assert.Equal(t, 1, f.itemN)
}

func TestClosedMainAbsorbsNavigationHits(t *testing.T) {
	f := newPanFixture(t)

	assert.Equal(t, sidenav.DispatchNone, f.send(sidenav.PointerPress, 10, 1))
	assert.False(t, f.item.Pressed())
	f.send(sidenav.PointerRelease, 10, 1)
	assert.Equal(t, 0, f.itemN)
}

func TestDragClosesOpenPanel(t *testing.T) {
	f := newPanFixture(t)
	f.c.ShowNavigationView()

	f.send(sidenav.PointerPress, 50, 5)
	f.send(sidenav.PointerMove, 20, 5)
	assert.Equal(t, 10, f.mainX())
	f.send(sidenav.PointerRelease, 20, 5)

	assert.True(t, f.c.IsMainViewVisible())
	assert.Equal(t, 4, f.mainX())
}

func TestResizeKeepsOpenPanelOpen(t *testing.T) {
	f := newPanFixture(t)
	f.c.ShowNavigationView()

	f.c.Resize(100, 24)
	assert.Equal(t, 60, f.c.MaxRightPan())
	assert.Equal(t, 60, f.mainX())
}

func TestVerticalDragOnTallButtonDoesNotTap(t *testing.T) {
	f := newPanFixture(t)
	f.button.Height = 4
	f.c.Layout()

	f.send(sidenav.PointerPress, 6, 0)
	assert.True(t, f.button.Pressed())
	f.send(sidenav.PointerMove, 6, 3)
	assert.False(t, f.engine.Focused(), "vertical drags are not panned")
	assert.False(t, f.button.Pressed())

	f.send(sidenav.PointerRelease, 6, 3)
	assert.Equal(t, 0, f.buttonN)
	assert.True(t, f.c.IsMainViewVisible())
}
