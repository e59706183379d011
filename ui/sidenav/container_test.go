package sidenav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	e := &fakeEngine{}
	c, err := New(e, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, DefaultPanBound, c.Bounds().Left())
	assert.Equal(t, DefaultPanBound, c.Bounds().Right())
	assert.Nil(t, c.NavigationContainer().Content())
	assert.Nil(t, c.MainContainer().Content())
	assert.Equal(t, RoleNavigation, c.NavigationContainer().Role())
	assert.Equal(t, RoleMain, c.MainContainer().Role())
	assert.Equal(t, 1, e.attached)
	assert.Same(t, c, e.measurer)
	assert.Same(t, e, c.Engine())
}

func TestNewNegativeBoundsUseDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.LeftPanBound = -1
	opts.RightPanBound = -7
	c, err := New(&fakeEngine{}, opts)
	require.NoError(t, err)

	assert.Equal(t, DefaultPanBound, c.Bounds().Left())
	assert.Equal(t, DefaultPanBound, c.Bounds().Right())
}

func TestNewInflatesLayouts(t *testing.T) {
	opts := DefaultOptions()
	opts.NavigationLayout = "nav"
	opts.MainLayout = "main"
	opts.Inflater = mapInflater{
		"nav":  func() *Node { return NewNode("nav", KindGroup, "") },
		"main": func() *Node { return NewNode("main", KindText, "hello") },
	}

	c, err := New(&fakeEngine{}, opts)
	require.NoError(t, err)
	assert.Equal(t, "nav", c.NavigationContainer().Content().ID)
	assert.Equal(t, "hello", c.MainContainer().Content().Text)
}

func TestNewInflationErrors(t *testing.T) {
	t.Run("navigation", func(t *testing.T) {
		opts := DefaultOptions()
		opts.NavigationLayout = "missing"
		opts.Inflater = mapInflater{}

		c, err := New(&fakeEngine{}, opts)
		assert.Nil(t, c)
		require.Error(t, err)
		assert.ErrorIs(t, err, errNoLayout)
		assert.Contains(t, err.Error(), "failed to inflate navigation layout")
	})

	t.Run("main", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MainLayout = "missing"
		opts.Inflater = mapInflater{}

		_, err := New(&fakeEngine{}, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to inflate main layout")
	})

	t.Run("no inflater", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MainLayout = "main"

		_, err := New(&fakeEngine{}, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no inflater for layout "main"`)
	})
}

func TestPanListenerForwarded(t *testing.T) {
	e := &fakeEngine{}
	c := newTestContainer(t, e, 4, 10, 80, 24)

	var starts, ends int
	c.SetOnPanListener(PanListener{
		OnPanStart: func() { starts++ },
		OnPanEnd:   func() { ends++ },
	})

	c.ShowNavigationView()
	assert.True(t, c.IsNavigationViewVisible())
	assert.False(t, c.IsMainViewVisible())
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)

	c.ShowMainView()
	assert.True(t, c.IsMainViewVisible())
	assert.Equal(t, 2, ends)
}

func TestNilPanListenerIsSafe(t *testing.T) {
	c := newTestContainer(t, &fakeEngine{}, 4, 10, 80, 24)
	c.SetOnPanListener(PanListener{})

	assert.NotPanics(t, func() {
		c.ShowNavigationView()
		c.ShowMainView()
	})
}

func TestSetContentLaysOutInCurrentFrame(t *testing.T) {
	c := newTestContainer(t, &fakeEngine{}, 4, 10, 80, 24)

	content := NewNode("root", KindGroup, "").Add(
		NewNode("a", KindText, "a"),
		NewNode("b", KindText, "b"),
	)
	c.MainContainer().SetContent(content)

	b := content.Find("b")
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 76, Height: 1}, b.Rect())
}
