package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sidenav/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *Node {
	return NewNode("Container").At(0, 0, 80, 24).Add(
		NewNode("Panel").Named("navigation").At(0, 0, 40, 24),
		NewNode("Panel").Named("main").At(4, 0, 76, 24).DrawnAt(16, 0, 76, 24).Add(
			NewNode("button").Named("pan").Labelled("Pan").At(0, 0, 76, 1).Set("pressed", true),
		),
	)
}

func TestDrawnAt(t *testing.T) {
	t.Run("omitted at rest", func(t *testing.T) {
		n := NewNode("Panel").At(4, 0, 76, 24).DrawnAt(4, 0, 76, 24)
		assert.Nil(t, n.Drawn)
	})

	t.Run("recorded when shifted", func(t *testing.T) {
		n := NewNode("Panel").At(4, 0, 76, 24).DrawnAt(20, 0, 76, 24)
		require.NotNil(t, n.Drawn)
		assert.Equal(t, 20, n.Drawn.X)
	})

	t.Run("cleared when back at rest", func(t *testing.T) {
		n := NewNode("Panel").At(4, 0, 76, 24).DrawnAt(20, 0, 76, 24).DrawnAt(4, 0, 76, 24)
		assert.Nil(t, n.Drawn)
	})
}

func TestFind(t *testing.T) {
	root := testTree()

	pan := root.Find("pan")
	require.NotNil(t, pan)
	assert.Equal(t, "Pan", pan.Text)
	assert.Equal(t, true, pan.State["pressed"])
	assert.Nil(t, root.Find("missing"))
}

func TestWithLayoutFits(t *testing.T) {
	s := NewSnapshot().WithLayout(layout.ComputeConstraints(120, 30))

	assert.Equal(t, Size{Width: 120, Height: 30}, s.Terminal)
	assert.Equal(t, "standard", s.Layout.Mode)
	assert.Equal(t, map[string]bool{"full": false, "standard": true, "compact": true}, s.Layout.Fits)
	assert.False(t, s.Layout.TooSmall)
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	s := NewSnapshot().
		WithPan(PanInfo{LeftPanBound: 4, RightPanBound: 40, MaxRightPan: 40, Translation: 12, Focused: true}).
		WithTree(testTree())

	require.NoError(t, WriteSnapshotToPath(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 12, got.Pan.Translation)
	assert.True(t, got.Pan.Focused)
	require.NotNil(t, got.Tree)
	require.NotNil(t, got.Tree.Find("main").Drawn)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is cleaned up")
}

func TestWriteSnapshotToMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "snap.json")
	assert.Error(t, WriteSnapshotToPath(NewSnapshot(), path))
}

func TestWriterSkipsUnchangedFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	w := NewWriter(path)
	assert.Equal(t, path, w.Path())

	s := NewSnapshot().WithPan(PanInfo{Translation: 1})
	require.NoError(t, w.Write(s))
	require.NoError(t, os.Remove(path))

	again := NewSnapshot().WithPan(PanInfo{Translation: 1})
	again.Taken = again.Taken.Add(time.Second)
	require.NoError(t, w.Write(again))
	assert.NoFileExists(t, path)

	changed := NewSnapshot().WithPan(PanInfo{Translation: 2})
	require.NoError(t, w.Write(changed))
	assert.FileExists(t, path)
}

func TestNilWriter(t *testing.T) {
	var w *Writer
	assert.Equal(t, "", w.Path())
	assert.NoError(t, w.Write(NewSnapshot()))
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	assert.Nil(t, FromEnv())

	t.Setenv(EnvVar, "1")
	w := FromEnv()
	require.NotNil(t, w)
	assert.Equal(t, DefaultPath(), w.Path())
}

func TestToText(t *testing.T) {
	s := NewSnapshot().
		WithLayout(layout.ComputeConstraints(80, 24)).
		WithPan(PanInfo{LeftPanBound: 3, RightPanBound: 52, MaxLeftPan: 3, MaxRightPan: 28, Translation: 12}).
		WithTree(testTree())

	text := s.ToText()
	assert.Contains(t, text, "terminal 80x24, mode compact\n")
	assert.Contains(t, text, "bounds left=3 right=52, pan 3..28, translation 12")
	assert.Contains(t, text, "  Panel \"main\" 4,0 76x24 -> 16,0\n")
	assert.Contains(t, text, "    button \"pan\" 0,0 76x1 *pressed*\n")
}
