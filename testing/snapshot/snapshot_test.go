package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello world", want: "hello world"},
		{name: "foreground", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "background and bold", input: "\x1b[1;48;5;236mpanel\x1b[0m", want: "panel"},
		{name: "hyperlink", input: "\x1b]8;;https://go.dev\x1b\\Go\x1b]8;;\x1b\\", want: "Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestFrameGeometry(t *testing.T) {
	f := Parse("short\n\x1b[31mlonger line\x1b[0m\r\n日本")

	assert.Equal(t, 3, f.Height())
	assert.Equal(t, 11, f.Width())
	assert.Equal(t, "longer line", f.Row(1))
	assert.Equal(t, "", f.Row(3))
	assert.Equal(t, "", f.Row(-1))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 1, Lines("nav"))
}

func TestFind(t *testing.T) {
	view := "Sites\n\x1b[1m日本\x1b[0m [ Pan ]"

	x, y, ok := Find(view, "[ Pan ]")
	require.True(t, ok)
	assert.Equal(t, 5, x, "wide runes take two cells")
	assert.Equal(t, 1, y)

	_, _, ok = Find(view, "Unpan")
	assert.False(t, ok)
}

func TestCellAt(t *testing.T) {
	f := Parse("Navi[ Pan ]\n日本x")

	assert.Equal(t, "N", f.CellAt(0, 0))
	assert.Equal(t, "[", f.CellAt(4, 0))
	assert.Equal(t, "日", f.CellAt(1, 1), "second cell of a wide rune")
	assert.Equal(t, "x", f.CellAt(4, 1))
	assert.Equal(t, "", f.CellAt(5, 1))
}

func TestText(t *testing.T) {
	f := Parse("trailing   \n\x1b[31mcolored\x1b[0m\r\n")
	assert.Equal(t, "trailing\ncolored\n", f.Text())
}

func TestAssertions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "panel.golden"), []byte("Sites\n [ Pan ]"), 0644))

	AssertGolden(t, dir, "panel", "\x1b[1mSites\x1b[0m   \n [ Pan ]")
	AssertContains(t, "\x1b[1mSites\x1b[0m", "Sites")
	AssertNotContains(t, "Sites", "Unpan")
}

func TestAssertGoldenUpdate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "golden")
	t.Setenv(UpdateEnvVar, "1")

	AssertGolden(t, dir, "nav", "Sites  \nGo")

	data, err := os.ReadFile(filepath.Join(dir, "nav.golden"))
	require.NoError(t, err)
	assert.Equal(t, "Sites\nGo", string(data))
}
