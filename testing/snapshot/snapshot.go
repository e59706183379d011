// Package snapshot reads rendered frames back as a grid of cells, so tests
// can ask what is drawn where, and compares frames against golden files.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

// GoldenDir is where golden files live, relative to the test's package.
const GoldenDir = "testdata/golden"

// UpdateEnvVar rewrites golden files instead of comparing when set to "1".
const UpdateEnvVar = "UPDATE_GOLDEN"

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// StripANSI removes color and hyperlink escapes.
func StripANSI(s string) string {
	return oscRegex.ReplaceAllString(csiRegex.ReplaceAllString(s, ""), "")
}

// Frame is a rendered view split into rows.
type Frame struct {
	raw  []string
	rows []string
}

// Parse splits a view into a frame.
func Parse(view string) Frame {
	raw := strings.Split(strings.ReplaceAll(view, "\r\n", "\n"), "\n")
	rows := make([]string, len(raw))
	for i, line := range raw {
		rows[i] = StripANSI(line)
	}
	return Frame{raw: raw, rows: rows}
}

// Height is the number of rows.
func (f Frame) Height() int {
	return len(f.rows)
}

// Width is the widest row in cells.
func (f Frame) Width() int {
	w := 0
	for _, line := range f.raw {
		w = max(w, ansi.PrintableRuneWidth(line))
	}
	return w
}

// Row returns row y without escapes, or "" when out of range.
func (f Frame) Row(y int) string {
	if y < 0 || y >= len(f.rows) {
		return ""
	}
	return f.rows[y]
}

// Find returns the cell of the first occurrence of substr.
func (f Frame) Find(substr string) (x, y int, ok bool) {
	for y, row := range f.rows {
		if i := strings.Index(row, substr); i >= 0 {
			return runewidth.StringWidth(row[:i]), y, true
		}
	}
	return 0, 0, false
}

// CellAt returns the character covering cell (x, y), or "" past the end
// of the row.
func (f Frame) CellAt(x, y int) string {
	col := 0
	for _, r := range f.Row(y) {
		w := runewidth.RuneWidth(r)
		if x >= col && x < col+max(w, 1) {
			return string(r)
		}
		col += w
	}
	return ""
}

// Text is the frame without escapes or trailing blanks, as stored in
// golden files.
func (f Frame) Text() string {
	out := make([]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = strings.TrimRight(row, " \t")
	}
	return strings.Join(out, "\n")
}

// Lines returns the number of rows in a view.
func Lines(view string) int {
	return Parse(view).Height()
}

// Width returns the widest row of a view in cells.
func Width(view string) int {
	return Parse(view).Width()
}

// Row returns row y of a view without escapes.
func Row(view string, y int) string {
	return Parse(view).Row(y)
}

// Find returns the cell of the first occurrence of substr in a view.
func Find(view, substr string) (x, y int, ok bool) {
	return Parse(view).Find(substr)
}

// AssertContains fails t unless the view's text contains substr.
func AssertContains(t testing.TB, view, substr string) {
	t.Helper()
	if text := Parse(view).Text(); !strings.Contains(text, substr) {
		t.Errorf("frame does not contain %q:\n%s", substr, text)
	}
}

// AssertNotContains fails t if the view's text contains substr.
func AssertNotContains(t testing.TB, view, substr string) {
	t.Helper()
	if text := Parse(view).Text(); strings.Contains(text, substr) {
		t.Errorf("frame unexpectedly contains %q:\n%s", substr, text)
	}
}

// AssertGolden compares the view with dir/name.golden. With
// UPDATE_GOLDEN=1 the file is written instead.
func AssertGolden(t testing.TB, dir, name, view string) {
	t.Helper()
	path := filepath.Join(dir, name+".golden")
	text := Parse(view).Text()

	if os.Getenv(UpdateEnvVar) == "1" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			t.Fatalf("failed to write golden file: %v", err)
		}
		t.Logf("updated %s", path)
		return
	}

	want, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("missing golden file %s; run with %s=1 to create it. Frame:\n%s", path, UpdateEnvVar, text)
	}
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	if string(want) != text {
		t.Errorf("frame %s differs from golden file\nwant:\n%s\n\ngot:\n%s", name, want, text)
	}
}
