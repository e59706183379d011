package sidenav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"

	"sidenav/log"
	"sidenav/ui"
)

const ellipsis = "…"

// View renders the container at its measured size. The navigation panel is
// drawn up to the main panel's visual left edge and the main panel fills the
// rest; other panels paint over rows where they have content.
func (c *Container) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	navRows, _ := c.renderPanel(c.navigation, ui.PanelStyles.Navigation)
	mainRows, _ := c.renderPanel(c.main, ui.PanelStyles.Main)

	split := clamp(c.VisualFrame(c.main).X, 0, c.width)

	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = fit(rowAt(navRows, y), split) + fit(rowAt(mainRows, y), c.width-split)
	}

	for _, s := range c.slots {
		if s.role != RoleOther {
			continue
		}
		otherRows, used := c.renderPanel(s.panel, lipgloss.NewStyle())
		for y := range rows {
			if y < len(used) && used[y] {
				rows[y] = fit(otherRows[y], c.width)
			}
		}
	}

	log.RenderTrace("container", "split=%d translation=%d", split, c.engine.Translation())
	return strings.Join(rows, "\n")
}

// renderPanel draws a panel's content into rows of its measured width. used
// marks the rows covered by a drawn node.
func (c *Container) renderPanel(p *Panel, bg lipgloss.Style) ([]string, []bool) {
	defer log.Profiler().TimePanel(p.role.String())()

	width := p.measuredWidth
	if width < 0 {
		width = 0
	}
	height := p.measuredHeight
	if height < 0 {
		height = 0
	}

	blank := bg.Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	used := make([]bool, height)
	for y := range rows {
		rows[y] = blank
	}
	if p.content == nil || width == 0 {
		return rows, used
	}

	p.content.Walk(func(n *Node) bool {
		if n.Kind == KindGroup {
			return true
		}
		r := n.rect
		for y := r.Y; y < r.Y+r.Height && y < height; y++ {
			if y < 0 {
				continue
			}
			used[y] = true
			if y == r.Y {
				rows[y] = renderNode(n, width, bg)
			}
		}
		return true
	})
	return rows, used
}

func renderNode(n *Node, width int, bg lipgloss.Style) string {
	style := ui.NodeStyles.Text
	label := n.Text
	switch n.Kind {
	case KindTitle:
		style = ui.NodeStyles.Title
	case KindButton:
		style = ui.NodeStyles.Button
		label = "[ " + label + " ]"
	case KindItem:
		style = ui.NodeStyles.Item
		label = " " + label
	}
	if n.pressed {
		style = ui.NodeStyles.Pressed
	} else {
		style = style.Inherit(bg)
	}

	label = runewidth.Truncate(label, width, ellipsis)
	pad := width - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	return style.Render(label) + bg.Render(strings.Repeat(" ", pad))
}

// fit cuts or pads an ANSI-styled row to exactly width cells.
func fit(row string, width int) string {
	if width <= 0 {
		return ""
	}
	row = truncate.String(row, uint(width))
	if w := ansi.PrintableRuneWidth(row); w < width {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

func rowAt(rows []string, y int) string {
	if y < len(rows) {
		return rows[y]
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
