package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trailviz/internal/viz"
)

var (
	dim = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	statusBar = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	pausedBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// renderCanvas colors each braille cell with the last color drawn into it.
// Runs of equal color share one style.
func renderCanvas(c *viz.Canvas) string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Colors[row][col] == c.Colors[row][start] {
				continue
			}
			run := string(c.Grid[row][start:col])
			b.WriteString(lipgloss.NewStyle().Foreground(hex(c.Colors[row][start])).Render(run))
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderStatus(p viz.Palette, line string, paused bool, width int) string {
	s := statusBar.Foreground(lipgloss.Color(p.Text)).Width(width)
	if paused {
		line = strings.Replace(line, "PAUSED", pausedBadge.Render("PAUSED"), 1)
	}
	return s.Render(line)
}
