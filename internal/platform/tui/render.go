package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgrid/ledarcade/internal/core"
)

// Each pixel renders as two spaces so the matrix is roughly square in
// terminal cells.
const cellWidth = 2

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginLeft(1)

	// Style cache keyed by color; the palette is small and stable.
	styleCache = make(map[core.RGB]lipgloss.Style)
)

func cellStyle(c core.RGB) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	s := lipgloss.NewStyle().Background(lipgloss.Color(hex))
	styleCache[c] = s
	return s
}

// RenderFrame converts an LED frame (serpentine order) to a styled
// string, one background-colored block per pixel. Runs of equal color
// share one escape sequence.
func RenderFrame(frame []core.RGB) string {
	var sb strings.Builder
	sb.Grow(core.NumLEDs * 16)

	for y := 0; y < core.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < core.Width {
			start := pixelAt(frame, x, y)
			run := 0
			for x < core.Width && pixelAt(frame, x, y) == start {
				run++
				x++
			}
			sb.WriteString(cellStyle(start).Render(strings.Repeat(" ", run*cellWidth)))
		}
	}
	return sb.String()
}

func pixelAt(frame []core.RGB, x, y int) core.RGB {
	idx, ok := core.Index(x, y)
	if !ok || idx >= len(frame) {
		return core.Black
	}
	return frame[idx]
}
