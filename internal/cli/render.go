package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/puzzlecube/puzzlecube"
)

// tileStyles maps each tile colour to its terminal style.
var tileStyles = map[puzzlecube.Colour]lipgloss.Style{
	puzzlecube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	puzzlecube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	puzzlecube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	puzzlecube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	puzzlecube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	puzzlecube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// renderCube draws the cube as a coloured unfolded net: Up indented, then
// Left/Front/Right/Back side by side, then Down indented. It reads cube
// state only through the query API.
func renderCube(c *puzzlecube.Cube) string {
	var b strings.Builder
	n := c.SideLength()
	indent := strings.Repeat("  ", n)

	writeIndented := func(face puzzlecube.Face) {
		side := c.Side(face)
		for row := 0; row < n; row++ {
			b.WriteString(indent)
			writeStyledRow(&b, side[row])
			b.WriteByte('\n')
		}
	}

	writeIndented(puzzlecube.Up)
	for row := 0; row < n; row++ {
		for i, face := range []puzzlecube.Face{puzzlecube.Left, puzzlecube.Front, puzzlecube.Right, puzzlecube.Back} {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeStyledRow(&b, c.Side(face)[row])
		}
		b.WriteByte('\n')
	}
	writeIndented(puzzlecube.Down)

	return b.String()
}

func writeStyledRow(b *strings.Builder, row []puzzlecube.Tile) {
	for i, t := range row {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tileStyles[t.Colour].Render(string(t.Glyph())))
	}
}
