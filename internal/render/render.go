// Package render produces drawable snapshots of a cube state: the raw
// per-piece records a rendering collaborator consumes, and a colored
// terminal net for CLI display.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rowanmaddox/twistcube"
)

// PieceRecord is one drawable piece: its centered lattice position and
// the sticker color on each of its six faces. This is the complete
// interface between the cube model and any renderer; transient visual
// flags (selection, grab, tween progress) stay on the presentation
// side.
type PieceRecord struct {
	Position [3]int
	Colors   [6]twistcube.Color
}

// Snapshot flattens the cube into 26 piece records.
func Snapshot(c *twistcube.Cube) []PieceRecord {
	records := make([]PieceRecord, 0, twistcube.NumPieces)
	for _, p := range c.Pieces {
		records = append(records, PieceRecord{
			Position: [3]int{
				twistcube.LayerOf(p.Pos, twistcube.AxisX),
				twistcube.LayerOf(p.Pos, twistcube.AxisY),
				twistcube.LayerOf(p.Pos, twistcube.AxisZ),
			},
			Colors: p.Colors,
		})
	}
	return records
}

// Styles
var stickerStyles = map[twistcube.Color]lipgloss.Style{
	twistcube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	twistcube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("232")),
	twistcube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("232")),
	twistcube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	twistcube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	twistcube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
}

const dim = 3

// Net renders the cube as a colored unfolded net: top, then
// left/front/right/back, then bottom. Each sticker is a two-cell block
// in its face color.
func Net(c *twistcube.Cube) string {
	var b strings.Builder

	pad := strings.Repeat(" ", dim*2+1)
	for row := 0; row < dim; row++ {
		b.WriteString(pad)
		writeRow(&b, c, twistcube.FaceTop, row)
		b.WriteString("\n")
	}
	for row := 0; row < dim; row++ {
		for _, f := range []twistcube.FaceLabel{
			twistcube.FaceLeft, twistcube.FaceFront,
			twistcube.FaceRight, twistcube.FaceBack,
		} {
			writeRow(&b, c, f, row)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < dim; row++ {
		b.WriteString(pad)
		writeRow(&b, c, twistcube.FaceBottom, row)
		b.WriteString("\n")
	}

	return b.String()
}

func writeRow(b *strings.Builder, c *twistcube.Cube, f twistcube.FaceLabel, row int) {
	for col := 0; col < dim; col++ {
		color := c.StickerAt(f, row, col)
		style, ok := stickerStyles[color]
		if !ok {
			b.WriteString("  ")
			continue
		}
		b.WriteString(style.Render(color.String() + " "))
	}
}
