package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/classkit/internal/seating"
)

const (
	DefaultCellWidth  = 120
	DefaultCellHeight = 48
)

var svgFill = map[seating.CellKind]string{
	seating.Empty:    "#f5f5f5",
	seating.Blocked:  "#9e9e9e",
	seating.Occupied: "#ffffff",
}

// GridSVG draws one rect per cell with the student's name centred in it.
// The front row is drawn at the bottom, above a "front" caption.
func GridSVG(g *seating.Grid, cellW, cellH int) string {
	if g == nil || g.Rows == 0 || g.Cols == 0 {
		return ""
	}
	pad := 8
	caption := 24
	width := g.Cols*cellW + 2*pad
	height := g.Rows*cellH + 2*pad + caption

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g font-family="sans-serif" font-size="14" text-anchor="middle">
`, width, height, width, height))

	for r, row := range g.Cells {
		for c, cell := range row {
			x := pad + c*cellW
			y := pad + r*cellH
			stroke := "#424242"
			if cell.Kind == seating.Occupied && cell.Student.Disruptive {
				stroke = "#c62828"
			} else if cell.Kind == seating.Occupied && cell.Student.FrontRow {
				stroke = "#1565c0"
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="%s" stroke="%s"/>
`, x+2, y+2, cellW-4, cellH-4, svgFill[cell.Kind], stroke))
			if cell.Kind == seating.Occupied {
				sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d">%s</text>
`, x+cellW/2, y+cellH/2+5, html.EscapeString(cell.Student.Name)))
			}
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#616161">front</text>
`, width/2, height-pad))
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
