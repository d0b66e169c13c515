package export

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/classkit/internal/roster"
	"github.com/san-kum/classkit/internal/seating"
)

// BlockedMark stands in for a blocked cell in CSV and XLSX output.
const BlockedMark = "#"

type gridDoc struct {
	Rows     int                 `json:"rows"`
	Cols     int                 `json:"cols"`
	FrontRow int                 `json:"frontRow"`
	Blocked  []string            `json:"blockedCells"`
	Seats    [][]*roster.Student `json:"grid"`
}

func GridJSON(w io.Writer, g *seating.Grid) error {
	l := g.Layout()
	doc := gridDoc{
		Rows:     g.Rows,
		Cols:     g.Cols,
		FrontRow: g.FrontRow(),
		Blocked:  make([]string, len(l.Blocked)),
		Seats:    g.Matrix(),
	}
	for i, c := range l.Blocked {
		doc.Blocked[i] = c.String()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// cellText is the name in an occupied cell, BlockedMark for a blocked
// one and "" otherwise.
func cellText(c seating.Cell) string {
	switch c.Kind {
	case seating.Occupied:
		return c.Student.Name
	case seating.Blocked:
		return BlockedMark
	}
	return ""
}

// GridCSV writes one record per grid row, back row first.
func GridCSV(w io.Writer, g *seating.Grid) error {
	cw := csv.NewWriter(w)
	for _, row := range g.Cells {
		rec := make([]string, len(row))
		for c, cell := range row {
			rec[c] = cellText(cell)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const gridSheet = "Klasindeling"

// GridXLSX writes the grid to a single sheet. Column A labels the rows and
// marks the front row; blocked cells are shaded.
func GridXLSX(w io.Writer, g *seating.Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", gridSheet); err != nil {
		return err
	}
	blockedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for r, row := range g.Cells {
		label := ""
		if r == g.FrontRow() {
			label = "front"
		}
		values := make([]interface{}, 0, len(row)+1)
		values = append(values, label)
		for _, cell := range row {
			values = append(values, cellText(cell))
		}
		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(gridSheet, start, &values); err != nil {
			return err
		}
		for c, cell := range row {
			if cell.Kind != seating.Blocked {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+2, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(gridSheet, name, name, blockedStyle); err != nil {
				return err
			}
		}
	}

	if g.Cols > 0 {
		last, err := excelize.ColumnNumberToName(g.Cols + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(gridSheet, "B", last, 18); err != nil {
			return err
		}
	}
	return f.Write(w)
}
