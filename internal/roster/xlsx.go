package roster

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet columns, after a header row: name, gender, disruptive,
// front row. Only the name is required.
const (
	colName = iota
	colGender
	colDisruptive
	colFrontRow
)

// ImportXLSX reads students from the first sheet of a workbook and
// appends them. Rows without a name are skipped.
func (r *Roster) ImportXLSX(file io.Reader) ([]Student, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("roster: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("roster: read sheet %s: %w", sheet, err)
	}

	var added []Student
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := strings.TrimSpace(cell(row, colName))
		if name == "" {
			continue
		}
		s := Student{
			ID:         r.ids.next(),
			Name:       name,
			Gender:     ParseGender(cell(row, colGender)),
			Disruptive: truthy(cell(row, colDisruptive)),
			FrontRow:   truthy(cell(row, colFrontRow)),
		}
		r.students = append(r.students, s)
		added = append(added, s)
	}
	return added, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "x", "ja", "j", "yes", "y", "true":
		return true
	}
	return false
}
