package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/roster"
)

type groupDoc struct {
	Group    int              `json:"group"`
	Students []roster.Student `json:"students"`
}

func GroupsJSON(w io.Writer, groups []grouping.Group) error {
	docs := make([]groupDoc, len(groups))
	for i, g := range groups {
		docs[i] = groupDoc{Group: i + 1, Students: append([]roster.Student{}, g...)}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(docs)
}

// GroupsCSV writes a "group,name" header and one record per student.
// Groups are numbered from 1.
func GroupsCSV(w io.Writer, groups []grouping.Group) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"group", "name"}); err != nil {
		return err
	}
	for i, g := range groups {
		for _, s := range g {
			if err := cw.Write([]string{strconv.Itoa(i + 1), s.Name}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

const groupsSheet = "Groepjes"

// GroupsXLSX writes one column per group with a "Group n" header.
func GroupsXLSX(w io.Writer, groups []grouping.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", groupsSheet); err != nil {
		return err
	}
	for i, g := range groups {
		col := make([]interface{}, 0, len(g)+1)
		col = append(col, fmt.Sprintf("Group %d", i+1))
		for _, s := range g {
			col = append(col, s.Name)
		}
		start, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetSheetCol(groupsSheet, start, &col); err != nil {
			return err
		}
	}
	return f.Write(w)
}
