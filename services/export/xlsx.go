// Package exportsvc renders roster projections as spreadsheets.
package exportsvc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Jeevana090908/stdgrd/core/roster"
)

const (
	sheetName   = "Roster"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var header = []string{"Rank", "ID", "Name", "Branch", "Year", "Section", "Total", "CGPA", "Grade"}

const cgpaCol = 8

// Filename is the suggested attachment name for a roster export.
func Filename(mode roster.Mode) string {
	return fmt.Sprintf("roster_%s.xlsx", mode)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// WriteRoster writes rows as a one-sheet workbook to w. Ungraded students
// have empty Total and Grade cells.
func WriteRoster(w io.Writer, mode roster.Mode, rows []roster.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "creating sheet")
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "deleting default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}
	// builtin format 2 is "0.00"
	cgpaStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return errors.Wrap(err, "creating cgpa style")
	}
	_ = f.SetColWidth(sheetName, "C", "C", 24)

	// title
	_ = f.SetCellValue(sheetName, cell(1, 1), fmt.Sprintf("Student roster (%s)", mode))
	_ = f.MergeCell(sheetName, cell(1, 1), cell(len(header), 1))
	_ = f.SetCellStyle(sheetName, cell(1, 1), cell(1, 1), headerStyle)

	// header
	for i, h := range header {
		_ = f.SetCellValue(sheetName, cell(i+1, 2), h)
	}
	_ = f.SetCellStyle(sheetName, cell(1, 2), cell(len(header), 2), headerStyle)

	for i, r := range rows {
		s := r.Student
		values := []interface{}{r.Rank, s.ID, s.Name, s.Branch, s.Year, s.Section, nil, s.CGPA.Value(), s.Grade}
		if s.Total != nil {
			values[6] = *s.Total
		}
		for j, v := range values {
			if v == nil {
				continue
			}
			if err = f.SetCellValue(sheetName, cell(j+1, i+3), v); err != nil {
				return errors.Wrap(err, "writing cell")
			}
		}
	}
	if len(rows) > 0 {
		if err = f.SetCellStyle(sheetName, cell(cgpaCol, 3), cell(cgpaCol, len(rows)+2), cgpaStyle); err != nil {
			return errors.Wrap(err, "styling cgpa column")
		}
	}

	if err = f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
