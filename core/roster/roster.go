// Package roster projects the student collection into the ranked or filtered
// table shown to both roles.
package roster

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/grade"
	"github.com/Jeevana090908/stdgrd/core/student"
)

type Mode string

// View modes
const (
	All      Mode = "all"
	RankHigh Mode = "rank-high"
	Failed   Mode = "failed"
)

var ErrUnknownMode = errors.New("unknown view mode")

func (m Mode) Valid() bool {
	switch m {
	case All, RankHigh, Failed:
		return true
	}
	return false
}

// ParseMode maps a raw mode to a Mode, defaulting to All when empty.
func ParseMode(s string) (Mode, error) {
	s = core.CleanString(s, true)
	if s == "" {
		return All, nil
	}
	if m := Mode(s); m.Valid() {
		return m, nil
	}
	return "", unknownModeErr()
}

func unknownModeErr() error {
	return core.NewValidationError(ErrUnknownMode, core.FieldError{Field: "mode", Error: ErrUnknownMode.Error()})
}

// Row is one line of the table. Rank is the 1-based position in the projection.
type Row struct {
	Rank      int
	Student   student.Student
	Removable bool
}

// Project returns the rows for mode. records is never modified.
func Project(records []student.Student, mode Mode) ([]Row, error) {
	var selected []student.Student

	switch mode {
	case All:
		selected = append(selected, records...)
	case RankHigh:
		selected = append(selected, records...)
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].CGPA.Value() > selected[j].CGPA.Value()
		})
	case Failed:
		for _, s := range records {
			if s.Grade == grade.Fail {
				selected = append(selected, s)
			}
		}
	default:
		return nil, unknownModeErr()
	}

	rows := make([]Row, 0, len(selected))
	for i, s := range selected {
		rows = append(rows, Row{Rank: i + 1, Student: s.Clone()})
	}
	return rows, nil
}
