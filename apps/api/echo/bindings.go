package echoapi

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Jeevana090908/stdgrd/core/student"
)

// leading decimal number of a raw mark, eg. "42abc" -> "42", " .5" -> ".5"
var markPrefixRegex = regexp.MustCompile(`^\s*[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// RawMark is a mark as typed in a form. Numbers are taken as is; strings are
// read up to the first character that cannot continue a decimal number.
// Anything unreadable, empty or non-finite counts as 0.
type RawMark float64

func (m *RawMark) UnmarshalJSON(data []byte) error {
	*m = 0
	data = bytes.TrimSpace(data)

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = RawMark(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil // null, booleans, objects
	}
	*m = RawMark(parseMark(s))
	return nil
}

func parseMark(s string) float64 {
	prefix := markPrefixRegex.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(prefix), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// StudentForm is the body of an add or edit request.
type StudentForm struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Branch   string    `json:"branch"`
	Year     string    `json:"year"`
	Section  string    `json:"section"`
	Marks    []RawMark `json:"marks"`
	Subjects []string  `json:"subjects"`
}

func (f StudentForm) NewStudent() student.NewStudent {
	marks := make([]float64, 0, len(f.Marks))
	for _, m := range f.Marks {
		marks = append(marks, float64(m))
	}
	return student.NewStudent{
		ID:       f.ID,
		Name:     f.Name,
		Branch:   f.Branch,
		Year:     f.Year,
		Section:  f.Section,
		Marks:    marks,
		Subjects: f.Subjects,
	}
}
