package student

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/grade"
)

// CGPA is stored as a numeric string to keep trailing zeros ("8.40").
type CGPA string

// Unrated is the CGPA of a self-signed-up Student, stored as a bare 0.
const Unrated CGPA = "0"

func (c CGPA) MarshalJSON() ([]byte, error) {
	if c == Unrated {
		return []byte("0"), nil
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON also accepts bare numbers, as written by self-signup (`"cgpa": 0`).
func (c *CGPA) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = CGPA(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cgpa: expected string or number, got %s", data)
	}
	*c = CGPA(n.String())
	return nil
}

// Value is the numeric value of the CGPA; unparsable values count as 0.
func (c CGPA) Value() float64 {
	v, err := strconv.ParseFloat(string(c), 64)
	if err != nil {
		return 0
	}
	return v
}

type Student struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Branch  string              `json:"branch"`
	Year    string              `json:"year,omitempty"`
	Section string              `json:"section,omitempty"`
	Pass    string              `json:"pass"`
	Marks   []grade.SubjectMark `json:"marks"`
	Total   *float64            `json:"total,omitempty"`
	CGPA    CGPA                `json:"cgpa"`
	Grade   string              `json:"grade,omitempty"`
}

// Clone returns a deep copy of the Student.
func (s Student) Clone() Student {
	c := s
	if s.Marks != nil {
		c.Marks = make([]grade.SubjectMark, len(s.Marks))
		copy(c.Marks, s.Marks)
	}
	if s.Total != nil {
		total := *s.Total
		c.Total = &total
	}
	return c
}

func (s Student) HasMarks() bool { return len(s.Marks) > 0 }

func (s Student) Failed() bool { return s.Grade == grade.Fail }

// NewStudent contains what a teacher enters to add or re-grade a Student.
type NewStudent struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required,personname"`
	Branch   string    `json:"branch"`
	Year     string    `json:"year"`
	Section  string    `json:"section"`
	Marks    []float64 `json:"marks"`
	Subjects []string  `json:"subjects"` // optional labels, "Subject N" by default
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	return validate.Struct(ns)
}

// subjectMarks labels the raw marks in entry order.
func (ns NewStudent) subjectMarks() []grade.SubjectMark {
	marks := make([]grade.SubjectMark, 0, len(ns.Marks))
	for i, m := range ns.Marks {
		label := fmt.Sprintf("Subject %d", i+1)
		if i < len(ns.Subjects) {
			if s := core.CleanString(ns.Subjects[i]); s != "" {
				label = s
			}
		}
		marks = append(marks, grade.SubjectMark{Subject: label, Mark: m})
	}
	return marks
}

// Signup contains what a student enters to register themselves.
type Signup struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required,personname"`
	Password string `json:"password" validate:"required"`
}

func (su *Signup) Validate(validate *validator.Validate) error {
	return validate.Struct(su)
}
