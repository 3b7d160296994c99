package echoapi

import (
	"github.com/Jeevana090908/stdgrd/core/grade"
	"github.com/Jeevana090908/stdgrd/core/gradebook"
	"github.com/Jeevana090908/stdgrd/core/roster"
	"github.com/Jeevana090908/stdgrd/core/student"
)

type SuccessResponse struct {
	Success string `json:"success"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// StudentResponse is a Student without its password.
type StudentResponse struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Branch  string              `json:"branch"`
	Year    string              `json:"year,omitempty"`
	Section string              `json:"section,omitempty"`
	Marks   []grade.SubjectMark `json:"marks"`
	Total   *float64            `json:"total,omitempty"`
	CGPA    string              `json:"cgpa"`
	Grade   string              `json:"grade,omitempty"`
}

func newStudentResponse(s student.Student) StudentResponse {
	marks := s.Marks
	if marks == nil {
		marks = []grade.SubjectMark{}
	}
	return StudentResponse{
		ID:      s.ID,
		Name:    s.Name,
		Branch:  s.Branch,
		Year:    s.Year,
		Section: s.Section,
		Marks:   marks,
		Total:   s.Total,
		CGPA:    string(s.CGPA),
		Grade:   s.Grade,
	}
}

type RowResponse struct {
	Rank      int             `json:"rank"`
	Removable bool            `json:"removable"`
	Student   StudentResponse `json:"student"`
}

func newRowResponses(rows []roster.Row) []RowResponse {
	res := make([]RowResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, RowResponse{Rank: r.Rank, Removable: r.Removable, Student: newStudentResponse(r.Student)})
	}
	return res
}

type SubjectResultResponse struct {
	Subject string  `json:"subject"`
	Mark    float64 `json:"mark"`
	Result  string  `json:"result"` // Pass | Fail
}

type SummaryResponse struct {
	Total float64 `json:"total"`
	CGPA  string  `json:"cgpa"`
	Grade string  `json:"grade"`
}

type DashboardResponse struct {
	Role     string                  `json:"role"`
	Teacher  string                  `json:"teacher,omitempty"`
	Student  *StudentResponse        `json:"student,omitempty"`
	Subjects []SubjectResultResponse `json:"subjects,omitempty"`
	Summary  *SummaryResponse        `json:"summary,omitempty"`
	Message  string                  `json:"message,omitempty"`
}

const noMarksMessage = "No marks added yet by teacher."

func newDashboardResponse(d gradebook.Dashboard) DashboardResponse {
	res := DashboardResponse{Role: string(d.Role), Teacher: d.Teacher}
	if d.Student == nil {
		return res
	}

	st := newStudentResponse(*d.Student)
	res.Student = &st
	if !d.Graded {
		res.Message = noMarksMessage
		return res
	}

	res.Subjects = make([]SubjectResultResponse, 0, len(d.Subjects))
	for _, s := range d.Subjects {
		result := grade.Fail
		if s.Passed {
			result = "Pass"
		}
		res.Subjects = append(res.Subjects, SubjectResultResponse{Subject: s.Subject, Mark: s.Mark, Result: result})
	}
	total, cgpa, grd := d.Summary()
	res.Summary = &SummaryResponse{Total: total, CGPA: cgpa, Grade: grd}
	return res
}
