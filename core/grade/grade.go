// Package grade derives the aggregate metrics of a set of subject marks.
package grade

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Grades
const (
	A    = "A"
	B    = "B"
	C    = "C"
	D    = "D"
	F    = "F" // never produced by Compute; kept as the fallback literal
	Fail = "Fail"
)

const (
	// PassMark is the lowest mark a subject can get without failing the whole record.
	PassMark = 35

	maxSubjectMark = 100
	cgpaDivisor    = 9.5
)

// SubjectMark is the mark obtained in one subject.
type SubjectMark struct {
	Subject string  `json:"subject"`
	Mark    float64 `json:"mark"`
}

func (m SubjectMark) Passed() bool { return m.Mark >= PassMark }

// Result holds the metrics derived from one Compute call.
// They are only consistent with each other when produced together.
type Result struct {
	Total      float64
	Percentage float64
	CGPA       string
	Grade      string
}

// Graded reports whether the Result was computed from at least one mark.
func (r Result) Graded() bool { return r.Grade != "" }

// Compute sums the marks and derives percentage, CGPA and letter grade.
// An empty slice of marks yields an ungraded Result (zero total, "0.00" CGPA, no grade).
func Compute(marks []SubjectMark) Result {
	if len(marks) == 0 {
		return Result{CGPA: FormatCGPA(0)}
	}

	var (
		total   float64
		hasFail bool
	)
	for _, m := range marks {
		total += m.Mark
		if !m.Passed() {
			hasFail = true
		}
	}

	maxTotal := float64(len(marks) * maxSubjectMark)
	percentage := (total / maxTotal) * 100

	return Result{
		Total:      total,
		Percentage: percentage,
		CGPA:       FormatCGPA(percentage / cgpaDivisor),
		Grade:      letter(percentage, hasFail),
	}
}

func letter(percentage float64, hasFail bool) string {
	grade := F
	if hasFail {
		return Fail
	}
	switch {
	case percentage >= 80:
		grade = A
	case percentage >= 60:
		grade = B
	case percentage >= 50:
		grade = C
	default:
		grade = D // pass but low
	}
	return grade
}

// FormatCGPA renders a score with exactly 2 decimals. Values exactly halfway
// between two cents round away from zero (1.125 -> "1.13"); everything else
// rounds to the nearest cent of its exact binary value (2.675 -> "2.67").
func FormatCGPA(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	cents := new(big.Float).SetPrec(128).SetFloat64(math.Abs(v))
	cents.Mul(cents, big.NewFloat(100))
	whole, _ := cents.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(cents, new(big.Float).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	whole.Add(whole, big.NewInt(1))
	units, rest := new(big.Int).QuoRem(whole, big.NewInt(100), new(big.Int))
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, units, rest.Int64())
}
