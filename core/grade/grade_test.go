package grade

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func marksOf(values ...float64) []SubjectMark {
	marks := make([]SubjectMark, 0, len(values))
	for i, v := range values {
		marks = append(marks, SubjectMark{Subject: fmt.Sprintf("Subject %d", i+1), Mark: v})
	}
	return marks
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		marks []SubjectMark
		want  Result
	}{
		{
			name:  "A grade",
			marks: marksOf(80, 90, 70),
			want:  Result{Total: 240, Percentage: 80, CGPA: "8.42", Grade: A},
		},
		{
			name:  "one failed subject dominates",
			marks: marksOf(30, 90, 90),
			want:  Result{Total: 210, Percentage: 70, CGPA: "7.37", Grade: Fail},
		},
		{
			name:  "B grade",
			marks: marksOf(60, 60),
			want:  Result{Total: 120, Percentage: 60, CGPA: "6.32", Grade: B},
		},
		{
			name:  "C grade",
			marks: marksOf(50, 55),
			want:  Result{Total: 105, Percentage: 52.5, CGPA: "5.53", Grade: C},
		},
		{
			name:  "D grade",
			marks: marksOf(35, 40),
			want:  Result{Total: 75, Percentage: 37.5, CGPA: "3.95", Grade: D},
		},
		{
			name:  "exactly the pass mark",
			marks: marksOf(35),
			want:  Result{Total: 35, Percentage: 35, CGPA: "3.68", Grade: D},
		},
		{
			name:  "marks above 100 are not clamped",
			marks: marksOf(150, 100),
			want:  Result{Total: 250, Percentage: 125, CGPA: "13.16", Grade: A},
		},
		{
			name:  "negative mark fails",
			marks: marksOf(-5, 100),
			want:  Result{Total: 95, Percentage: 47.5, CGPA: "5.00", Grade: Fail},
		},
		{
			name:  "perfect",
			marks: marksOf(100, 100, 100, 100),
			want:  Result{Total: 400, Percentage: 100, CGPA: "10.53", Grade: A},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.marks)
			assert.Equal(t, tt.want.Total, got.Total)
			assert.InDelta(t, tt.want.Percentage, got.Percentage, 1e-9)
			assert.Equal(t, tt.want.CGPA, got.CGPA)
			assert.Equal(t, tt.want.Grade, got.Grade)
			assert.True(t, got.Graded())
		})
	}
}

func TestCompute_empty(t *testing.T) {
	for _, marks := range [][]SubjectMark{nil, {}} {
		got := Compute(marks)
		assert.Equal(t, Result{CGPA: "0.00"}, got)
		assert.False(t, got.Graded())
		assert.False(t, math.IsNaN(got.Percentage))
	}
}

func TestCompute_failIffAnyMarkBelowPassMark(t *testing.T) {
	sets := [][]float64{
		{35, 35, 35},
		{34.99, 100, 100},
		{100, 100, 0},
		{99, 98, 97},
		{36, 45, 55, 65},
		{10},
		{1000, 34},
	}
	for _, values := range sets {
		hasFail := false
		for _, v := range values {
			if v < PassMark {
				hasFail = true
			}
		}
		got := Compute(marksOf(values...))
		if hasFail {
			assert.Equal(t, Fail, got.Grade, "marks %v", values)
		} else {
			assert.NotEqual(t, Fail, got.Grade, "marks %v", values)
			assert.NotEqual(t, F, got.Grade, "marks %v", values)
		}
	}
}

func TestCompute_doesNotMutateInput(t *testing.T) {
	marks := marksOf(80, 30)
	orig := append([]SubjectMark(nil), marks...)
	_ = Compute(marks)
	assert.Equal(t, orig, marks)
}

func TestFormatCGPA(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.00"},
		{in: 8.4, want: "8.40"},
		{in: 1.125, want: "1.13"},
		{in: 0.125, want: "0.13"},
		{in: 2.675, want: "2.67"}, // 2.67499999... in binary
		{in: -1.125, want: "-1.13"},
		{in: 99.995, want: "100.00"}, // 99.99500000000000454...
		{in: 0.005, want: "0.01"},
		{in: 10.526315789, want: "10.53"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCGPA(tt.in), "%v", tt.in)
	}
}

func TestCompute_roundsHalfUp(t *testing.T) {
	got := Compute(marksOf(10.6875))
	assert.Equal(t, "1.13", got.CGPA)
}

func TestSubjectMark_Passed(t *testing.T) {
	assert.True(t, SubjectMark{Mark: 35}.Passed())
	assert.False(t, SubjectMark{Mark: 34.5}.Passed())
}
