package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	cases := []struct {
		percentage float64
		grade      string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{79, "B+"},
		{70, "B+"},
		{65, "B"},
		{60, "B"},
		{55, "C"},
		{50, "C"},
		{45, "D"},
		{40, "D"},
		{39.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, GradeFor(tc.percentage), "percentage %v", tc.percentage)
	}
}

func TestResult_Compute(t *testing.T) {
	r := Result{
		Marks: []SubjectMark{
			{Subject: "Mathematics", Marks: 92, MaxMarks: 100},
			{Subject: "English", Marks: 70, MaxMarks: 100},
			{Subject: "Science", Marks: 38, MaxMarks: 100},
		},
	}
	r.Compute()

	assert.Equal(t, 300.0, r.TotalMarks)
	assert.Equal(t, 200.0, r.ObtainedMarks)
	assert.InDelta(t, 66.67, r.Percentage, 0.01)
	assert.Equal(t, "B", r.Grade)
	assert.Equal(t, ResultStatusPass, r.Status)

	// per-subject grades filled in place
	assert.Equal(t, "A+", r.Marks[0].Grade)
	assert.Equal(t, "B+", r.Marks[1].Grade)
	assert.Equal(t, "F", r.Marks[2].Grade)
}

func TestResult_Compute_Fail(t *testing.T) {
	r := Result{
		Marks: []SubjectMark{
			{Subject: "Mathematics", Marks: 20, MaxMarks: 100},
			{Subject: "English", Marks: 35, MaxMarks: 100},
		},
	}
	r.Compute()

	assert.Equal(t, 27.5, r.Percentage)
	assert.Equal(t, "F", r.Grade)
	assert.Equal(t, ResultStatusFail, r.Status)
}

func TestResult_Compute_NoMarks(t *testing.T) {
	r := Result{}
	r.Compute()

	assert.Equal(t, 0.0, r.TotalMarks)
	assert.Equal(t, 0.0, r.Percentage)
	assert.Equal(t, "F", r.Grade)
	assert.Equal(t, ResultStatusFail, r.Status)
}

func TestResult_Compute_ZeroMaxMarks(t *testing.T) {
	r := Result{
		Marks: []SubjectMark{{Subject: "Drawing", Marks: 10, MaxMarks: 0}},
	}
	r.Compute()

	// a subject with no maximum cannot be graded
	assert.Equal(t, "F", r.Marks[0].Grade)
}
