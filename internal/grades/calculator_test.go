package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academica/gradeflow/internal/model"
)

func TestGradeValue(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{"A+", 4.00},
		{"A", 4.00},
		{"A-", 3.67},
		{"B+", 3.33},
		{"B", 3.00},
		{"B-", 2.67},
		{"C+", 2.33},
		{"C", 2.00},
		{"C-", 1.67},
		{"D+", 1.33},
		{"D", 1.00},
		{"D-", 0.67},
		{"F", 0.00},
		{"a-", 3.67}, // case-insensitive
		{" b ", 3.00},
		{"W", 0}, // unknown tokens score zero
		{"XYZ", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeValue(tt.grade))
		})
	}
}

func TestIsInProgress(t *testing.T) {
	tests := []struct {
		grade string
		want  bool
	}{
		{"", true},
		{"IP", true},
		{"ip", true},
		{"TBD", true},
		{"NG", true},
		{"PENDING", true},
		{"pending", true},
		{" tbd ", true},
		{"A", false},
		{"F", false},
		{"W", false}, // unknown but not in progress
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInProgress(tt.grade))
		})
	}
}

func TestGradePoints(t *testing.T) {
	tests := []struct {
		name    string
		grade   string
		credits float64
		want    float64
	}{
		{"four credit A-", "A-", 4, 14.68},
		{"three credit F", "F", 3, 0},
		{"in progress earns nothing", "IP", 4, 0},
		{"blank grade earns nothing", "", 4, 0},
		{"zero credits", "A", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GradePoints(tt.credits, tt.grade), 1e-9)
		})
	}
}

func TestSemesterTotals(t *testing.T) {
	completed := []model.Course{
		{Grade: "A", Credits: 3},
		{Grade: "B+", Credits: 4},
		{Grade: "C", Credits: 3},
	}

	t.Run("all completed", func(t *testing.T) {
		got := SemesterTotals(completed)
		assert.Equal(t, 10.0, got.TotalCredits)
		assert.InDelta(t, 3*4.0+4*3.33+3*2.0, got.TotalGradePoints, 1e-9)
		assert.Equal(t, 3.13, got.GPA) // 31.32 / 10
		assert.True(t, got.IncludeInOverallGPA)
	})

	t.Run("one in-progress course excludes the semester", func(t *testing.T) {
		courses := append(append([]model.Course{}, completed...), model.Course{Grade: "", Credits: 3})
		got := SemesterTotals(courses)

		// Its own GPA still reflects only the three graded courses.
		assert.Equal(t, 10.0, got.TotalCredits)
		assert.Equal(t, 3.13, got.GPA)
		assert.False(t, got.IncludeInOverallGPA)
	})

	t.Run("empty course list", func(t *testing.T) {
		got := SemesterTotals(nil)
		assert.Zero(t, got.TotalCredits)
		assert.Zero(t, got.GPA)
		assert.False(t, got.IncludeInOverallGPA)
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, SemesterTotals(completed), SemesterTotals(completed))
	})
}

func TestRecalculate(t *testing.T) {
	in := model.Semester{
		Name: "Fall 2023",
		Courses: []model.Course{
			{UID: "1", Grade: "A-", Credits: 4, GradePoints: 999}, // stale
			{UID: "2", Grade: "IP", Credits: 3, GradePoints: 999},
		},
	}

	out := Recalculate(in)

	assert.InDelta(t, 14.68, out.Courses[0].GradePoints, 1e-9)
	assert.Zero(t, out.Courses[1].GradePoints)
	assert.Equal(t, 4.0, out.TotalCredits)
	assert.Equal(t, 3.67, out.GPA)
	assert.False(t, out.IncludeInOverallGPA)

	// Input untouched.
	assert.Equal(t, 999.0, in.Courses[0].GradePoints)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.67, Round2(3.6666666))
	assert.Equal(t, 3.13, Round2(3.132))
	assert.Equal(t, 0.0, Round2(0))
}
