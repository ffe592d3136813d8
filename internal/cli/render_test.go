package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academica/gradeflow/internal/model"
)

func TestRenderSections(t *testing.T) {
	sections := []model.SemesterSection{
		{
			Label: "Freshman",
			Semesters: []model.Semester{
				{
					Name:                "Fall 2023",
					Courses:             []model.Course{{Code: "CS1301"}},
					TotalCredits:        3,
					TotalGradePoints:    12,
					GPA:                 4.0,
					IncludeInOverallGPA: true,
				},
				{Name: "Spring 2024"},
			},
		},
	}

	out := RenderSections(sections)
	assert.Contains(t, out, "Freshman")
	assert.Contains(t, out, "Fall 2023")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "in progress", "excluded semesters must be flagged")
}

func TestRenderSectionsEmpty(t *testing.T) {
	out := RenderSections(nil)
	assert.Contains(t, out, "No semesters")
}

func TestRenderForecast(t *testing.T) {
	points := []model.ForecastPoint{
		{Term: "Fall 2023", YearLevel: "Freshman", GPA: model.Float64(3.5), CumulativeGPA: model.Float64(3.5)},
		{Term: "Spring 2025", YearLevel: "Sophomore", ProjectedGPA: model.Float64(3.41)},
	}

	out := RenderForecast(points)
	assert.Contains(t, out, "Fall 2023")
	assert.Contains(t, out, "3.50")
	assert.Contains(t, out, "3.41")
	assert.Contains(t, out, "—", "absent values render as dashes")
}

func TestRenderCourses(t *testing.T) {
	s := model.Semester{
		Name: "Fall 2023",
		Courses: []model.Course{
			{Code: "CS1301", Title: "Intro to Computing", Grade: "A", Credits: 3, GradePoints: 12},
			{Code: "CS1331", Title: "Object-Oriented Programming", Credits: 3},
		},
	}

	out := RenderCourses(s)
	assert.Contains(t, out, "CS1301")
	assert.Contains(t, out, "Intro to Computing")
	if !strings.Contains(out, "12.00") {
		t.Errorf("expected grade points in output:\n%s", out)
	}
}
