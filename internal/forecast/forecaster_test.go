package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academica/gradeflow/internal/grades"
	"github.com/academica/gradeflow/internal/model"
	"github.com/academica/gradeflow/internal/term"
)

// completed builds a fully-graded semester with the given totals.
func completed(name string, credits, points float64) model.Semester {
	s := model.NewSemester(name)
	s.TotalCredits = credits
	s.TotalGradePoints = points
	s.GPA = grades.Round2(points / credits)
	s.IncludeInOverallGPA = true
	return s
}

// inProgress builds a semester excluded from cumulative math.
func inProgress(name string) model.Semester {
	return model.NewSemester(name)
}

func TestForecastEmpty(t *testing.T) {
	points := Forecast(nil, DefaultConfig())
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestForecastAllInProgress(t *testing.T) {
	points := Forecast([]model.Semester{
		inProgress("Fall 2023"),
		inProgress("Spring 2024"),
	}, DefaultConfig())

	require.Len(t, points, 2)
	for _, p := range points {
		assert.Nil(t, p.GPA)
		assert.Nil(t, p.CumulativeGPA)
		assert.Nil(t, p.ProjectedGPA)
	}
}

func TestForecastBoundaryContinuity(t *testing.T) {
	semesters := []model.Semester{
		completed("Fall 2023", 15, 45),     // GPA 3.00
		completed("Spring 2024", 15, 52.5), // GPA 3.50, cumulative 3.25
		inProgress("Fall 2024"),
	}

	points := Forecast(semesters, DefaultConfig())
	require.Len(t, points, 2+1+DefaultConfig().Horizon-1)

	// The projected line touches the actual line exactly where it starts.
	require.NotNil(t, points[1].CumulativeGPA)
	require.NotNil(t, points[1].ProjectedGPA)
	assert.Equal(t, *points[1].CumulativeGPA, *points[1].ProjectedGPA)
	assert.Equal(t, 3.25, *points[1].CumulativeGPA)

	// Before the boundary: no projection yet.
	assert.Nil(t, points[0].ProjectedGPA)

	// The in-progress semester freezes the cumulative value and carries a
	// projection.
	require.NotNil(t, points[2].CumulativeGPA)
	assert.Equal(t, 3.25, *points[2].CumulativeGPA)
	assert.Nil(t, points[2].GPA)
	require.NotNil(t, points[2].ProjectedGPA)
	assert.Equal(t, 3.34, *points[2].ProjectedGPA)
}

func TestForecastSyntheticTerms(t *testing.T) {
	semesters := []model.Semester{
		completed("Fall 2023", 15, 45),
		completed("Spring 2024", 15, 52.5),
		inProgress("Fall 2024"),
	}

	cfg := Config{Horizon: 4}
	points := Forecast(semesters, cfg)

	// 3 input semesters plus synthetic terms at h=2..4.
	require.Len(t, points, 6)
	assert.Equal(t, "Spring 2025", points[3].Term)
	assert.Equal(t, "Fall 2025", points[4].Term)
	assert.Equal(t, "Spring 2026", points[5].Term)

	// Synthetic points carry only a projection.
	for _, p := range points[3:] {
		assert.Nil(t, p.GPA)
		assert.Nil(t, p.CumulativeGPA)
		require.NotNil(t, p.ProjectedGPA)
	}

	// Year levels advance as Fall terms roll around.
	assert.Equal(t, "Sophomore", points[3].YearLevel) // Spring 2025
	assert.Equal(t, "Junior", points[4].YearLevel)    // Fall 2025
}

func TestForecastSyntheticTermsAfterUndatedSemester(t *testing.T) {
	// An undated in-progress semester sorts after the dated history but must
	// not suppress the synthetic terms; the calendar resumes from the latest
	// dated entry.
	semesters := []model.Semester{
		completed("Fall 2023", 15, 45),
		completed("Spring 2024", 15, 52.5),
		inProgress("Study Abroad"),
	}

	cfg := Config{Horizon: 4}
	points := Forecast(semesters, cfg)

	// 3 input semesters plus synthetic terms at h=2..4.
	require.Len(t, points, 6)
	assert.Equal(t, "Study Abroad", points[2].Term)
	require.NotNil(t, points[2].ProjectedGPA)

	assert.Equal(t, "Fall 2024", points[3].Term)
	assert.Equal(t, "Spring 2025", points[4].Term)
	assert.Equal(t, "Fall 2025", points[5].Term)
	for _, p := range points[3:] {
		assert.Nil(t, p.GPA)
		assert.Nil(t, p.CumulativeGPA)
		require.NotNil(t, p.ProjectedGPA)
	}
}

func TestForecastFinalTermCutoff(t *testing.T) {
	semesters := []model.Semester{
		completed("Fall 2023", 15, 45),
		completed("Spring 2024", 15, 52.5),
	}

	cfg := Config{
		Horizon:   10,
		FinalTerm: term.Term{Year: 2025, Season: term.SeasonSpring},
	}
	points := Forecast(semesters, cfg)

	require.NotEmpty(t, points)
	last := points[len(points)-1]
	assert.Equal(t, "Spring 2025", last.Term)
}

func TestForecastSingleCompletedSemesterIsFlat(t *testing.T) {
	semesters := []model.Semester{completed("Fall 2023", 12, 42)} // GPA 3.50

	points := Forecast(semesters, Config{Horizon: 3})
	require.Len(t, points, 4)

	// One observation means zero trend: the projection holds level.
	for _, p := range points {
		require.NotNil(t, p.ProjectedGPA)
		assert.Equal(t, 3.5, *p.ProjectedGPA)
	}
}

func TestForecastClampedToScale(t *testing.T) {
	// A steep upward trend cannot project past 4.0.
	semesters := []model.Semester{
		completed("Fall 2022", 10, 20),   // 2.00
		completed("Spring 2023", 10, 39), // cumulative 2.95
		completed("Fall 2023", 10, 40),   // cumulative 3.30
		completed("Spring 2024", 10, 40), // cumulative 3.475
	}

	points := Forecast(semesters, Config{Horizon: 30})
	for _, p := range points {
		if p.ProjectedGPA == nil {
			continue
		}
		assert.LessOrEqual(t, *p.ProjectedGPA, 4.0)
		assert.GreaterOrEqual(t, *p.ProjectedGPA, 0.0)
	}
}

func TestForecastDeterministic(t *testing.T) {
	in := []model.Semester{
		completed("Fall 2023", 15, 45),
		inProgress("Spring 2024"),
	}
	assert.Equal(t, Forecast(in, DefaultConfig()), Forecast(in, DefaultConfig()))
}

func TestForecastDoesNotMutateInput(t *testing.T) {
	in := []model.Semester{completed("Fall 2023", 15, 45)}
	before := in[0]
	_ = Forecast(in, DefaultConfig())
	assert.Equal(t, before, in[0])
}
