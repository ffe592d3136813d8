package model

import "github.com/google/uuid"

// Semester groups the courses taken in one term together with its derived
// totals. The derived fields (TotalCredits, TotalGradePoints, GPA,
// IncludeInOverallGPA) are owned by the grades package and recomputed after
// every course edit; they cover completed courses only.
type Semester struct {
	ID      string
	Name    string // free-text term label, e.g. "Fall 2023"
	Courses []Course

	TotalCredits     float64
	TotalGradePoints float64
	GPA              float64

	// IncludeInOverallGPA is true only when the semester has at least one
	// course and every course carries a final grade. A single in-progress
	// course keeps the whole semester out of cumulative and forecast math.
	IncludeInOverallGPA bool
}

// NewSemester creates an empty semester with a fresh ID.
func NewSemester(name string) Semester {
	return Semester{ID: uuid.NewString(), Name: name}
}

// Clone returns a deep copy; the courses slice is never shared.
func (s Semester) Clone() Semester {
	out := s
	out.Courses = make([]Course, len(s.Courses))
	copy(out.Courses, s.Courses)
	return out
}

// CloneSemesters deep-copies a semester list.
func CloneSemesters(semesters []Semester) []Semester {
	out := make([]Semester, len(semesters))
	for i, s := range semesters {
		out[i] = s.Clone()
	}
	return out
}
