package model

// ForecastPoint is one term on the GPA timeline: a historical semester or a
// synthetic future one. Nil pointers mean "no value at this point" and are a
// valid, displayable state, not an error.
type ForecastPoint struct {
	Term      string // term label, e.g. "Spring 2025"
	YearLevel string // class-year label at this term ("Freshman", ...)

	GPA           *float64 // the semester's own GPA; nil when in progress or synthetic
	CumulativeGPA *float64 // running GPA over completed semesters so far
	ProjectedGPA  *float64 // model projection; nil before the forecast boundary

	SortKey int // chronological ordering key
}

// Float64 returns a pointer to v, for populating the nullable point fields.
func Float64(v float64) *float64 {
	return &v
}
