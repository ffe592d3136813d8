package model

// SemesterSection is a display grouping of semesters under an academic-year
// or summer label. Sections are rebuilt from scratch on every organize call
// and are never persisted.
type SemesterSection struct {
	Label     string // "Freshman", "Summer 2024", "Miscellaneous", ...
	Semesters []Semester

	// Sort keys, ascending. SortYear is the calendar year the section sorts
	// under; SortTermOrder breaks ties within a year so a Freshman year
	// ending in Spring 2024 lands just before Summer 2024.
	SortYear      int
	SortTermOrder int
}
