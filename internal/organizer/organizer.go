// Package organizer groups semesters into labeled academic-year and summer
// sections for display. Sections interleave: a Summer term sits between the
// academic year it follows and the one it precedes, never inside either.
package organizer

import (
	"fmt"
	"math"
	"sort"

	"github.com/academica/gradeflow/internal/model"
	"github.com/academica/gradeflow/internal/term"
)

// yearLabels name academic years in order from the anchor year. Years past
// the table get a generic "Year N" label.
var yearLabels = []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate I", "Graduate II"}

const miscLabel = "Miscellaneous"

// Organize buckets semesters into chronologically ordered sections. The
// input is never mutated; every call builds a fresh structure. Semesters
// whose labels carry no usable year, and Winter terms, collect into a
// trailing Miscellaneous section.
func Organize(semesters []model.Semester) []model.SemesterSection {
	if len(semesters) == 0 {
		return []model.SemesterSection{}
	}

	entries := sortedEntries(semesters)
	anchor := anchorYear(entries)

	var (
		sections  []model.SemesterSection
		yearIndex = make(map[int]int) // academic-year start -> index in sections
		miscIndex = -1
	)

	for _, e := range entries {
		switch e.term.Season {
		case term.SeasonSummer:
			sections = append(sections, model.SemesterSection{
				Label:         fmt.Sprintf("Summer %d", e.term.Year),
				Semesters:     []model.Semester{e.semester},
				SortYear:      e.term.Year,
				SortTermOrder: term.SeasonSummer.Order(),
			})

		case term.SeasonFall, term.SeasonSpring:
			start := e.term.AcademicYearStart()
			idx, ok := yearIndex[start]
			if !ok {
				idx = len(sections)
				yearIndex[start] = idx
				sections = append(sections, model.SemesterSection{
					Label:         YearLabel(start - anchor),
					SortYear:      e.term.Year,
					SortTermOrder: e.term.Season.Order(),
				})
			}
			sections[idx].Semesters = append(sections[idx].Semesters, e.semester)
			// A year bucket ending in Spring sorts at that Spring, placing
			// it just before the same calendar year's Summer section.
			if e.term.Season == term.SeasonSpring {
				sections[idx].SortYear = e.term.Year
				sections[idx].SortTermOrder = term.SeasonSpring.Order()
			}

		default:
			if miscIndex < 0 {
				miscIndex = len(sections)
				sections = append(sections, model.SemesterSection{
					Label:         miscLabel,
					SortYear:      math.MaxInt32,
					SortTermOrder: term.SeasonUnknown.Order(),
				})
			}
			sections[miscIndex].Semesters = append(sections[miscIndex].Semesters, e.semester)
		}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].SortYear != sections[j].SortYear {
			return sections[i].SortYear < sections[j].SortYear
		}
		return sections[i].SortTermOrder < sections[j].SortTermOrder
	})

	return sections
}

// YearLabel names the academic year at the given offset from the anchor
// year: Freshman, Sophomore, and so on, then "Year N".
func YearLabel(offset int) string {
	if offset >= 0 && offset < len(yearLabels) {
		return yearLabels[offset]
	}
	return fmt.Sprintf("Year %d", offset+1)
}

type entry struct {
	semester model.Semester
	term     term.Term
}

// sortedEntries clones the semesters, tags each with its parsed term, and
// orders them chronologically. Unparsable labels sort last as Unknown.
func sortedEntries(semesters []model.Semester) []entry {
	entries := make([]entry, len(semesters))
	for i, s := range semesters {
		t, _ := term.ParseLabel(s.Name)
		entries[i] = entry{semester: s.Clone(), term: t}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].term.OrderKey() < entries[j].term.OrderKey()
	})

	return entries
}

// anchorYear is the academic-year start of the earliest dated semester; the
// year labels count up from it.
func anchorYear(entries []entry) int {
	for _, e := range entries {
		if e.term.Year != 0 {
			return e.term.AcademicYearStart()
		}
	}
	return 0
}
