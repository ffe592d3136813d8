// Package grades implements 4.0-scale grade-point arithmetic: letter-grade
// values, in-progress detection, and per-semester totals under the
// all-or-nothing inclusion rule.
package grades

import (
	"math"
	"strings"

	"github.com/academica/gradeflow/internal/model"
)

// gradeValues is the fixed 4.0-scale table. Unknown tokens score 0.
var gradeValues = map[string]float64{
	"A+": 4.00,
	"A":  4.00,
	"A-": 3.67,
	"B+": 3.33,
	"B":  3.00,
	"B-": 2.67,
	"C+": 2.33,
	"C":  2.00,
	"C-": 1.67,
	"D+": 1.33,
	"D":  1.00,
	"D-": 0.67,
	"F":  0.00,
}

// inProgressMarkers are the sentinel grade values meaning "no final grade
// yet". The empty string counts too.
var inProgressMarkers = map[string]struct{}{
	"":        {},
	"IP":      {},
	"TBD":     {},
	"NG":      {},
	"PENDING": {},
}

// Totals holds the derived per-semester aggregates over completed courses.
type Totals struct {
	TotalCredits        float64
	TotalGradePoints    float64
	GPA                 float64
	IncludeInOverallGPA bool
}

// IsInProgress reports whether a grade string is an in-progress marker
// rather than a final grade. Matching is case-insensitive and ignores
// surrounding whitespace.
func IsInProgress(grade string) bool {
	_, ok := inProgressMarkers[normalize(grade)]
	return ok
}

// GradeValue maps a letter grade to its 4.0-scale value. Unknown tokens and
// in-progress markers map to 0.
func GradeValue(grade string) float64 {
	return gradeValues[normalize(grade)]
}

// GradePoints computes the grade points a course earns: credits times the
// grade value, or 0 while the course is in progress. Unparseable credits are
// the host's problem; anything non-finite contributes 0.
func GradePoints(credits float64, grade string) float64 {
	if IsInProgress(grade) {
		return 0
	}
	if math.IsNaN(credits) || math.IsInf(credits, 0) {
		credits = 0
	}
	return credits * GradeValue(grade)
}

// SemesterTotals sums credits and grade points over completed courses only
// and applies the all-or-nothing rule: the semester joins cumulative math
// only when it has courses and every one of them carries a final grade.
func SemesterTotals(courses []model.Course) Totals {
	var t Totals
	allCompleted := len(courses) > 0

	for _, c := range courses {
		if IsInProgress(c.Grade) {
			allCompleted = false
			continue
		}
		t.TotalCredits += c.Credits
		t.TotalGradePoints += GradePoints(c.Credits, c.Grade)
	}

	if t.TotalCredits > 0 {
		t.GPA = Round2(t.TotalGradePoints / t.TotalCredits)
	}
	t.IncludeInOverallGPA = allCompleted

	return t
}

// Recalculate returns a fresh semester with every course's grade points and
// the semester aggregates rederived. The input is not mutated.
func Recalculate(s model.Semester) model.Semester {
	out := s.Clone()
	for i := range out.Courses {
		out.Courses[i].GradePoints = GradePoints(out.Courses[i].Credits, out.Courses[i].Grade)
	}
	totals := SemesterTotals(out.Courses)
	out.TotalCredits = totals.TotalCredits
	out.TotalGradePoints = totals.TotalGradePoints
	out.GPA = totals.GPA
	out.IncludeInOverallGPA = totals.IncludeInOverallGPA
	return out
}

// Round2 rounds to two decimal places, the display precision for GPA values.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func normalize(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}
