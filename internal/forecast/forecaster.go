// Package forecast projects a student's cumulative GPA forward with a
// damped-trend (Holt) exponential smoothing model fit over the completed
// semesters.
package forecast

import (
	"math"
	"sort"

	"github.com/academica/gradeflow/internal/grades"
	"github.com/academica/gradeflow/internal/model"
	"github.com/academica/gradeflow/internal/organizer"
	"github.com/academica/gradeflow/internal/term"
)

// Smoothing constants for the damped-trend model. Fixed algorithm
// parameters, unlike the horizon settings which are product decisions.
const (
	Alpha = 0.6  // level smoothing
	Beta  = 0.05 // trend smoothing
	Phi   = 0.7  // trend damping
)

// GPA projections are clamped to the 4.0 scale.
const (
	minGPA = 0.0
	maxGPA = 4.0
)

// Config controls how far past the last completed semester the projection
// runs. Both cutoffs are configuration, not constants: the upstream behavior
// of freezing a specific final term in code stops producing projections once
// real time passes it.
type Config struct {
	// Horizon caps the number of steps projected past the last completed
	// semester, counting in-progress semesters already on the record.
	Horizon int

	// FinalTerm, when set, stops synthetic terms after this calendar point.
	// The zero value means no calendar cutoff.
	FinalTerm term.Term
}

// DefaultConfig projects four academic years past the boundary with no
// calendar cutoff.
func DefaultConfig() Config {
	return Config{Horizon: 8}
}

// Forecast builds the chronological GPA series for the given semesters:
// each historical term's own GPA and running cumulative GPA, then projected
// values from the last completed semester through the configured horizon.
// The input is never mutated; empty input yields an empty series.
func Forecast(semesters []model.Semester, cfg Config) []model.ForecastPoint {
	entries := sortedEntries(semesters)
	points := make([]model.ForecastPoint, 0, len(entries))
	if len(entries) == 0 {
		return points
	}

	anchor := anchorYear(entries)
	cumulative := cumulativeSeries(entries)
	last := lastCompletedIndex(entries)

	for i, e := range entries {
		p := model.ForecastPoint{
			Term:          e.semester.Name,
			YearLevel:     yearLevel(e.term, anchor),
			CumulativeGPA: cumulative[i],
			SortKey:       e.term.OrderKey(),
		}
		if e.semester.IncludeInOverallGPA {
			p.GPA = model.Float64(e.semester.GPA)
		}
		points = append(points, p)
	}

	if last < 0 {
		// Nothing completed: the projected series stays null and there is
		// no trend to extend into synthetic terms.
		return points
	}

	level, trend := fit(cumulative[:last+1])

	// The projection starts exactly on the actual line.
	if cumulative[last] != nil {
		points[last].ProjectedGPA = model.Float64(*cumulative[last])
	}

	for i := last + 1; i < len(points); i++ {
		points[i].ProjectedGPA = model.Float64(project(level, trend, i-last))
	}

	points = append(points, syntheticPoints(entries, anchor, level, trend, last, cfg)...)

	return points
}

type entry struct {
	semester model.Semester
	term     term.Term
}

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

func anchorYear(entries []entry) int {
	for _, e := range entries {
		if e.term.Year != 0 {
			return e.term.AcademicYearStart()
		}
	}
	return 0
}

func yearLevel(t term.Term, anchor int) string {
	if t.Year == 0 {
		return ""
	}
	return organizer.YearLabel(t.AcademicYearStart() - anchor)
}

// cumulativeSeries accumulates credits and grade points across semesters in
// order. Semesters excluded by the all-or-nothing rule pass through with the
// running value frozen; the series is nil until the first counted credits.
func cumulativeSeries(entries []entry) []*float64 {
	out := make([]*float64, len(entries))
	var credits, points float64

	for i, e := range entries {
		if e.semester.IncludeInOverallGPA {
			credits += e.semester.TotalCredits
			points += e.semester.TotalGradePoints
		}
		if credits > 0 {
			out[i] = model.Float64(grades.Round2(points / credits))
		}
	}

	return out
}

func lastCompletedIndex(entries []entry) int {
	last := -1
	for i, e := range entries {
		if e.semester.IncludeInOverallGPA {
			last = i
		}
	}
	return last
}

// fit runs damped-trend smoothing over the observed cumulative values and
// returns the final level and trend. Nil leading values (all-in-progress
// prefixes) are skipped.
func fit(series []*float64) (level, trend float64) {
	var obs []float64
	for _, v := range series {
		if v != nil {
			obs = append(obs, *v)
		}
	}
	if len(obs) == 0 {
		return 0, 0
	}

	level = obs[0]
	if len(obs) >= 2 {
		trend = obs[1] - obs[0]
	}

	for _, y := range obs[1:] {
		newLevel := Alpha*y + (1-Alpha)*(level+Phi*trend)
		trend = Beta*(newLevel-level) + (1-Beta)*Phi*trend
		level = newLevel
	}

	return level, trend
}

// project computes the h-step-ahead damped forecast, rounded and clamped to
// the 4.0 scale.
func project(level, trend float64, h int) float64 {
	damped := (1 - math.Pow(Phi, float64(h))) / (1 - Phi)
	v := grades.Round2(level + Phi*damped*trend)
	return math.Min(maxGPA, math.Max(minGPA, v))
}

// syntheticPoints extends the series with future terms, Spring and Fall
// alternating, until the horizon or the optional final-term cutoff. The walk
// starts after the latest dated entry; undated trailing entries still count
// toward the horizon but cannot anchor the calendar.
func syntheticPoints(entries []entry, anchor int, level, trend float64, last int, cfg Config) []model.ForecastPoint {
	var lastTerm term.Term
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].term.Year != 0 {
			lastTerm = entries[i].term
			break
		}
	}
	if lastTerm.Year == 0 {
		return nil
	}

	var out []model.ForecastPoint
	h := len(entries) - 1 - last
	for t := lastTerm.Next(); ; t = t.Next() {
		h++
		if h > cfg.Horizon {
			break
		}
		if !cfg.FinalTerm.IsZero() && t.After(cfg.FinalTerm) {
			break
		}
		out = append(out, model.ForecastPoint{
			Term:         t.Label(),
			YearLevel:    yearLevel(t, anchor),
			ProjectedGPA: model.Float64(project(level, trend, h)),
			SortKey:      t.OrderKey(),
		})
	}

	return out
}
