// Package term parses free-text term labels ("Fall 2023") into structured
// (year, season) pairs and defines the chronological ordering the organizer
// and forecaster share.
package term

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Season is the term-within-year component of a parsed label.
type Season int

// Seasons in chronological order within a calendar year. Unknown sorts last.
const (
	SeasonSpring Season = iota + 1
	SeasonSummer
	SeasonFall
	SeasonWinter
	SeasonUnknown
)

var seasonNames = map[Season]string{
	SeasonSpring: "Spring",
	SeasonSummer: "Summer",
	SeasonFall:   "Fall",
	SeasonWinter: "Winter",
}

// String returns the display name of the season.
func (s Season) String() string {
	if name, ok := seasonNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Order is the within-year sort position of the season.
func (s Season) Order() int {
	return int(s)
}

// Term is a structured (year, season) pair derived from a display label.
type Term struct {
	Year   int
	Season Season
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// ParseLabel extracts the year and season from a free-text term label. The
// second return is false when no 4-digit year is present; an unrecognized
// season still parses, bucketed as SeasonUnknown.
func ParseLabel(label string) (Term, bool) {
	t := Term{Season: SeasonUnknown}

	m := yearPattern.FindStringSubmatch(label)
	if m == nil {
		return t, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return t, false
	}
	t.Year = year

	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "spring"):
		t.Season = SeasonSpring
	case strings.Contains(lower, "summer"):
		t.Season = SeasonSummer
	case strings.Contains(lower, "fall"):
		t.Season = SeasonFall
	case strings.Contains(lower, "winter"):
		t.Season = SeasonWinter
	}

	return t, true
}

// Label formats the term as a display string, e.g. "Fall 2024".
func (t Term) Label() string {
	return fmt.Sprintf("%s %d", t.Season, t.Year)
}

// SortKey orders terms chronologically: by year, then season.
func (t Term) SortKey() int {
	return t.Year*10 + t.Season.Order()
}

// OrderKey is SortKey with undated terms pushed past everything dated, the
// ordering the organizer and forecaster both use.
func (t Term) OrderKey() int {
	if t.Year == 0 {
		return math.MaxInt32
	}
	return t.SortKey()
}

// IsZero reports whether the term is unset.
func (t Term) IsZero() bool {
	return t.Year == 0 && t.Season == 0
}

// Next returns the following major term: Spring advances to Fall of the same
// year, Fall to Spring of the next. Summer and Winter terms are not generated
// when projecting forward.
func (t Term) Next() Term {
	switch t.Season {
	case SeasonFall, SeasonWinter:
		return Term{Year: t.Year + 1, Season: SeasonSpring}
	default:
		return Term{Year: t.Year, Season: SeasonFall}
	}
}

// After reports whether t is strictly later than other.
func (t Term) After(other Term) bool {
	return t.SortKey() > other.SortKey()
}

// AcademicYearStart is the calendar year in which the academic year holding
// this term began. Spring 2024 belongs to the year that started Fall 2023.
func (t Term) AcademicYearStart() int {
	if t.Season == SeasonSpring || t.Season == SeasonSummer {
		return t.Year - 1
	}
	return t.Year
}
