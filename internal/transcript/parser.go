// Package transcript turns raw pasted transcript text into course records.
//
// Parsing is deliberately lenient: malformed or unrecognizable input yields
// fewer (possibly zero) courses, never an error. A noisy paste degrades to
// "fewer courses imported", not a failure the caller has to handle.
package transcript

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/academica/gradeflow/internal/grades"
	"github.com/academica/gradeflow/internal/model"
)

// Scan states for the structured-transcript machine. Header location runs
// once up front (findCourseDataStart) before the per-line loop starts.
type state int

const (
	stateSeekingCourse state = iota
	stateCollectingTitle
	stateCollectingGradeAndCredits
)

var (
	// courseCodePattern matches registrar course codes at the start of a
	// line: 2-4 uppercase letters, 3-4 digits, optional lab suffix, optional
	// parenthesized class number.
	courseCodePattern = regexp.MustCompile(`^([A-Z]{2,4})\s*(\d{3,4}L?)(?:\s*\((\d+)\))?`)

	gradeTokenPattern  = regexp.MustCompile(`(?i)^[A-F][+-]?$`)
	numberTokenPattern = regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`)
)

// headerPhrases mark the title row of a structured transcript table.
var headerPhrases = []string{"course (class)", "course title"}

// The column-name row that follows the header names a grade column and at
// least one credits column.
var (
	columnRequired = "grade"
	columnCredits  = []string{"credit attempted", "credit earned"}
)

// terminatorKeywords end the current course block. They do not end parsing;
// another term's courses can follow.
var terminatorKeywords = []string{"requirement", "term gpa", "overall gpa", "university gpa"}

// Parse extracts courses from raw transcript text. The structured scanner
// runs first; if it finds nothing, the simple 4-line block format is tried.
// Parse never fails: unusable input produces an empty slice.
func Parse(raw string) []model.Course {
	courses := parseStructured(raw)
	if len(courses) == 0 {
		courses = parseSimple(raw)
	}

	slog.Debug("parsed transcript",
		"courses", len(courses),
		"bytes", len(raw))

	return courses
}

// courseBuilder accumulates fields for the course currently being scanned.
type courseBuilder struct {
	code        string
	classNumber string
	title       string
	grade       string
	credits     float64
	hasCredits  bool
}

func (b *courseBuilder) complete() bool {
	return b.code != "" && b.title != "" && b.grade != "" && b.hasCredits
}

func (b *courseBuilder) build() model.Course {
	c := model.NewCourse(b.code, b.title, b.grade, b.credits)
	c.ClassNumber = b.classNumber
	c.GradePoints = grades.GradePoints(c.Credits, c.Grade)
	return c
}

func (b *courseBuilder) reset() {
	*b = courseBuilder{}
}

func parseStructured(raw string) []model.Course {
	lines := nonBlankLines(raw)

	start, ok := findCourseDataStart(lines)
	if !ok {
		return nil
	}

	var (
		courses []model.Course
		b       courseBuilder
		st      = stateSeekingCourse
	)

	emit := func() {
		if b.complete() {
			courses = append(courses, b.build())
		}
		b.reset()
		st = stateSeekingCourse
	}

	for _, line := range lines[start:] {
		if isTerminatorLine(line) {
			// Ends the current block, not the parse: the next term's
			// courses may follow.
			emit()
			continue
		}

		if m := courseCodePattern.FindStringSubmatch(line); m != nil {
			emit()
			b.code = m[1] + m[2]
			b.classNumber = m[3]
			st = stateCollectingTitle
			continue
		}

		switch st {
		case stateCollectingTitle:
			b.title = line
			st = stateCollectingGradeAndCredits
		case stateCollectingGradeAndCredits:
			scanGradeAndCredits(&b, line)
		}
	}
	emit()

	return courses
}

// findCourseDataStart locates the first line of course data: the line after
// a recognized header region, or failing that, the first course-code line.
func findCourseDataStart(lines []string) (int, bool) {
	for i, line := range lines {
		if !containsHeaderPhrase(line) {
			continue
		}
		if isColumnRow(line) {
			return i + 1, true
		}
		if i+1 < len(lines) && isColumnRow(lines[i+1]) {
			return i + 2, true
		}
	}

	for i, line := range lines {
		if courseCodePattern.MatchString(line) {
			return i, true
		}
	}

	return 0, false
}

// scanGradeAndCredits pulls the grade token, then the first numeric token
// after it, from a detail line. Both can sit on the same line.
func scanGradeAndCredits(b *courseBuilder, line string) {
	for _, tok := range strings.Fields(line) {
		if b.grade == "" {
			if gradeTokenPattern.MatchString(tok) {
				b.grade = strings.ToUpper(tok)
			}
			continue
		}
		if !b.hasCredits && numberTokenPattern.MatchString(tok) {
			b.credits = parseNumber(tok)
			b.hasCredits = true
			return
		}
	}
}

func containsHeaderPhrase(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range headerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func isColumnRow(line string) bool {
	lower := strings.ToLower(line)
	if !strings.Contains(lower, columnRequired) {
		return false
	}
	for _, kw := range columnCredits {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isTerminatorLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range terminatorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func nonBlankLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
