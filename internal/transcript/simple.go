package transcript

import (
	"math"
	"strconv"
	"strings"

	"github.com/academica/gradeflow/internal/model"
)

// parseSimple reads the plain 4-line block format: course code, title,
// grade, credits, with blank lines between blocks. A block that is short or
// whose credits line is not a finite non-negative number is dropped on its
// own; the following blocks still parse.
func parseSimple(raw string) []model.Course {
	var courses []model.Course

	for _, block := range splitBlocks(raw) {
		if len(block) < 4 {
			continue
		}

		code, title, grade := block[0], block[1], block[2]
		credits, err := strconv.ParseFloat(block[3], 64)
		if err != nil || math.IsNaN(credits) || math.IsInf(credits, 0) || credits < 0 {
			continue
		}
		if code == "" || title == "" || grade == "" {
			continue
		}

		var b courseBuilder
		b.code = code
		b.title = title
		b.grade = grade
		b.credits = credits
		b.hasCredits = true
		courses = append(courses, b.build())
	}

	return courses
}

// splitBlocks groups consecutive non-blank lines, treating one or more blank
// lines as a block separator.
func splitBlocks(raw string) [][]string {
	var (
		blocks  [][]string
		current []string
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func parseNumber(tok string) float64 {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return v
}
