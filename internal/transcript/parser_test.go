package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredTranscript = `Georgia Institute of Technology
Undergraduate Record

Fall 2023
Course (Class)	Course Title
Grade	Credit Attempted	Credit Earned
CS1301 (90210)
Intro to Computing
A	3.00	3.00
MATH1551
Differential Calculus
B+	2.00	2.00
Term GPA	3.65	Overall GPA	3.65

Spring 2024
Course (Class)	Course Title
Grade	Credit Attempted	Credit Earned
CHEM1211L
Chemistry Lab I
A-	1.00	1.00
Requirement satisfied: Lab Science
`

func TestParseStructured(t *testing.T) {
	courses := Parse(structuredTranscript)
	require.Len(t, courses, 3)

	assert.Equal(t, "CS1301", courses[0].Code)
	assert.Equal(t, "90210", courses[0].ClassNumber)
	assert.Equal(t, "Intro to Computing", courses[0].Title)
	assert.Equal(t, "A", courses[0].Grade)
	assert.Equal(t, 3.0, courses[0].Credits)
	assert.Equal(t, 12.0, courses[0].GradePoints)

	assert.Equal(t, "MATH1551", courses[1].Code)
	assert.Equal(t, "B+", courses[1].Grade)
	assert.Equal(t, 2.0, courses[1].Credits)

	assert.Equal(t, "CHEM1211L", courses[2].Code)
	assert.Equal(t, "Chemistry Lab I", courses[2].Title)
	assert.InDelta(t, 3.67, courses[2].GradePoints, 1e-9)
}

func TestParseStructuredNoHeader(t *testing.T) {
	// No recognizable header: scanning starts at the first course code.
	raw := `Some preamble text
about nothing in particular
PHYS2211 (12345)
Intro Physics I
B-	4.00	4.00
`
	courses := Parse(raw)
	require.Len(t, courses, 1)
	assert.Equal(t, "PHYS2211", courses[0].Code)
	assert.Equal(t, "B-", courses[0].Grade)
	assert.Equal(t, 4.0, courses[0].Credits)
}

func TestParseContinuesPastTermGPA(t *testing.T) {
	// A terminator line closes the current block but parsing continues:
	// the next term's courses must still come through.
	raw := `CS1301
Intro to Computing
A	3.00
Term GPA	4.00
CS1331
Object-Oriented Programming
B	3.00
`
	courses := Parse(raw)
	require.Len(t, courses, 2)
	assert.Equal(t, "CS1301", courses[0].Code)
	assert.Equal(t, "CS1331", courses[1].Code)
}

func TestParseIncompleteCourseDropped(t *testing.T) {
	// The second course never gets a credits value before the next code
	// line, so only the complete ones are emitted.
	raw := `CS1301
Intro to Computing
A	3.00
MATH1551
Differential Calculus
no grade information here
CS1331
Object-Oriented Programming
B	3.00
`
	courses := Parse(raw)
	require.Len(t, courses, 2)
	assert.Equal(t, "CS1301", courses[0].Code)
	assert.Equal(t, "CS1331", courses[1].Code)
}

func TestParseSimpleRoundTrip(t *testing.T) {
	// Course codes outside the structured pattern exercise the 4-line
	// fallback: parse returns exactly one course per well-formed block.
	raw := `PSYCH1101
Intro to Psychology
A
3

HUMAN2020
Modern Thought
B+
4.5
`
	courses := Parse(raw)
	require.Len(t, courses, 2)

	assert.Equal(t, "PSYCH1101", courses[0].Code)
	assert.Equal(t, "Intro to Psychology", courses[0].Title)
	assert.Equal(t, "A", courses[0].Grade)
	assert.Equal(t, 3.0, courses[0].Credits)

	assert.Equal(t, "HUMAN2020", courses[1].Code)
	assert.Equal(t, 4.5, courses[1].Credits)
}

func TestParseSimpleBadBlockDiscarded(t *testing.T) {
	// A block whose credits line is not a finite non-negative number is
	// dropped on its own; neighbors still parse.
	tests := []struct {
		name    string
		credits string
	}{
		{name: "non-numeric", credits: "three"},
		{name: "nan", credits: "NaN"},
		{name: "positive infinity", credits: "+Inf"},
		{name: "negative", credits: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `PSYCH1101
Intro to Psychology
A
` + tt.credits + `

SOCIO3000
Social Theory
B
3
`
			courses := parseSimple(raw)
			require.Len(t, courses, 1)
			assert.Equal(t, "SOCIO3000", courses[0].Code)
			assert.Equal(t, 3.0, courses[0].Credits)
		})
	}
}

func TestParseEmptyAndGarbage(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n\n"))
	assert.Empty(t, Parse("nothing here looks like a transcript at all"))
}

func TestParseGeneratesUniqueUIDs(t *testing.T) {
	// Duplicate course codes must stay distinguishable.
	raw := `CS1301
Intro to Computing
A	3.00
CS1301
Intro to Computing (retake)
B	3.00
`
	courses := Parse(raw)
	require.Len(t, courses, 2)
	assert.NotEmpty(t, courses[0].UID)
	assert.NotEqual(t, courses[0].UID, courses[1].UID)
}
