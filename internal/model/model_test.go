package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCourse(t *testing.T) {
	a := NewCourse("CS1301", "Intro to Computing", "A", 3)
	b := NewCourse("CS1301", "Intro to Computing", "A", 3)

	assert.NotEmpty(t, a.UID)
	assert.NotEqual(t, a.UID, b.UID, "identical content must still get distinct identities")
	assert.Equal(t, "CS1301", a.Code)
	assert.Equal(t, 3.0, a.Credits)
}

func TestSemesterClone(t *testing.T) {
	s := NewSemester("Fall 2023")
	s.Courses = []Course{NewCourse("CS1301", "Intro to Computing", "A", 3)}

	clone := s.Clone()
	clone.Courses[0].Grade = "F"

	assert.Equal(t, "A", s.Courses[0].Grade, "clones must not share course slices")
}

func TestCloneSemesters(t *testing.T) {
	in := []Semester{NewSemester("Fall 2023")}
	in[0].Courses = []Course{NewCourse("CS1301", "Intro to Computing", "A", 3)}

	out := CloneSemesters(in)
	out[0].Courses[0].Title = "changed"

	assert.Equal(t, "Intro to Computing", in[0].Courses[0].Title)
}
