// Package model defines the plain value records the engine operates on.
package model

import "github.com/google/uuid"

// Course represents a single course row on an academic record.
type Course struct {
	UID         string // unique identity, never derived from content
	Code        string // course code, e.g. "MATH2410"
	ClassNumber string // registrar class number, if the transcript carried one
	Title       string
	Grade       string // letter grade or an in-progress marker
	Credits     float64
	GradePoints float64 // Credits * grade value; 0 while in progress
}

// NewCourse creates a course with a fresh UID. Duplicate course codes stay
// distinguishable because identity is random, not content-derived.
func NewCourse(code, title, grade string, credits float64) Course {
	return Course{
		UID:     uuid.NewString(),
		Code:    code,
		Title:   title,
		Grade:   grade,
		Credits: credits,
	}
}

// Clone returns an independent copy of the course.
func (c Course) Clone() Course {
	return c
}
