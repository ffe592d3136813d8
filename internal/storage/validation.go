package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/academica/gradeflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidSemester = errors.New("invalid semester")
	ErrInvalidCourse   = errors.New("invalid course")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSemester validates a semester record before it touches the database.
func validateSemester(s *model.Semester) error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidSemester)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSemester)
	}
	for i := range s.Courses {
		if err := validateCourse(&s.Courses[i]); err != nil {
			return fmt.Errorf("course at index %d: %w", i, err)
		}
	}
	return nil
}

// validateCourse rejects records the calculator would otherwise silently
// zero out: bad credits never reach the engine.
func validateCourse(c *model.Course) error {
	if c.UID == "" {
		return fmt.Errorf("%w: missing UID", ErrInvalidCourse)
	}
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("%w: missing code", ErrInvalidCourse)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidCourse)
	}
	if err := validateCredits(c.Credits); err != nil {
		return err
	}
	return nil
}

// validateCredits enforces the host-side contract: credits are finite and
// non-negative by the time they reach the grade calculator.
func validateCredits(credits float64) error {
	if math.IsNaN(credits) || math.IsInf(credits, 0) || credits < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCourse, credits)
	}
	return nil
}
