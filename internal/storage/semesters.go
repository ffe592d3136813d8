package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/academica/gradeflow/internal/common"
	"github.com/academica/gradeflow/internal/grades"
	"github.com/academica/gradeflow/internal/model"
)

// SaveSemester inserts or replaces a semester and its courses. Derived
// fields are not stored; they are recomputed on load.
func (s *SQLiteStorage) SaveSemester(ctx context.Context, semester model.Semester) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSemester(&semester); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// New semesters append to the end; existing ones keep their slot.
	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT position FROM semesters WHERE id = ?`, semester.ID).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM semesters`).Scan(&position)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve semester position: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO semesters (id, name, position) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		semester.ID, semester.Name, position); err != nil {
		return fmt.Errorf("failed to save semester: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM courses WHERE semester_id = ?`, semester.ID); err != nil {
		return fmt.Errorf("failed to clear courses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO courses (uid, semester_id, code, class_number, title, grade, credits, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range semester.Courses {
		if _, err = stmt.ExecContext(ctx,
			c.UID, semester.ID, c.Code, c.ClassNumber, c.Title, c.Grade, c.Credits, i); err != nil {
			return fmt.Errorf("failed to save course %s: %w", c.Code, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	slog.Debug("saved semester",
		"semester", semester.Name,
		"courses", len(semester.Courses))

	return nil
}

// ListSemesters returns all semesters with their courses in stored order.
// Grade points and semester totals are rederived through the calculator so
// stored data can never drift from the grade table.
func (s *SQLiteStorage) ListSemesters(ctx context.Context) ([]model.Semester, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM semesters ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query semesters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var semesters []model.Semester
	for rows.Next() {
		var sem model.Semester
		if err := rows.Scan(&sem.ID, &sem.Name); err != nil {
			return nil, fmt.Errorf("failed to scan semester: %w", err)
		}
		semesters = append(semesters, sem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate semesters: %w", err)
	}

	for i := range semesters {
		courses, err := s.coursesFor(ctx, semesters[i].ID)
		if err != nil {
			return nil, err
		}
		semesters[i].Courses = courses
		semesters[i] = grades.Recalculate(semesters[i])
	}

	return semesters, nil
}

// GetSemesterByName finds a semester by its term label.
func (s *SQLiteStorage) GetSemesterByName(ctx context.Context, name string) (model.Semester, error) {
	if err := validateContext(ctx); err != nil {
		return model.Semester{}, err
	}
	if err := validateString(name, "name"); err != nil {
		return model.Semester{}, err
	}

	var sem model.Semester
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM semesters WHERE name = ?`, name).Scan(&sem.ID, &sem.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Semester{}, common.ErrNotFound
	}
	if err != nil {
		return model.Semester{}, fmt.Errorf("failed to query semester: %w", err)
	}

	courses, err := s.coursesFor(ctx, sem.ID)
	if err != nil {
		return model.Semester{}, err
	}
	sem.Courses = courses

	return grades.Recalculate(sem), nil
}

// DeleteSemester removes a semester and its courses.
func (s *SQLiteStorage) DeleteSemester(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM courses WHERE semester_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete courses: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM semesters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete semester: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return tx.Commit()
}

// UpdateCourseGrade sets a course's grade.
func (s *SQLiteStorage) UpdateCourseGrade(ctx context.Context, uid, grade string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(uid, "uid"); err != nil {
		return err
	}

	return s.updateCourse(ctx, uid, `UPDATE courses SET grade = ? WHERE uid = ?`, grade)
}

// UpdateCourseCredits sets a course's credit hours, rejecting values the
// calculator contract forbids.
func (s *SQLiteStorage) UpdateCourseCredits(ctx context.Context, uid string, credits float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(uid, "uid"); err != nil {
		return err
	}
	if err := validateCredits(credits); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidCredits, credits)
	}

	return s.updateCourse(ctx, uid, `UPDATE courses SET credits = ? WHERE uid = ?`, credits)
}

func (s *SQLiteStorage) updateCourse(ctx context.Context, uid, query string, value any) error {
	res, err := s.db.ExecContext(ctx, query, value, uid)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) coursesFor(ctx context.Context, semesterID string) ([]model.Course, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uid, code, class_number, title, grade, credits
		 FROM courses WHERE semester_id = ? ORDER BY position`, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.UID, &c.Code, &c.ClassNumber, &c.Title, &c.Grade, &c.Credits); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}

	return courses, nil
}
