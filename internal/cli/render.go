package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/academica/gradeflow/internal/model"
)

// RenderSections renders organized semester sections as styled tables, one
// block per section, with each semester's totals and an in-progress flag for
// semesters excluded from cumulative math.
func RenderSections(sections []model.SemesterSection) string {
	if len(sections) == 0 {
		return SubtleStyle.Render("No semesters recorded yet.")
	}

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(TitleStyle.Render(section.Label))
		b.WriteString("\n")
		b.WriteString(renderSectionTable(section))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSectionTable(section model.SemesterSection) string {
	t := newTable("Semester", "Courses", "Credits", "Grade Points", "GPA", "")
	for _, s := range section.Semesters {
		flag := ""
		if !s.IncludeInOverallGPA {
			flag = WarningStyle.Render("in progress")
		}
		t.Row(
			s.Name,
			fmt.Sprintf("%d", len(s.Courses)),
			formatCredits(s.TotalCredits),
			fmt.Sprintf("%.2f", s.TotalGradePoints),
			fmt.Sprintf("%.2f", s.GPA),
			flag,
		)
	}
	return t.Render()
}

// RenderForecast renders the GPA timeline: actual, cumulative, and projected
// values per term, with dashes for absent values.
func RenderForecast(points []model.ForecastPoint) string {
	if len(points) == 0 {
		return SubtleStyle.Render("Nothing to forecast yet.")
	}

	t := newTable("Term", "Year", "GPA", "Cumulative", "Projected")
	for _, p := range points {
		t.Row(
			p.Term,
			p.YearLevel,
			formatNullable(p.GPA),
			formatNullable(p.CumulativeGPA),
			formatNullable(p.ProjectedGPA),
		)
	}
	return t.Render()
}

// RenderCourses renders one semester's course list.
func RenderCourses(s model.Semester) string {
	t := newTable("Code", "Title", "Grade", "Credits", "Grade Points")
	for _, c := range s.Courses {
		grade := c.Grade
		if grade == "" {
			grade = SubtleStyle.Render("—")
		}
		t.Row(c.Code, c.Title, grade, formatCredits(c.Credits), fmt.Sprintf("%.2f", c.GradePoints))
	}
	return t.Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Headers(headers...)
}

func formatNullable(v *float64) string {
	if v == nil {
		return SubtleStyle.Render("—")
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatCredits(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
