package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/academica/gradeflow/internal/cli"
	"github.com/academica/gradeflow/internal/common"
	"github.com/academica/gradeflow/internal/grades"
	"github.com/academica/gradeflow/internal/model"
	"github.com/academica/gradeflow/internal/transcript"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import courses from transcript text files",
		Long: `Import courses from raw transcript text into a semester.

The parser understands both structured transcript dumps (pasted from a
student portal) and the plain 4-line format (code, title, grade, credits,
blank line between courses). Unrecognizable lines are skipped, never fatal.

Examples:
  # Import a pasted transcript into a semester
  gradeflow import --semester "Fall 2024" ~/Downloads/transcript.txt

  # Import every saved dump for a term
  gradeflow import --semester "Spring 2025" ~/transcripts/spring25_*.txt

  # See what would be imported without saving
  gradeflow import --semester "Fall 2024" --dry-run transcript.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringP("semester", "s", "", "semester label to import into (e.g. \"Fall 2024\")")
	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")
	_ = cmd.MarkFlagRequired("semester")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	semesterName, _ := cmd.Flags().GetString("semester")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("🎓 Importing transcripts...",
		"file_count", len(allFiles),
		"semester", semesterName,
		"dry_run", dryRun)

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Parsing transcripts..."),
	)

	var allCourses []model.Course
	fileResults := make(map[string]int)

	for _, filePath := range allFiles {
		data, err := os.ReadFile(filePath)
		if err != nil {
			slog.Error("Failed to read file",
				"file", filePath,
				"error", err)
			_ = bar.Add(1)
			continue
		}

		courses := transcript.Parse(string(data))
		if len(courses) == 0 {
			slog.Warn("No courses found in file",
				"file", filepath.Base(filePath))
			_ = bar.Add(1)
			continue
		}

		allCourses = append(allCourses, courses...)
		fileResults[filepath.Base(filePath)] = len(courses)
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	if len(allCourses) == 0 {
		slog.Warn("No courses found in any file")
		return nil
	}

	fmt.Println("\n📁 Import summary:")
	for file, count := range fileResults {
		fmt.Printf("  - %s: %d courses\n", file, count)
	}

	if dryRun {
		preview := grades.Recalculate(model.Semester{Name: semesterName, Courses: allCourses})
		fmt.Println(cli.RenderCourses(preview))
		slog.Info("🔍 Dry run complete - no data saved")
		return nil
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return common.NewUserError("failed to open database", err)
	}
	defer func() { _ = store.Close() }()

	// Append to the semester if it already exists
	semester, err := store.GetSemesterByName(ctx, semesterName)
	if errors.Is(err, common.ErrNotFound) {
		semester = model.NewSemester(semesterName)
	} else if err != nil {
		return err
	}
	semester.Courses = append(semester.Courses, allCourses...)
	semester = grades.Recalculate(semester)

	if err := store.SaveSemester(ctx, semester); err != nil {
		return common.NewUserError("failed to save semester", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Imported %d courses into %s (GPA %.2f)",
		len(allCourses), semester.Name, semester.GPA)))

	return nil
}
