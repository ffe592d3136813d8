package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/academica/gradeflow/internal/cli"
	"github.com/academica/gradeflow/internal/common"
)

func coursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Edit course records",
	}

	cmd.AddCommand(coursesSetGradeCmd())
	cmd.AddCommand(coursesSetCreditsCmd())

	return cmd
}

func coursesSetGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-grade [course-uid] [grade]",
		Short: "Set a course's letter grade",
		Long: `Set a course's letter grade. Use a letter grade (A+ through F) for a
final mark, or an in-progress marker ("", IP, TBD, NG, PENDING) while the
grade is still out. Semester totals are rederived on the next read.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return common.NewUserError("failed to open database", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateCourseGrade(ctx, args[0], args[1]); err != nil {
				return common.NewUserError("failed to update grade", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Grade set to %q", args[1])))
			return nil
		},
	}
}

func coursesSetCreditsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-credits [course-uid] [credits]",
		Short: "Set a course's credit hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			credits, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return common.NewUserError(
					fmt.Sprintf("credits must be a number, got %q", args[1]),
					common.ErrInvalidCredits)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return common.NewUserError("failed to open database", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateCourseCredits(ctx, args[0], credits); err != nil {
				return common.NewUserError("failed to update credits", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Credits set to %s", args[1])))
			return nil
		},
	}
}
