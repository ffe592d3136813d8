package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/academica/gradeflow/internal/cli"
	"github.com/academica/gradeflow/internal/common"
	"github.com/academica/gradeflow/internal/model"
)

func semestersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semesters",
		Short: "Manage semesters",
	}

	cmd.AddCommand(semestersListCmd())
	cmd.AddCommand(semestersAddCmd())
	cmd.AddCommand(semestersRemoveCmd())

	return cmd
}

func semestersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all semesters with their courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return common.NewUserError("failed to open database", err)
			}
			defer func() { _ = store.Close() }()

			semesters, err := store.ListSemesters(ctx)
			if err != nil {
				return common.NewUserError("failed to load semesters", err)
			}

			if len(semesters) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No semesters recorded yet."))
				return nil
			}

			for _, s := range semesters {
				fmt.Println(cli.TitleStyle.Render(s.Name))
				fmt.Println(cli.RenderCourses(s))
				fmt.Println()
			}

			return nil
		},
	}
}

func semestersAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add an empty semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return common.NewUserError("failed to open database", err)
			}
			defer func() { _ = store.Close() }()

			name := args[0]
			if _, err := store.GetSemesterByName(ctx, name); err == nil {
				return common.NewUserError(
					fmt.Sprintf("semester %q already exists", name),
					common.ErrDuplicateEntry)
			} else if !errors.Is(err, common.ErrNotFound) {
				return err
			}

			semester := model.NewSemester(name)
			if err := store.SaveSemester(ctx, semester); err != nil {
				return common.NewUserError("failed to save semester", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s", name)))
			return nil
		},
	}
}

func semestersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name]",
		Short: "Remove a semester and its courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return common.NewUserError("failed to open database", err)
			}
			defer func() { _ = store.Close() }()

			semester, err := store.GetSemesterByName(ctx, args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(
					fmt.Sprintf("no semester named %q", args[0]), err)
			} else if err != nil {
				return err
			}

			if err := store.DeleteSemester(ctx, semester.ID); err != nil {
				return common.NewUserError("failed to delete semester", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %s", semester.Name)))
			return nil
		},
	}
}
