package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/academica/gradeflow/internal/cli"
	"github.com/academica/gradeflow/internal/common"
	"github.com/academica/gradeflow/internal/organizer"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show semesters grouped by academic year",
		Long: `Show every recorded semester grouped into academic-year sections
(Freshman, Sophomore, ...) with Summer terms slotted between years, plus
each semester's credits, grade points, and GPA.

Semesters with any ungraded course are flagged: their own GPA still shows,
but they stay out of the cumulative numbers until every grade lands.`,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
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

	sections := organizer.Organize(semesters)
	fmt.Println(cli.RenderSections(sections))

	return nil
}
