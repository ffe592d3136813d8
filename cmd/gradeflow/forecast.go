package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/academica/gradeflow/internal/cli"
	"github.com/academica/gradeflow/internal/common"
	"github.com/academica/gradeflow/internal/forecast"
	"github.com/academica/gradeflow/internal/term"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project cumulative GPA into future terms",
		Long: `Project cumulative GPA forward with damped-trend smoothing over the
completed semesters on record.

The projection starts at the last fully-graded semester, covers any
in-progress semesters, and then extends through synthetic future Fall and
Spring terms up to the horizon. Both cutoffs are configurable:

  forecast.horizon     max steps projected past the last completed semester
  forecast.final_term  optional calendar stop, e.g. "Spring 2027"`,
		RunE: runForecast,
	}

	cmd.Flags().Int("horizon", 0, "max projection steps (overrides forecast.horizon)")
	cmd.Flags().String("final-term", "", "stop projecting after this term (overrides forecast.final_term)")
	_ = viper.BindPFlag("forecast.horizon", cmd.Flags().Lookup("horizon"))
	_ = viper.BindPFlag("forecast.final_term", cmd.Flags().Lookup("final-term"))

	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := forecast.DefaultConfig()
	if h := viper.GetInt("forecast.horizon"); h > 0 {
		cfg.Horizon = h
	}
	if label := viper.GetString("forecast.final_term"); label != "" {
		t, ok := term.ParseLabel(label)
		if !ok {
			return common.NewUserError(
				fmt.Sprintf("cannot parse final term %q (expected e.g. \"Spring 2027\")", label),
				common.ErrInvalidConfig)
		}
		cfg.FinalTerm = t
	}

	store, err := initStorage(ctx)
	if err != nil {
		return common.NewUserError("failed to open database", err)
	}
	defer func() { _ = store.Close() }()

	semesters, err := store.ListSemesters(ctx)
	if err != nil {
		return common.NewUserError("failed to load semesters", err)
	}

	points := forecast.Forecast(semesters, cfg)
	fmt.Println(cli.RenderForecast(points))

	return nil
}
