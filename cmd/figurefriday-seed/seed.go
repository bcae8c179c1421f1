package main

import (
	"fmt"

	"figurefriday/internal/core/survey"
	"figurefriday/internal/platform/config"
	"figurefriday/internal/platform/logger"
	"figurefriday/internal/platform/store"
	surveyrepo "figurefriday/internal/services/api/survey/repo"
	violationsrepo "figurefriday/internal/services/api/violations/repo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedSurveyCmd = &cobra.Command{
	Use:   "seed-survey",
	Short: "Copy the survey CSV into the ClickHouse survey_responses table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := store.ConfigFrom(config.New(), "seed")
		if !cfg.CH.Enabled {
			return fmt.Errorf("SERVICE_CLICKHOUSE_DBURL is not set")
		}
		cfg.PG.Enabled, cfg.Redis.Enabled = false, false

		ds, err := surveyrepo.NewCSV(surveyCSV, survey.MustDefault()).Load(cmd.Context())
		if err != nil {
			return err
		}
		st, err := store.Open(cmd.Context(), cfg, store.WithLogger(*logger.Get()))
		if err != nil {
			return err
		}
		defer func() { _ = st.Close(cmd.Context()) }()

		n, err := surveyrepo.Seed(cmd.Context(), st.CH, ds.Respondents)
		if err != nil {
			return err
		}
		_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "survey: %d rows written for %d respondents\n", n, len(ds.Respondents))
		return nil
	},
}

var seedViolationsCmd = &cobra.Command{
	Use:   "seed-violations",
	Short: "Replace the Postgres violation_snapshot table with the JSON snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := store.ConfigFrom(config.New(), "seed")
		if !cfg.PG.Enabled {
			return fmt.Errorf("SERVICE_PGSQL_DBURL is not set")
		}
		cfg.CH.Enabled, cfg.Redis.Enabled = false, false

		snap, err := violationsrepo.NewFile(violationJSON).Load(cmd.Context())
		if err != nil {
			return err
		}
		st, err := store.Open(cmd.Context(), cfg, store.WithLogger(*logger.Get()))
		if err != nil {
			return err
		}
		defer func() { _ = st.Close(cmd.Context()) }()

		n, err := violationsrepo.Seed(cmd.Context(), st.PG, snap.Items)
		if err != nil {
			return err
		}
		_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "violations: %d records written\n", n)
		return nil
	},
}
