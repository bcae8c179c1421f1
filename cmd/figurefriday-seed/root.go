package main

import (
	"figurefriday/internal/platform/config"
	"figurefriday/internal/services/api/survey/repo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	violationsrepo "figurefriday/internal/services/api/violations/repo"
)

// Global flag values
var (
	surveyCSV     string
	violationJSON string
	envFiles      []string
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:   "figurefriday-seed",
	Short: "Validate and load the dashboard datasets",
	Long: `figurefriday-seed reads the steak survey CSV and the parking violation
snapshot, checks them the same way the API does at startup, and can copy them
into ClickHouse (survey_responses) and Postgres (violation_snapshot).

Connection settings come from SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*; a .env
file in the working directory is read first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if _, err := config.LoadDotenv(envFiles...); err != nil {
			return err
		}
		// flags win over DATA_* which win over the defaults
		data := config.New().Prefix("DATA_")
		if !cmd.Flags().Changed("survey-csv") {
			surveyCSV = data.MayString("SURVEY_CSV", surveyCSV)
		}
		if !cmd.Flags().Changed("violations-file") {
			violationJSON = data.MayString("VIOLATIONS_FILE", violationJSON)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&surveyCSV, "survey-csv", repo.DefaultCSVPath, "survey CSV export (DATA_SURVEY_CSV)")
	rootCmd.PersistentFlags().StringVar(&violationJSON, "violations-file", violationsrepo.DefaultFile, "violation snapshot JSON (DATA_VIOLATIONS_FILE)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(seedSurveyCmd)
	rootCmd.AddCommand(seedViolationsCmd)
}
