package main

import (
	"fmt"

	"figurefriday/internal/core/survey"
	"figurefriday/internal/services/api/survey/repo"
	violationsrepo "figurefriday/internal/services/api/violations/repo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse both datasets and report what the API would load",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var failed int

	ds, err := repo.NewCSV(surveyCSV, survey.MustDefault()).Load(ctx)
	if err != nil {
		failed++
		_, _ = bad.Fprintf(errOut, "survey     %s\n", err)
	} else {
		_, _ = ok.Fprintf(out, "survey     %d respondents", len(ds.Respondents))
		_, _ = dim.Fprintf(out, "  version %s\n", ds.Version)
	}

	snap, err := violationsrepo.NewFile(violationJSON).Load(ctx)
	if err != nil {
		failed++
		_, _ = bad.Fprintf(errOut, "violations %s\n", err)
	} else {
		_, _ = ok.Fprintf(out, "violations %d records", len(snap.Items))
		_, _ = dim.Fprintf(out, "  version %s\n", snap.Version)
	}

	if failed > 0 {
		return fmt.Errorf("%d dataset(s) failed validation", failed)
	}
	return nil
}
