package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func fixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "survey.csv")
	jsonPath := filepath.Join(dir, "violations.json")
	require.NoError(t, os.WriteFile(csvPath, []byte("RespondentID,Age\n1,18-29\n2,30-44\n"), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"code": 0, "total_count": 1}]`), 0o600))
	return csvPath, jsonPath
}

func TestValidate_OK(t *testing.T) {
	csvPath, jsonPath := fixtures(t)
	out, _, err := execute(t, "validate", "--survey-csv", csvPath, "--violations-file", jsonPath)
	require.NoError(t, err)
	assert.Contains(t, out, "survey     2 respondents")
	assert.Contains(t, out, "violations 1 records")
}

func TestValidate_ReportsBrokenDataset(t *testing.T) {
	csvPath, _ := fixtures(t)
	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`[{"code": 3, "total_count": -2}]`), 0o600))

	out, errOut, err := execute(t, "validate", "--survey-csv", csvPath, "--violations-file", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 dataset(s) failed")
	assert.Contains(t, out, "survey     2 respondents")
	assert.Contains(t, errOut, "total_count is negative")
}

func TestSeed_RequiresConnection(t *testing.T) {
	csvPath, jsonPath := fixtures(t)
	t.Setenv("SERVICE_PGSQL_DBURL", "")
	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "")

	_, _, err := execute(t, "seed-violations", "--violations-file", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVICE_PGSQL_DBURL")

	_, _, err = execute(t, "seed-survey", "--survey-csv", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVICE_CLICKHOUSE_DBURL")
}
