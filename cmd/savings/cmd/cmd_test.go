package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeExample(t *testing.T, loc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := execute(t, "example", "-o", path, "--locale", loc)
	require.NoError(t, err)
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "savings version "+version)
}

func TestExampleAndValidate(t *testing.T) {
	path := writeExample(t, "en-US")

	out, err := execute(t, "validate", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid: 4 scenario(s)")
	assert.Contains(t, out, "Continuous Growth")
}

func TestRunCommand(t *testing.T) {
	path := writeExample(t, "India")

	out, err := execute(t, "run", "-c", path, "-f", "console-lite", "--locale", "ja-JP")
	require.NoError(t, err)
	assert.Contains(t, out, "SAVINGS SCENARIO SUMMARY")
	assert.Contains(t, out, "¥")

	report := filepath.Join(t.TempDir(), "out.csv")
	out, err = execute(t, "run", "-c", path, "-f", "csv", "-o", report, "--locale", "")
	require.NoError(t, err)
	assert.Contains(t, out, report)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,HorizonYears"))
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "-o", "", "--locale", "")
	assert.Error(t, err)

	path := writeExample(t, "en-US")
	_, err = execute(t, "run", "-c", path, "--locale", "fr-FR")
	assert.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	path := writeExample(t, "en-US")

	out, err := execute(t, "sweep", "-c", path, "--scenario", "Annual Raise", "--field", "return",
		"--from", "0.05", "--to", "0.07", "--step", "0.01", "-f", "table", "-o", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Sweep of return for Annual Raise")
	assert.Contains(t, out, "5.00%")
	assert.Contains(t, out, "7.00%")

	dir := filepath.Join(t.TempDir(), "sweep")
	_, err = execute(t, "sweep", "-c", path, "--scenario", "", "--field", "inflation",
		"--from", "0.02", "--to", "0.04", "--step", "0.01", "-f", "csv", "-o", dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "sweep_summary.csv"))
	assert.NoError(t, err)

	_, err = execute(t, "sweep", "-c", path, "--scenario", "Nope", "-f", "table", "-o", "")
	assert.ErrorContains(t, err, `scenario "Nope" not found`)
}
