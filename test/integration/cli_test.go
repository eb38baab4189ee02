package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/config"
	"github.com/rpgo/savings-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	// Load configuration
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	// Run calculations
	engine := calculation.NewProjectionEngine()
	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)

	// Reports are written to the working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	for _, format := range []string{"console", "json", "csv", "html", "all"} {
		files, err := output.GenerateReport(results, format)
		assert.NoError(t, err, format)
		for _, f := range files {
			fi, err := os.Stat(filepath.Join(dir, f))
			if assert.NoError(t, err, f) {
				assert.NotZero(t, fi.Size(), f)
			}
		}
	}

	_, err = output.GenerateReport(results, "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestExampleConfigurationRuns(t *testing.T) {
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, output.SaveConfiguration(parser.CreateExampleConfiguration(nil), path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	results, err := calculation.NewProjectionEngine().RunScenarios(cfg)
	require.NoError(t, err)
	assert.Len(t, results.Scenarios, 4)
	assert.NotEmpty(t, results.BestForReal)
}
