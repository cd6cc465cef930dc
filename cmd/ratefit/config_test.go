package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratefit.yaml")
	content := `input:
  csv: run1.csv
  time_column: elapsed
  conc_column: conc_fit
output:
  json: analysis.json
  plot: fit.svg
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "run1.csv", cfg.Input.CSV)
	require.Equal(t, "elapsed", cfg.Input.TimeColumn)
	require.Equal(t, "conc_fit", cfg.Input.ConcColumn)
	require.Equal(t, "analysis.json", cfg.Output.JSON)
	require.Equal(t, "fit.svg", cfg.Output.Plot)
	require.True(t, cfg.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}

func TestPromptSeries(t *testing.T) {
	input := "0 50 100 150\n10,0 7.8 6.05 4.72\n"

	s, err := promptSeries(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
	require.Equal(t, 10.0, s.At(0).Conc)
	require.Equal(t, 150.0, s.At(3).Time)
}

func TestPromptSeriesMissingLine(t *testing.T) {
	_, err := promptSeries(strings.NewReader("0 50 100\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "concentration values")
}
