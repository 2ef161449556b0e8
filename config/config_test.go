// Package config_test verifies loading and validation of YAML and TOML defaults files.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rcmb/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestDefault_IsValid guards the built-in defaults against tag drift.
func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "e3", cfg.Combine.Series)
	assert.Equal(t, 10000.0, cfg.Divider.TotalMin)
}

// TestLoad_YAML overrides a subset of keys and keeps the rest.
func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "rcmb.yaml", `
log_level: debug
format: json
combine:
  series: e24
  num_elems_max: 4
divider:
  total_min: 1000
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "e24", cfg.Combine.Series)
	assert.Equal(t, 4, cfg.Combine.NumElemsMax)
	assert.Equal(t, 1, cfg.Combine.NumElemsMin, "untouched key keeps its default")
	assert.Equal(t, 1000.0, cfg.Divider.TotalMin)
	assert.Equal(t, 100000.0, cfg.Divider.TotalMax)
}

// TestLoad_TOML mirrors the YAML case.
func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "rcmb.toml", `
jobs = 4

[combine]
topology = "series"
tol_min = -5.0
tol_max = 5.0
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "series", cfg.Combine.Topology)
	assert.Equal(t, -5.0, cfg.Combine.TolMin)
	assert.Equal(t, 5.0, cfg.Combine.TolMax)
}

// TestLoad_Empty keeps every default.
func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_Errors covers every rejection path.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name, file, body string
	}{
		{"extension", "rcmb.json", `{}`},
		{"yaml syntax", "bad.yaml", "combine: [\n"},
		{"yaml unknown key", "bad.yaml", "colour: red\n"},
		{"toml unknown key", "bad.toml", "colour = \"red\"\n"},
		{"bad format", "bad.yaml", "format: xml\n"},
		{"bad topology", "bad.toml", "[divider]\ntopology = \"mesh\"\n"},
		{"element order", "bad.yaml", "combine:\n  num_elems_min: 5\n  num_elems_max: 2\n"},
		{"too many elements", "bad.yaml", "combine:\n  num_elems_max: 16\n"},
		{"positive tol_min", "bad.yaml", "divider:\n  tol_min: 10\n"},
		{"total order", "bad.toml", "[divider]\ntotal_min = 5000.0\ntotal_max = 10.0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
