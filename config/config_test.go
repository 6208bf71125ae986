package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/finter/config"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.Cache.Capacity)
	assert.Equal(t, 4, cfg.Formula.Precision)
	assert.Equal(t, 255, cfg.Dataset.MaxNameLen)
	assert.False(t, cfg.Series.Lenient)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
cache:
  capacity: 2
series:
  lenient: true
log:
  level: debug
datasets:
  - name: square
    points: "0,0; 1,1; 2,4"
`))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Cache.Capacity)
	assert.True(t, cfg.Series.Lenient)
	assert.Equal(t, 4, cfg.Formula.Precision, "unset keys keep defaults")
	assert.Equal(t, []config.Seed{{Name: "square", Points: "0,0; 1,1; 2,4"}}, cfg.Datasets)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		yaml    string
		invalid bool
	}{
		"zero capacity":   {yaml: "cache: {capacity: 0}", invalid: true},
		"zero precision":  {yaml: "formula: {precision: 0}", invalid: true},
		"zero name limit": {yaml: "dataset: {max_name_len: 0}", invalid: true},
		"one step":        {yaml: "sample: {steps: 1}", invalid: true},
		"bad level":       {yaml: "log: {level: loud}", invalid: true},
		"unknown key":     {yaml: "cache: {size: 3}"},
		"bad type":        {yaml: "cache: {capacity: many}"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, config.ErrInvalidConfig))
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finter.yaml")
	cfg := config.Default()
	cfg.Cache.Capacity = 7
	cfg.Datasets = []config.Seed{{Name: "line", Points: "0,1; 1,2"}}
	require.NoError(t, config.Save(path, cfg))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, cfg, config.MustLoad(path))
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Panics(t, func() { config.MustLoad(path) })
}
