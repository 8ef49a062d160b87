package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/config"
	"github.com/katalvlaran/kxtabu/greedy"
	"github.com/katalvlaran/kxtabu/tabu"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kxtabu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, tabu.DefaultConfig(), cfg.TabuConfig())
	assert.Equal(t, greedy.Descending, cfg.GreedyOrder())
	_, ok := cfg.Reorder()
	assert.False(t, ok)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
search:
  k: 3
  time_limit: 90s
  tabu_capacity: 4
  seed: 42
  reorder: descending
greedy:
  retention: 0.5
  order: ascending
jumpstart:
  budget: 2s
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	tc := cfg.TabuConfig()
	assert.Equal(t, 3, tc.K)
	assert.Equal(t, 90*time.Second, tc.TimeLimit)
	assert.Equal(t, 4, tc.TabuCapacity)
	assert.Equal(t, int64(42), tc.Seed)
	assert.Equal(t, tabu.DefaultConfig().SampleStep, tc.SampleStep, "untouched fields keep defaults")
	assert.NoError(t, tc.Validate())

	assert.Equal(t, 0.5, cfg.Greedy.Retention)
	assert.Equal(t, greedy.Ascending, cfg.GreedyOrder())
	assert.Equal(t, 2*time.Second, cfg.JumpStart.Budget)
	ord, ok := cfg.Reorder()
	assert.True(t, ok)
	assert.Equal(t, compat.Descending, ord)

	// retention, pool, order, budget, seed
	assert.Len(t, cfg.JumpStartOptions(), 5)
	assert.Len(t, cfg.OracleOptions(), 2)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "search:\n  bogus: 1\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "search:\n  k: 1\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "K", verrs[0].Field())

	_, err = config.Load(writeFile(t, "greedy:\n  order: sideways\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "oracle:\n  pool_gap: 1.5\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_Env(t *testing.T) {
	path := writeFile(t, "search:\n  k: 3\n")
	t.Setenv("KXTABU_K", "5")
	t.Setenv("KXTABU_TIME_LIMIT", "10s")
	t.Setenv("KXTABU_ORACLE_POOL_GAP", "0.25")
	t.Setenv("KXTABU_LOG_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.K, "environment wins over the file")
	assert.Equal(t, 10*time.Second, cfg.Search.TimeLimit)
	assert.Equal(t, 0.25, cfg.Oracle.PoolGap)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("KXTABU_SEED", "abc")
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrBadEnv)
}

func TestLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"
	var buf bytes.Buffer
	l, err := cfg.Logger(&buf)
	require.NoError(t, err)
	l.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
