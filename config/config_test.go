package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/conlog/console"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
level: verbose2
async: false
color: never
timestamps: true
level_tags: true
level_colors:
  info: cyan
`))
	require.NoError(t, err)

	assert.Equal(t, core.Verbose2Level, cfg.Level)
	assert.False(t, cfg.Async)
	assert.Equal(t, console.ColorNever, cfg.Color)
	assert.True(t, cfg.Timestamps)
	assert.True(t, cfg.LevelTags)
	assert.Equal(t, map[string]string{"info": "cyan"}, cfg.LevelColors)
	assert.NoError(t, cfg.Validate())
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("timestamps: true\n"))
	require.NoError(t, err)

	assert.Equal(t, core.InfoLevel, cfg.Level)
	assert.True(t, cfg.Async)
	assert.Equal(t, console.ColorAuto, cfg.Color)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("level: loud\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("color: sometimes\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envOf(map[string]string{
		EnvLevel: "warn",
		EnvAsync: "false",
		EnvColor: "always",
	}))
	require.NoError(t, err)

	assert.Equal(t, core.WarningLevel, cfg.Level)
	assert.False(t, cfg.Async)
	assert.Equal(t, console.ColorAlways, cfg.Color)
}

func TestApplyEnv_ReportsEveryBadValue(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envOf(map[string]string{
		EnvLevel: "loud",
		EnvAsync: "maybe",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLevel)
	assert.Contains(t, err.Error(), EnvAsync)
	assert.Equal(t, core.InfoLevel, cfg.Level, "bad values must not change the config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LevelColors = map[string]string{"loud": "red", "info": "purple"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "purple")

	cfg = Default()
	cfg.Level = core.Level(42)
	assert.Error(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: error\nasync: false\n"), 0o600))
	t.Setenv(EnvLevel, "verbose1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, core.Verbose1Level, cfg.Level, "environment overrides the file")
	assert.False(t, cfg.Async)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, core.InfoLevel, cfg.Level)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: [\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestBuilder(t *testing.T) {
	cfg := Default()
	cfg.Async = false
	cfg.Color = console.ColorAlways
	cfg.LevelTags = true
	cfg.LevelColors = map[string]string{"info": "green"}
	require.NoError(t, cfg.ApplyEnv(noEnv))

	b, err := cfg.Builder()
	require.NoError(t, err)

	var buf bytes.Buffer
	c := b.WithWriter(&buf).Build()
	require.NoError(t, logger.New(c).Info("hi"))

	assert.Equal(t, core.Green, c.LevelColor(core.InfoLevel))
	assert.Equal(t, "\x1b[32m[INFO] hi\n\x1b[0m", buf.String())
}
