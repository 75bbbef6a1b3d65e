package config

import (
	"os"
	"path/filepath"
	"testing"

	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TRIPEAKS_LEVEL_PATH", "TRIPEAKS_SEED", "TRIPEAKS_STOCK_SIZE",
		"TRIPEAKS_SHRINK_FACTOR", "TRIPEAKS_ROW_TOLERANCE", "TRIPEAKS_STRICT",
		"TRIPEAKS_LOG_LEVEL", "TRIPEAKS_LOG_FORMAT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, engine.DefaultRules(), c.Rules())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPEAKS_LEVEL_PATH", "levels/peaks.yaml")
	t.Setenv("TRIPEAKS_SEED", "99")
	t.Setenv("TRIPEAKS_STOCK_SIZE", "12")
	t.Setenv("TRIPEAKS_SHRINK_FACTOR", "0.5")
	t.Setenv("TRIPEAKS_ROW_TOLERANCE", "4")
	t.Setenv("TRIPEAKS_STRICT", "true")
	t.Setenv("TRIPEAKS_LOG_LEVEL", "debug")
	t.Setenv("TRIPEAKS_LOG_FORMAT", "JSON")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "levels/peaks.yaml", c.LevelPath)
	assert.Equal(t, uint64(99), c.Seed)
	assert.Equal(t, 12, c.StockSize)
	assert.Equal(t, logrus.DebugLevel, c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)

	r := c.Rules()
	assert.Equal(t, engine.Occlusion{ShrinkFactor: 0.5, RowTolerance: 4}, r.Occlusion)
	assert.True(t, r.StrictInvariants)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"TRIPEAKS_SEED":          "-1",
		"TRIPEAKS_STOCK_SIZE":    "many",
		"TRIPEAKS_SHRINK_FACTOR": "1.5",
		"TRIPEAKS_ROW_TOLERANCE": "-3",
		"TRIPEAKS_STRICT":        "sometimes",
		"TRIPEAKS_LOG_LEVEL":     "loud",
		"TRIPEAKS_LOG_FORMAT":    "xml",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TRIPEAKS_STOCK_SIZE=7\nTRIPEAKS_LEVEL_PATH=custom.json\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("TRIPEAKS_STOCK_SIZE")
		os.Unsetenv("TRIPEAKS_LEVEL_PATH")
	})

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.StockSize)
	assert.Equal(t, "custom.json", c.LevelPath)
}

func TestLoadMissingDotEnv(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestConfigureLogger(t *testing.T) {
	l := logrus.New()
	c := Default()
	c.LogLevel = logrus.WarnLevel
	c.LogFormat = "json"
	c.ConfigureLogger(l)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}
