package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds process settings for a tri-peaks session.
type Config struct {
	LevelPath string
	Seed      uint64 // 0 = time-derived
	StockSize int

	ShrinkFactor float64
	RowTolerance float64
	Strict       bool

	LogLevel  logrus.Level
	LogFormat string // "text" or "json"
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	o := engine.DefaultOcclusion()
	return Config{
		LevelPath:    "level1.json",
		StockSize:    24,
		ShrinkFactor: o.ShrinkFactor,
		RowTolerance: o.RowTolerance,
		LogLevel:     logrus.InfoLevel,
		LogFormat:    "text",
	}
}

// Load reads an optional .env file from the working directory and then the
// TRIPEAKS_* environment variables. A missing .env is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only.
func FromEnv() (Config, error) {
	c := Default()
	if v, ok := os.LookupEnv("TRIPEAKS_LEVEL_PATH"); ok {
		c.LevelPath = v
	}

	var err error
	if c.Seed, err = envUint("TRIPEAKS_SEED", c.Seed); err != nil {
		return Config{}, err
	}
	if c.StockSize, err = envInt("TRIPEAKS_STOCK_SIZE", c.StockSize); err != nil {
		return Config{}, err
	}
	if c.ShrinkFactor, err = envFloat("TRIPEAKS_SHRINK_FACTOR", c.ShrinkFactor); err != nil {
		return Config{}, err
	}
	if c.ShrinkFactor <= 0 || c.ShrinkFactor > 1 {
		return Config{}, fmt.Errorf("TRIPEAKS_SHRINK_FACTOR must be in (0,1], got %v", c.ShrinkFactor)
	}
	if c.RowTolerance, err = envFloat("TRIPEAKS_ROW_TOLERANCE", c.RowTolerance); err != nil {
		return Config{}, err
	}
	if c.RowTolerance < 0 {
		return Config{}, fmt.Errorf("TRIPEAKS_ROW_TOLERANCE must be >= 0, got %v", c.RowTolerance)
	}
	if v, ok := os.LookupEnv("TRIPEAKS_STRICT"); ok {
		if c.Strict, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("invalid TRIPEAKS_STRICT: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRIPEAKS_LOG_LEVEL"); ok {
		if c.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("invalid TRIPEAKS_LOG_LEVEL: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRIPEAKS_LOG_FORMAT"); ok {
		v = strings.ToLower(v)
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("invalid TRIPEAKS_LOG_FORMAT %q", v)
		}
		c.LogFormat = v
	}
	return c, nil
}

// Rules returns the engine rule set for this configuration.
func (c Config) Rules() engine.Rules {
	r := engine.DefaultRules()
	r.Occlusion = engine.Occlusion{ShrinkFactor: c.ShrinkFactor, RowTolerance: c.RowTolerance}
	r.StrictInvariants = c.Strict
	return r
}

// ConfigureLogger applies level and format to l.
func (c Config) ConfigureLogger(l *logrus.Logger) {
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envUint(key string, def uint64) (uint64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
