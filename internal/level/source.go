package level

import (
	"math/rand/v2"
	"time"

	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/sirupsen/logrus"
)

// Source hands out level configs: the configured file when it is usable,
// otherwise a generated pyramid.
type Source struct {
	Path      string // empty means always generate
	StockSize int

	rng *rand.Rand
	log *logrus.Entry
}

// NewSource returns a source reading path. A zero seed is replaced with a
// time-derived one.
func NewSource(path string, seed uint64, stockSize int, log *logrus.Entry) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Source{
		Path:      path,
		StockSize: stockSize,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:       log.WithField("level_path", path),
	}
}

// Next returns the level for a new game. It never fails: unreadable,
// malformed or empty level files fall back to a generated pyramid.
func (s *Source) Next() engine.LevelConfig {
	if s.Path == "" {
		return s.generate("no level path configured")
	}
	cfg, err := Load(s.Path)
	if err != nil {
		s.log.WithError(err).Warn("Level file unusable, generating default pyramid.")
		return GeneratePyramid(s.rng, s.StockSize)
	}
	if len(cfg.Playfield) == 0 {
		return s.generate("level file has no playfield cards")
	}
	if len(cfg.Stock) == 0 {
		return s.generate("level file has no stack cards")
	}
	s.log.WithFields(logrus.Fields{
		"playfield": len(cfg.Playfield),
		"stock":     len(cfg.Stock),
	}).Debug("Loaded level file.")
	return cfg
}

func (s *Source) generate(reason string) engine.LevelConfig {
	s.log.WithField("reason", reason).Warn("Generating default pyramid.")
	return GeneratePyramid(s.rng, s.StockSize)
}
