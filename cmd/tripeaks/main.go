// Package main provides a line-oriented terminal driver for a tri-peaks
// session. Commands are read from stdin; events are written to stdout as
// JSON lines and logs go to stderr.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/jason-s-yu/tripeaks/internal/config"
	"github.com/jason-s-yu/tripeaks/internal/game"
	"github.com/jason-s-yu/tripeaks/internal/level"
	"github.com/sirupsen/logrus"
)

var (
	envFile   string
	levelPath string
	seed      uint64
)

func init() {
	flag.StringVar(&envFile, "env", ".env", "Optional .env file with TRIPEAKS_* settings")
	flag.StringVar(&levelPath, "level", "", "Level file (overrides TRIPEAKS_LEVEL_PATH)")
	flag.Uint64Var(&seed, "seed", 0, "Seed for generated levels (overrides TRIPEAKS_SEED)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if levelPath != "" {
		cfg.LevelPath = levelPath
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	cfg.ConfigureLogger(logger)
	log := logrus.NewEntry(logger)

	if err := run(cfg, os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("tripeaks exited")
	}
}

// run drives one session from in until quit or EOF.
func run(cfg config.Config, in io.Reader, out io.Writer, log *logrus.Entry) error {
	src := level.NewSource(cfg.LevelPath, cfg.Seed, cfg.StockSize, log)
	s, err := game.NewSession(src, cfg.Rules(), log)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	s.BroadcastFn = func(ev game.GameEvent) {
		if err := enc.Encode(ev); err != nil {
			log.WithError(err).Error("Failed to write event.")
		}
	}
	s.OnGameEnd = func(id uuid.UUID, status engine.Status) {
		fmt.Fprintf(out, "{\"gameOver\":%q}\n", status.String())
		log.WithFields(logrus.Fields{"session": id, "status": status}).Debug("End callback fired.")
	}
	s.Sync()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		c, err := parseCommand(sc.Text())
		if err != nil {
			fmt.Fprintf(out, "{\"error\":%q}\n", err.Error())
			continue
		}
		switch c.kind {
		case cmdNone:
		case cmdQuit:
			return nil
		case cmdState:
			s.Sync()
		default:
			if _, err := s.HandleInput(c.input); err != nil {
				fmt.Fprintf(out, "{\"error\":%q}\n", err.Error())
			}
		}
	}
	return sc.Err()
}
