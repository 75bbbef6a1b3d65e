// Package level turns level files into engine level configs and supplies a
// generated pyramid when a file is missing or unusable.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	engine "github.com/jason-s-yu/tripeaks/engine"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned for level files that decode but hold values
// outside the card ranges.
var ErrMalformed = errors.New("malformed level file")

// Position is a playfield coordinate in a level file.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CardData is one card in a level file. CardFace is zero-based (0 = Ace).
type CardData struct {
	CardFace int       `json:"CardFace" yaml:"CardFace"`
	CardSuit int       `json:"CardSuit" yaml:"CardSuit"`
	Position *Position `json:"Position,omitempty" yaml:"Position,omitempty"`
}

// File is the on-disk level schema.
type File struct {
	Playfield []CardData `json:"Playfield" yaml:"Playfield"`
	Stack     []CardData `json:"Stack" yaml:"Stack"`
}

// Parse decodes a JSON level file.
func Parse(data []byte) (engine.LevelConfig, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return engine.LevelConfig{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return f.Config()
}

// ParseYAML decodes a YAML level file with the same field names.
func ParseYAML(data []byte) (engine.LevelConfig, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return engine.LevelConfig{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return f.Config()
}

// Load reads and parses the level file at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func Load(path string) (engine.LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.LevelConfig{}, fmt.Errorf("failed to read level: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Config converts the file into an engine level config. Playfield cards
// without a Position are placed at the origin.
func (f File) Config() (engine.LevelConfig, error) {
	var cfg engine.LevelConfig
	for i, c := range f.Playfield {
		rank, suit, err := c.convert()
		if err != nil {
			return engine.LevelConfig{}, fmt.Errorf("Playfield[%d]: %w", i, err)
		}
		e := engine.PlayfieldEntry{Rank: rank, Suit: suit}
		if c.Position != nil {
			e.X, e.Y = c.Position.X, c.Position.Y
		}
		cfg.Playfield = append(cfg.Playfield, e)
	}
	for i, c := range f.Stack {
		rank, suit, err := c.convert()
		if err != nil {
			return engine.LevelConfig{}, fmt.Errorf("Stack[%d]: %w", i, err)
		}
		cfg.Stock = append(cfg.Stock, engine.StockEntry{Rank: rank, Suit: suit})
	}
	return cfg, nil
}

func (c CardData) convert() (engine.Rank, engine.Suit, error) {
	if c.CardFace < 0 || c.CardFace > 12 {
		return 0, 0, fmt.Errorf("%w: CardFace %d out of range 0-12", ErrMalformed, c.CardFace)
	}
	if c.CardSuit < 0 || c.CardSuit > 3 {
		return 0, 0, fmt.Errorf("%w: CardSuit %d out of range 0-3", ErrMalformed, c.CardSuit)
	}
	return engine.Rank(c.CardFace + 1), engine.Suit(c.CardSuit), nil
}

// FromConfig converts an engine level config back into the file schema.
func FromConfig(cfg engine.LevelConfig) File {
	var f File
	for _, e := range cfg.Playfield {
		f.Playfield = append(f.Playfield, CardData{
			CardFace: int(e.Rank) - 1,
			CardSuit: int(e.Suit),
			Position: &Position{X: e.X, Y: e.Y},
		})
	}
	for _, e := range cfg.Stock {
		f.Stack = append(f.Stack, CardData{CardFace: int(e.Rank) - 1, CardSuit: int(e.Suit)})
	}
	return f
}
