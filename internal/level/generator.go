package level

import (
	"math/rand/v2"

	engine "github.com/jason-s-yu/tripeaks/engine"
)

// Pyramid layout constants. Lower rows sit at smaller Y and cover the row
// above them.
const (
	screenCenterX    = 1080.0 / 2
	pyramidTopY      = 1750.0
	layoutCardWidth  = 150.0 * 3
	layoutCardHeight = 210.0 * 3
	pyramidRows      = 5
	rowSpacing       = layoutCardHeight * 0.35
	columnSpacing    = layoutCardWidth * 0.55

	// DefaultStockSize is the stock size of a generated level.
	DefaultStockSize = 24
)

// GeneratePyramid builds a five-row pyramid (row r holds r+1 cards) with
// random faces and a stock of stockSize random cards. The same rng state
// always yields the same level.
func GeneratePyramid(rng *rand.Rand, stockSize int) engine.LevelConfig {
	if stockSize <= 0 {
		stockSize = DefaultStockSize
	}
	var cfg engine.LevelConfig
	for row := 0; row < pyramidRows; row++ {
		n := row + 1
		startX := screenCenterX - float64(n-1)*columnSpacing/2
		y := pyramidTopY - float64(row)*rowSpacing
		for col := 0; col < n; col++ {
			rank, suit := randomFace(rng)
			cfg.Playfield = append(cfg.Playfield, engine.PlayfieldEntry{
				Rank: rank,
				Suit: suit,
				X:    startX + float64(col)*columnSpacing,
				Y:    y,
			})
		}
	}
	for i := 0; i < stockSize; i++ {
		rank, suit := randomFace(rng)
		cfg.Stock = append(cfg.Stock, engine.StockEntry{Rank: rank, Suit: suit})
	}
	return cfg
}

func randomFace(rng *rand.Rand) (engine.Rank, engine.Suit) {
	return engine.Rank(rng.IntN(13) + 1), engine.Suit(rng.IntN(4))
}
