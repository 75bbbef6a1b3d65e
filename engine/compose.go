package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is returned when a LevelConfig holds an out-of-range
	// rank or suit.
	ErrInvalidLevel = errors.New("invalid level config")
	// ErrInvariant marks a container-exclusivity violation.
	ErrInvariant = errors.New("play state invariant violated")
)

// PlayfieldEntry is a positioned playfield card in a level description.
type PlayfieldEntry struct {
	Rank Rank
	Suit Suit
	X, Y float64
}

// StockEntry is a stock card in a level description. Stock entries are
// pushed in order, so the last entry is drawn first.
type StockEntry struct {
	Rank Rank
	Suit Suit
}

// LevelConfig is a parsed level description. It is consumed once by Compose
// and not retained.
type LevelConfig struct {
	Playfield []PlayfieldEntry
	Stock     []StockEntry
}

// Empty reports whether the level has no playfield cards.
func (c LevelConfig) Empty() bool { return len(c.Playfield) == 0 }

// Validate checks every rank and suit.
func (c LevelConfig) Validate() error {
	for i, e := range c.Playfield {
		if !e.Rank.Valid() || !e.Suit.Valid() {
			return fmt.Errorf("%w: playfield[%d] rank=%d suit=%d", ErrInvalidLevel, i, e.Rank, e.Suit)
		}
	}
	for i, e := range c.Stock {
		if !e.Rank.Valid() || !e.Suit.Valid() {
			return fmt.Errorf("%w: stock[%d] rank=%d suit=%d", ErrInvalidLevel, i, e.Rank, e.Suit)
		}
	}
	return nil
}

// Compose builds the initial PlayState for cfg.
//
// Playfield cards get ids 0..n-1 in input order, start face down and are
// layered by ZOrder = ZOrderBase - Y. Stock cards continue the counter
// offset by StockIDBase. If the stock is non-empty its top card is turned
// onto the waste. Visibility is computed once at the end.
func Compose(cfg LevelConfig, rules Rules) (*PlayState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules = rules.normalized()
	s := NewPlayState()

	next := CardID(0)
	for _, e := range cfg.Playfield {
		s.register(Card{
			ID:       next,
			Suit:     e.Suit,
			Rank:     e.Rank,
			Position: Vec2{X: e.X, Y: e.Y},
			Size:     rules.CardSize,
			ZOrder:   rules.ZOrderBase - int(e.Y),
		})
		s.AddToPlayfield(next)
		next++
	}

	for _, e := range cfg.Stock {
		id := rules.StockIDBase + next
		s.register(Card{ID: id, Suit: e.Suit, Rank: e.Rank, Size: rules.CardSize})
		s.PushToStock(id)
		next++
	}

	if id, ok := s.PopFromStock(); ok {
		s.card(id).FaceUp = true
		s.SetWasteTop(id)
	}

	rules.Occlusion.Refresh(s)
	return s, nil
}
