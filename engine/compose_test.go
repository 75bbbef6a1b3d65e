package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestComposeAssignsIDsAndLayers(t *testing.T) {
	cfg := LevelConfig{
		Playfield: []PlayfieldEntry{
			{Rank: RankFive, Suit: SuitHearts, X: 0, Y: 100},
			{Rank: RankNine, Suit: SuitClubs, X: 2000, Y: 400},
		},
		Stock: []StockEntry{
			{Rank: RankKing, Suit: SuitSpades},
			{Rank: RankTwo, Suit: SuitDiamonds},
			{Rank: RankSix, Suit: SuitSpades},
		},
	}
	rules := DefaultRules()
	s, err := Compose(cfg, rules)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got := s.Playfield(); !reflect.DeepEqual(got, []CardID{0, 1}) {
		t.Errorf("Playfield = %v, want [0 1]", got)
	}
	c0, _ := s.Card(0)
	if c0.ZOrder != 2900 {
		t.Errorf("ZOrder = %d, want 2900", c0.ZOrder)
	}
	if c0.Size != rules.CardSize {
		t.Errorf("Size = %+v, want %+v", c0.Size, rules.CardSize)
	}
	if c0.Position != (Vec2{X: 0, Y: 100}) {
		t.Errorf("Position = %+v", c0.Position)
	}

	// Stock ids continue the counter past the playfield, offset by 1000.
	if got := s.Stock(); !reflect.DeepEqual(got, []CardID{1002, 1003}) {
		t.Errorf("Stock = %v, want [1002 1003]", got)
	}
	if s.WasteTop() != 1004 {
		t.Fatalf("WasteTop = %d, want 1004", s.WasteTop())
	}
	top, _ := s.Card(1004)
	if !top.FaceUp || top.Rank != RankSix {
		t.Errorf("waste top = %+v, want face-up six", top)
	}
	for _, id := range s.Stock() {
		if c, _ := s.Card(id); c.FaceUp {
			t.Errorf("stock card %d face up", id)
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestComposeRefreshesVisibility(t *testing.T) {
	cfg := LevelConfig{
		Playfield: []PlayfieldEntry{
			{Rank: RankFive, Suit: SuitHearts, X: 500, Y: 0},
			{Rank: RankSix, Suit: SuitHearts, X: 500, Y: 200},
		},
	}
	s, err := Compose(cfg, DefaultRules())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	a, _ := s.Card(0)
	b, _ := s.Card(1)
	if !a.FaceUp || b.FaceUp {
		t.Errorf("FaceUp a=%v b=%v, want a exposed and b covered", a.FaceUp, b.FaceUp)
	}
	if s.WasteTop() != NoCard {
		t.Errorf("WasteTop = %d, want NoCard for empty stock", s.WasteTop())
	}
}

func TestComposeRejectsInvalidCards(t *testing.T) {
	tests := []struct {
		name string
		cfg  LevelConfig
	}{
		{"rank zero", LevelConfig{Playfield: []PlayfieldEntry{{Rank: 0, Suit: SuitClubs}}}},
		{"rank fourteen", LevelConfig{Playfield: []PlayfieldEntry{{Rank: 14, Suit: SuitClubs}}}},
		{"bad suit", LevelConfig{Playfield: []PlayfieldEntry{{Rank: RankAce, Suit: 4}}}},
		{"bad stock", LevelConfig{Stock: []StockEntry{{Rank: 20, Suit: SuitClubs}}}},
	}
	for _, tt := range tests {
		if _, err := Compose(tt.cfg, DefaultRules()); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("%s: err = %v, want ErrInvalidLevel", tt.name, err)
		}
	}
}

func TestLevelConfigEmpty(t *testing.T) {
	if !(LevelConfig{Stock: []StockEntry{{Rank: RankAce}}}).Empty() {
		t.Error("config with no playfield should be Empty")
	}
	if (LevelConfig{Playfield: []PlayfieldEntry{{Rank: RankAce}}}).Empty() {
		t.Error("config with playfield should not be Empty")
	}
}
