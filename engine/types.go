package engine

import (
	"fmt"
	"strconv"
)

// Suit of a card. Values match the level-file CardSuit encoding.
type Suit uint8

const (
	SuitClubs    Suit = 0
	SuitDiamonds Suit = 1
	SuitHearts   Suit = 2
	SuitSpades   Suit = 3

	numSuits = 4
)

// String returns a single-letter suit label.
func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is Diamonds or Hearts.
func (s Suit) IsRed() bool { return s == SuitDiamonds || s == SuitHearts }

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool { return s < numSuits }

// Rank is the 1–13 card value used for matching (Ace=1 … King=13).
type Rank uint8

const (
	RankAce   Rank = 1
	RankTwo   Rank = 2
	RankThree Rank = 3
	RankFour  Rank = 4
	RankFive  Rank = 5
	RankSix   Rank = 6
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// String returns the conventional rank label (A, 2–10, J, Q, K).
func (r Rank) String() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Valid reports whether r is within Ace..King.
func (r Rank) Valid() bool { return r >= RankAce && r <= RankKing }

// CardID identifies a card for the lifetime of one composed level.
type CardID int

// NoCard represents the absence of a card (e.g. an empty waste slot).
const NoCard CardID = -1

// Vec2 is a 2D playfield coordinate.
type Vec2 struct {
	X, Y float64
}

// Size is a card bounding box.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// Card is one card record. Suit, Rank and ID never change after composition;
// Position is meaningful only while the card is in the playfield.
type Card struct {
	ID       CardID
	Suit     Suit
	Rank     Rank
	Position Vec2
	Size     Size
	FaceUp   bool
	ZOrder   int // render hint only
}

func (c Card) String() string {
	return fmt.Sprintf("#%d %s%s", c.ID, c.Rank, c.Suit)
}

// Location names the container a card currently belongs to.
type Location uint8

const (
	LocationNone Location = iota
	LocationPlayfield
	LocationStock
	LocationWaste
)

func (l Location) String() string {
	switch l {
	case LocationPlayfield:
		return "playfield"
	case LocationStock:
		return "stock"
	case LocationWaste:
		return "waste"
	default:
		return "none"
	}
}
