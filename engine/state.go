package engine

import (
	"fmt"
	"slices"
)

// PlayState owns every card of a composed level and tracks which container
// each one belongs to. Containers hold ids; the arena holds the records.
//
// PlayState is a pure data holder: none of its mutators recompute
// visibility. Callers pass valid ids and keep containers exclusive.
type PlayState struct {
	cards     map[CardID]*Card
	playfield []CardID
	stock     []CardID // top of stock is the last element
	waste     []CardID // waste top is the last element
}

// NewPlayState returns an empty state with no cards.
func NewPlayState() *PlayState {
	return &PlayState{cards: make(map[CardID]*Card)}
}

// register adds a record to the arena without placing it in any container.
func (s *PlayState) register(c Card) *Card {
	rec := c
	s.cards[c.ID] = &rec
	return &rec
}

// card returns the mutable record for id, or nil.
func (s *PlayState) card(id CardID) *Card { return s.cards[id] }

// Card returns a copy of the record for id.
func (s *PlayState) Card(id CardID) (Card, bool) {
	c, ok := s.cards[id]
	if !ok {
		return Card{}, false
	}
	return *c, true
}

// AddToPlayfield places id into the playfield.
func (s *PlayState) AddToPlayfield(id CardID) {
	s.playfield = append(s.playfield, id)
}

// InsertIntoPlayfield places id at index i of the playfield order, clamped
// to the valid range. Undo uses it to restore the exact prior ordering.
func (s *PlayState) InsertIntoPlayfield(id CardID, i int) {
	i = max(0, min(i, len(s.playfield)))
	s.playfield = slices.Insert(s.playfield, i, id)
}

// RemoveFromPlayfield removes id from the playfield. O(n) in playfield size.
// Returns the index the card occupied, or -1 if it was not present.
func (s *PlayState) RemoveFromPlayfield(id CardID) int {
	i := slices.Index(s.playfield, id)
	if i < 0 {
		return -1
	}
	s.playfield = slices.Delete(s.playfield, i, i+1)
	return i
}

// InPlayfield reports whether id is currently in the playfield.
func (s *PlayState) InPlayfield(id CardID) bool {
	return slices.Contains(s.playfield, id)
}

// SetWasteTop places id on top of the waste pile. The previous top stays
// buried underneath it. Passing NoCard is a no-op.
func (s *PlayState) SetWasteTop(id CardID) {
	if id == NoCard {
		return
	}
	s.waste = append(s.waste, id)
}

// TakeWasteTop removes the waste top, exposing the card beneath it (if any).
// Returns NoCard when the waste pile is empty.
func (s *PlayState) TakeWasteTop() CardID {
	n := len(s.waste)
	if n == 0 {
		return NoCard
	}
	id := s.waste[n-1]
	s.waste = s.waste[:n-1]
	return id
}

// WasteTop returns the current waste top, or NoCard.
func (s *PlayState) WasteTop() CardID {
	if len(s.waste) == 0 {
		return NoCard
	}
	return s.waste[len(s.waste)-1]
}

// PushToStock pushes id onto the top of the stock.
func (s *PlayState) PushToStock(id CardID) {
	s.stock = append(s.stock, id)
}

// PopFromStock pops from the same end PushToStock pushes to.
func (s *PlayState) PopFromStock() (CardID, bool) {
	n := len(s.stock)
	if n == 0 {
		return NoCard, false
	}
	id := s.stock[n-1]
	s.stock = s.stock[:n-1]
	return id, true
}

// StockCount returns the number of cards in the stock.
func (s *PlayState) StockCount() int { return len(s.stock) }

// PlayfieldCount returns the number of cards in the playfield.
func (s *PlayState) PlayfieldCount() int { return len(s.playfield) }

// WasteCount returns the number of cards in the waste pile, top included.
func (s *PlayState) WasteCount() int { return len(s.waste) }

// Playfield returns the playfield ids in insertion order.
func (s *PlayState) Playfield() []CardID { return slices.Clone(s.playfield) }

// Stock returns the stock ids, bottom first.
func (s *PlayState) Stock() []CardID { return slices.Clone(s.stock) }

// Waste returns the waste pile ids, bottom first.
func (s *PlayState) Waste() []CardID { return slices.Clone(s.waste) }

// Location reports which container holds id.
func (s *PlayState) Location(id CardID) Location {
	switch {
	case slices.Contains(s.playfield, id):
		return LocationPlayfield
	case slices.Contains(s.stock, id):
		return LocationStock
	case slices.Contains(s.waste, id):
		return LocationWaste
	default:
		return LocationNone
	}
}

// Validate checks that every registered card belongs to exactly one
// container and that containers reference only registered cards.
func (s *PlayState) Validate() error {
	seen := make(map[CardID]Location, len(s.cards))
	check := func(ids []CardID, loc Location) error {
		for _, id := range ids {
			if _, ok := s.cards[id]; !ok {
				return fmt.Errorf("%w: %s references unknown card %d", ErrInvariant, loc, id)
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: card %d in both %s and %s", ErrInvariant, id, prev, loc)
			}
			seen[id] = loc
		}
		return nil
	}
	if err := check(s.playfield, LocationPlayfield); err != nil {
		return err
	}
	if err := check(s.stock, LocationStock); err != nil {
		return err
	}
	if err := check(s.waste, LocationWaste); err != nil {
		return err
	}
	if len(seen) != len(s.cards) {
		for id := range s.cards {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%w: card %d belongs to no container", ErrInvariant, id)
			}
		}
	}
	return nil
}

// Snapshot is a deep copy of a PlayState, comparable with reflect.DeepEqual.
type Snapshot struct {
	Cards     map[CardID]Card
	Playfield []CardID
	Stock     []CardID
	Waste     []CardID
}

// Snapshot returns a deep copy of the current state.
func (s *PlayState) Snapshot() Snapshot {
	cards := make(map[CardID]Card, len(s.cards))
	for id, c := range s.cards {
		cards[id] = *c
	}
	return Snapshot{
		Cards:     cards,
		Playfield: slices.Clone(s.playfield),
		Stock:     slices.Clone(s.stock),
		Waste:     slices.Clone(s.waste),
	}
}
