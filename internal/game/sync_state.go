// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	engine "github.com/jason-s-yu/tripeaks/engine"
)

// ViewCard is a card as presentation sees it. Rank and Suit are hidden
// while the card is face down.
type ViewCard struct {
	ID       uuid.UUID     `json:"id"`
	EngineID engine.CardID `json:"engineId"`
	FaceUp   bool          `json:"faceUp"`
	Rank     string        `json:"rank,omitempty"`
	Suit     string        `json:"suit,omitempty"`
	Red      bool          `json:"red,omitempty"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	ZOrder   int           `json:"zOrder"`
}

// StateView is a full snapshot for rendering or resynchronising a client.
type StateView struct {
	SessionID  uuid.UUID   `json:"sessionId"`
	Status     string      `json:"status"`
	Playfield  []ViewCard  `json:"playfield"`
	WasteTop   *ViewCard   `json:"wasteTop,omitempty"`
	StockCount int         `json:"stockCount"`
	CanUndo    bool        `json:"canUndo"`
	Playable   []uuid.UUID `json:"playable,omitempty"`
}

// currentView builds a StateView. Assumes the session lock is HELD.
func (s *Session) currentView() StateView {
	v := StateView{
		SessionID:  s.ID,
		Status:     s.Engine.Status().String(),
		StockCount: s.Engine.StockCount(),
		CanUndo:    s.Engine.CanUndo(),
	}
	for _, c := range s.Engine.Playfield() {
		v.Playfield = append(v.Playfield, s.viewCard(c))
	}
	if top, ok := s.Engine.WasteTop(); ok {
		vc := s.viewCard(top)
		v.WasteTop = &vc
	}
	for _, id := range s.Engine.PlayableCards() {
		v.Playable = append(v.Playable, s.Cards.UUID(id))
	}
	return v
}

func (s *Session) viewCard(c engine.Card) ViewCard {
	vc := ViewCard{
		ID:       s.Cards.UUID(c.ID),
		EngineID: c.ID,
		FaceUp:   c.FaceUp,
		X:        c.Position.X,
		Y:        c.Position.Y,
		ZOrder:   c.ZOrder,
	}
	if c.FaceUp {
		vc.Rank = c.Rank.String()
		vc.Suit = c.Suit.String()
		vc.Red = c.Suit.IsRed()
	}
	return vc
}
