// internal/game/events.go
package game

import (
	"github.com/google/uuid"
	engine "github.com/jason-s-yu/tripeaks/engine"
)

// GameEventType names an event sent to the presentation layer.
type GameEventType string

const (
	EventCardMatched   GameEventType = "card_matched"   // Playfield card moved onto the waste.
	EventStockDrawn    GameEventType = "stock_drawn"    // Stock card turned onto the waste.
	EventUndoMatch     GameEventType = "undo_match"     // Waste card returned to the playfield.
	EventUndoDraw      GameEventType = "undo_draw"      // Waste card returned to the stock.
	EventCardsFlipped  GameEventType = "cards_flipped"  // Playfield visibility changed.
	EventMoveRejected  GameEventType = "move_rejected"  // Input refused; Reason says why.
	EventGameRestart   GameEventType = "game_restart"   // New level composed; State holds the full view.
	EventGameWon       GameEventType = "game_won"       // Playfield cleared.
	EventGameEnded     GameEventType = "game_ended"     // No moves left.
	EventPrivateSync   GameEventType = "private_sync"   // Full state sync on request.
)

// EventCard identifies a card within a GameEvent payload.
type EventCard struct {
	ID       uuid.UUID     `json:"id"`
	EngineID engine.CardID `json:"engineId"`
	Rank     string        `json:"rank,omitempty"`
	Suit     string        `json:"suit,omitempty"`
}

// EventFlip is one playfield card whose face changed.
type EventFlip struct {
	Card   EventCard `json:"card"`
	FaceUp bool      `json:"faceUp"`
}

// GameEvent describes a committed change. Presentation animates it after
// the fact; it cannot influence the engine.
type GameEvent struct {
	Type     GameEventType `json:"type"`
	Card     *EventCard    `json:"card,omitempty"`     // Moved or rejected card.
	Previous *EventCard    `json:"previous,omitempty"` // Waste top before the move.
	WasteTop *EventCard    `json:"wasteTop,omitempty"` // Waste top after the move.
	Position *engine.Vec2  `json:"position,omitempty"` // Playfield position left or restored.
	Flipped  []EventFlip   `json:"flipped,omitempty"`

	StockCount int    `json:"stockCount"`
	Reason     string `json:"reason,omitempty"`

	State *StateView `json:"state,omitempty"`
}
