// internal/game/game.go
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/sirupsen/logrus"
)

// LevelSource supplies the level for each new game.
type LevelSource interface {
	Next() engine.LevelConfig
}

// OnGameEndFunc is called once when a game reaches Won or Ended.
type OnGameEndFunc func(sessionID uuid.UUID, status engine.Status)

// InputType names a presentation input event.
type InputType string

const (
	InputClickCard    InputType = "click_card"
	InputClickStock   InputType = "click_stock"
	InputClickUndo    InputType = "click_undo"
	InputClickRestart InputType = "click_restart"
)

// Input is one event from the presentation/input layer. For click_card
// either CardID or CardEngineID identifies the card; CardID wins when set.
type Input struct {
	Type         InputType     `json:"type"`
	CardID       uuid.UUID     `json:"cardId,omitempty"`
	CardEngineID engine.CardID `json:"card,omitempty"`
}

// Session owns one engine instance and translates between presentation
// input, engine operations and outgoing events.
type Session struct {
	ID     uuid.UUID
	Engine *engine.Game
	Cards  CardUUIDTracker

	Mu sync.Mutex // Serialises input; the engine itself is single-threaded.

	BroadcastFn func(ev GameEvent) // Receives every event after the engine commits.
	OnGameEnd   OnGameEndFunc

	levels      LevelSource
	log         *logrus.Entry
	actionIndex int
}

// NewSession composes the first level from levels.
func NewSession(levels LevelSource, rules engine.Rules, log *logrus.Entry) (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	g, err := engine.NewGame(levels.Next(), rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compose level: %w", err)
	}
	s := &Session{
		ID:     id,
		Engine: g,
		levels: levels,
		log:    log.WithField("session", id),
	}
	s.Cards.Reset(g.Snapshot())
	s.log.WithFields(logrus.Fields{
		"playfield": len(g.Playfield()),
		"stock":     g.StockCount(),
	}).Info("Session started.")
	return s, nil
}

// HandleInput dispatches one input event to the matching operation.
func (s *Session) HandleInput(in Input) (engine.MoveResult, error) {
	switch in.Type {
	case InputClickCard:
		if in.CardID != uuid.Nil {
			return s.ClickCardUUID(in.CardID), nil
		}
		return s.ClickCard(in.CardEngineID), nil
	case InputClickStock:
		return s.ClickStock(), nil
	case InputClickUndo:
		return s.ClickUndo(), nil
	case InputClickRestart:
		return s.ClickRestart()
	default:
		return engine.MoveResult{}, fmt.Errorf("unknown input type %q", in.Type)
	}
}

// ClickCard attempts to match a playfield card against the waste top.
func (s *Session) ClickCard(id engine.CardID) engine.MoveResult {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.apply("click_card", s.Engine.ClickPlayfieldCard(id))
}

// ClickCardUUID is ClickCard addressed by client UUID.
func (s *Session) ClickCardUUID(u uuid.UUID) engine.MoveResult {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	id, ok := s.Cards.Resolve(u)
	if !ok {
		id = engine.NoCard
	}
	return s.apply("click_card", s.Engine.ClickPlayfieldCard(id))
}

// ClickStock draws from the stock.
func (s *Session) ClickStock() engine.MoveResult {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.apply("click_stock", s.Engine.DrawFromStock())
}

// ClickUndo reverts the last move.
func (s *Session) ClickUndo() engine.MoveResult {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.apply("click_undo", s.Engine.Undo())
}

// ClickRestart composes the next level from the level source.
func (s *Session) ClickRestart() (engine.MoveResult, error) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	res, err := s.Engine.Restart(s.levels.Next())
	if err != nil {
		s.log.WithError(err).Error("Restart failed; keeping current game.")
		return res, fmt.Errorf("restart: %w", err)
	}
	s.Cards.Reset(s.Engine.Snapshot())
	s.actionIndex = 0
	return s.apply("click_restart", res), nil
}

// View returns the current state for rendering.
func (s *Session) View() StateView {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.currentView()
}

// Sync broadcasts the full state.
func (s *Session) Sync() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	v := s.currentView()
	s.fireEvent(GameEvent{Type: EventPrivateSync, StockCount: v.StockCount, State: &v})
}

// apply logs res and emits the matching events. Assumes the lock is HELD.
func (s *Session) apply(action string, res engine.MoveResult) engine.MoveResult {
	entry := s.log.WithFields(logrus.Fields{"action": action, "index": s.actionIndex})

	if !res.OK() {
		entry.WithField("reason", res.Reject).Debug("Move rejected.")
		ev := GameEvent{Type: EventMoveRejected, Reason: res.Reject.String(), StockCount: res.StockCount}
		if res.Card != engine.NoCard {
			ev.Card = s.eventCard(res.Card)
		}
		s.fireEvent(ev)
		return res
	}
	s.actionIndex++
	entry.WithField("result", res.Action).Debug("Move applied.")

	switch res.Action {
	case engine.ActionMatch:
		pos := res.Position
		s.fireEvent(GameEvent{
			Type:       EventCardMatched,
			Card:       s.eventCard(res.Card),
			Previous:   s.eventCard(res.PreviousWasteTop),
			WasteTop:   s.eventCard(res.WasteTop),
			Position:   &pos,
			StockCount: res.StockCount,
		})
	case engine.ActionDraw:
		s.fireEvent(GameEvent{
			Type:       EventStockDrawn,
			Card:       s.eventCard(res.Card),
			Previous:   s.eventCard(res.PreviousWasteTop),
			WasteTop:   s.eventCard(res.WasteTop),
			StockCount: res.StockCount,
		})
	case engine.ActionUndoMatch:
		pos := res.Position
		s.fireEvent(GameEvent{
			Type:       EventUndoMatch,
			Card:       s.eventCard(res.Card),
			WasteTop:   s.eventCard(res.WasteTop),
			Position:   &pos,
			StockCount: res.StockCount,
		})
	case engine.ActionUndoDraw:
		s.fireEvent(GameEvent{
			Type:       EventUndoDraw,
			Card:       &EventCard{ID: s.Cards.UUID(res.Card), EngineID: res.Card},
			WasteTop:   s.eventCard(res.WasteTop),
			StockCount: res.StockCount,
		})
	case engine.ActionRestart:
		v := s.currentView()
		s.fireEvent(GameEvent{Type: EventGameRestart, StockCount: res.StockCount, State: &v})
	}

	if res.Action != engine.ActionRestart && len(res.Flipped) > 0 {
		flips := make([]EventFlip, 0, len(res.Flipped))
		for _, f := range res.Flipped {
			flips = append(flips, EventFlip{Card: *s.eventCard(f.Card), FaceUp: f.FaceUp})
		}
		s.fireEvent(GameEvent{Type: EventCardsFlipped, Flipped: flips, StockCount: res.StockCount})
	}

	if res.Status.Terminal() {
		s.endGame(res.Status)
	}
	return res
}

func (s *Session) endGame(status engine.Status) {
	s.log.WithField("status", status).Info("Game over.")
	ev := GameEvent{Type: EventGameEnded, StockCount: s.Engine.StockCount()}
	if status == engine.StatusWon {
		ev.Type = EventGameWon
	}
	s.fireEvent(ev)
	if s.OnGameEnd != nil {
		s.OnGameEnd(s.ID, status)
	}
}

// eventCard describes id for an event, revealing the face only when the
// card is face up. Returns nil for NoCard.
func (s *Session) eventCard(id engine.CardID) *EventCard {
	if id == engine.NoCard {
		return nil
	}
	ec := &EventCard{ID: s.Cards.UUID(id), EngineID: id}
	if c, ok := s.Engine.Card(id); ok && c.FaceUp {
		ec.Rank = c.Rank.String()
		ec.Suit = c.Suit.String()
	}
	return ec
}

func (s *Session) fireEvent(ev GameEvent) {
	if s.BroadcastFn == nil {
		s.log.WithField("event", ev.Type).Warn("BroadcastFn is nil, dropping event.")
		return
	}
	s.BroadcastFn(ev)
}
