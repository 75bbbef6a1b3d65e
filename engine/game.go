// Package engine implements the rules of a Tri-Peaks style card-matching
// puzzle: card occlusion, match legality, win/lose detection and
// single-step undo.
//
// The engine is synchronous and performs no I/O. Every operation commits
// fully before it returns and reports what changed in a MoveResult, so a
// presentation layer can animate afterwards without affecting the rules.
package engine

import (
	"fmt"
	"slices"
)

// Game is one session of play over a composed level. It is not safe for
// concurrent use.
type Game struct {
	rules  Rules
	state  *PlayState
	moves  MoveLog
	status Status
}

// NewGame composes cfg and returns a game ready for input.
func NewGame(cfg LevelConfig, rules Rules) (*Game, error) {
	g := &Game{rules: rules.normalized()}
	if _, err := g.Restart(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Rules returns the effective rule set.
func (g *Game) Rules() Rules { return g.rules }

// Status returns the current orchestration state.
func (g *Game) Status() Status { return g.status }

// Card returns a copy of the record for id.
func (g *Game) Card(id CardID) (Card, bool) { return g.state.Card(id) }

// Location reports which container holds id.
func (g *Game) Location(id CardID) Location { return g.state.Location(id) }

// Playfield returns copies of the playfield cards in playfield order.
func (g *Game) Playfield() []Card {
	out := make([]Card, 0, g.state.PlayfieldCount())
	for _, id := range g.state.playfield {
		out = append(out, *g.state.cards[id])
	}
	return out
}

// WasteTop returns the card on top of the waste, if any.
func (g *Game) WasteTop() (Card, bool) {
	id := g.state.WasteTop()
	if id == NoCard {
		return Card{}, false
	}
	return g.state.Card(id)
}

// StockCount returns the number of cards left to draw.
func (g *Game) StockCount() int { return g.state.StockCount() }

// CanUndo reports whether Undo would succeed.
func (g *Game) CanUndo() bool { return g.status == StatusPlaying && g.moves.Len() > 0 }

// Snapshot returns a deep copy of the play state.
func (g *Game) Snapshot() Snapshot { return g.state.Snapshot() }

// PlayableCards returns the face-up playfield cards that match the waste
// top, in playfield order.
func (g *Game) PlayableCards() []CardID {
	top := g.state.card(g.state.WasteTop())
	if top == nil {
		return nil
	}
	var out []CardID
	for _, id := range g.state.playfield {
		c := g.state.cards[id]
		if c.FaceUp && CanMatch(c.Rank, top.Rank) {
			out = append(out, id)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// ClickPlayfieldCard moves card id onto the waste if it is exposed and
// adjacent in rank to the waste top.
func (g *Game) ClickPlayfieldCard(id CardID) MoveResult {
	if g.status != StatusPlaying {
		return g.reject(RejectNotPlaying, id)
	}
	idx := slices.Index(g.state.playfield, id)
	if idx < 0 {
		return g.reject(RejectNotInPlayfield, id)
	}
	c := g.state.cards[id]
	if !c.FaceUp {
		return g.reject(RejectFaceDown, id)
	}
	prev := g.state.WasteTop()
	top := g.state.card(prev)
	if top == nil {
		return g.reject(RejectNoWasteTop, id)
	}
	if !CanMatch(c.Rank, top.Rank) {
		return g.reject(RejectMismatch, id)
	}

	g.moves.PushMatch(id, c.Position, idx, prev)
	g.state.RemoveFromPlayfield(id)
	g.state.SetWasteTop(id)
	flipped := g.rules.Occlusion.Refresh(g.state)
	g.evaluate()
	g.assertInvariants()

	return g.result(MoveResult{
		Action:           ActionMatch,
		Card:             id,
		From:             LocationPlayfield,
		To:               LocationWaste,
		Position:         c.Position,
		PreviousWasteTop: prev,
		Flipped:          flipped,
	})
}

// DrawFromStock turns the top stock card onto the waste. Drawing never
// changes the playfield, so visibility is not recomputed.
func (g *Game) DrawFromStock() MoveResult {
	if g.status != StatusPlaying {
		return g.reject(RejectNotPlaying, NoCard)
	}
	id, ok := g.state.PopFromStock()
	if !ok {
		return g.reject(RejectStockEmpty, NoCard)
	}
	prev := g.state.WasteTop()
	g.moves.PushDraw(id, prev)
	g.state.cards[id].FaceUp = true
	g.state.SetWasteTop(id)
	g.evaluate()
	g.assertInvariants()

	return g.result(MoveResult{
		Action:           ActionDraw,
		Card:             id,
		From:             LocationStock,
		To:               LocationWaste,
		PreviousWasteTop: prev,
	})
}

// Undo reverts the most recent match or draw. Terminal states are final
// and cannot be undone.
func (g *Game) Undo() MoveResult {
	if g.status != StatusPlaying {
		return g.reject(RejectNotPlaying, NoCard)
	}
	e, ok := g.moves.Pop()
	if !ok {
		return g.reject(RejectNothingToUndo, NoCard)
	}

	if top := g.state.TakeWasteTop(); top != e.Card {
		g.invariantFailure(fmt.Errorf("%w: undo %s of card %d but waste top is %d", ErrInvariant, e.Kind, e.Card, top))
	}
	c := g.state.cards[e.Card]

	res := MoveResult{
		Card:             e.Card,
		From:             LocationWaste,
		PreviousWasteTop: e.Card,
	}
	switch e.Kind {
	case MovePlayfieldMatch:
		c.Position = e.OriginalPosition
		g.state.InsertIntoPlayfield(e.Card, e.PlayfieldIndex)
		res.Action = ActionUndoMatch
		res.To = LocationPlayfield
		res.Position = e.OriginalPosition
		res.Flipped = g.rules.Occlusion.Refresh(g.state)
	case MoveStockDraw:
		c.FaceUp = false
		g.state.PushToStock(e.Card)
		res.Action = ActionUndoDraw
		res.To = LocationStock
	}
	g.assertInvariants()
	return g.result(res)
}

// Restart discards the current state and move log and composes cfg.
// On error the game is left unchanged.
func (g *Game) Restart(cfg LevelConfig) (MoveResult, error) {
	s, err := Compose(cfg, g.rules)
	if err != nil {
		return MoveResult{}, err
	}
	g.state = s
	g.moves.Clear()
	g.status = StatusPlaying
	g.evaluate()
	g.assertInvariants()

	var exposed []VisibilityChange
	for _, id := range s.playfield {
		if s.cards[id].FaceUp {
			exposed = append(exposed, VisibilityChange{Card: id, FaceUp: true})
		}
	}
	return g.result(MoveResult{
		Action:           ActionRestart,
		Card:             NoCard,
		PreviousWasteTop: NoCard,
		Flipped:          exposed,
	}), nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

// evaluate applies the win and lose conditions. A missing waste top counts
// as nothing matching.
func (g *Game) evaluate() {
	if g.status != StatusPlaying {
		return
	}
	if g.state.PlayfieldCount() == 0 {
		g.status = StatusWon
		return
	}
	if g.state.StockCount() == 0 && len(g.PlayableCards()) == 0 {
		g.status = StatusEnded
	}
}

func (g *Game) reject(r Reject, id CardID) MoveResult {
	return g.result(MoveResult{Reject: r, Card: id, PreviousWasteTop: g.state.WasteTop()})
}

// result fills the fields every MoveResult carries.
func (g *Game) result(r MoveResult) MoveResult {
	r.WasteTop = g.state.WasteTop()
	r.StockCount = g.state.StockCount()
	r.Status = g.status
	return r
}

func (g *Game) assertInvariants() {
	if !g.rules.StrictInvariants {
		return
	}
	if err := g.state.Validate(); err != nil {
		panic(err)
	}
}

func (g *Game) invariantFailure(err error) {
	if g.rules.StrictInvariants {
		panic(err)
	}
}
