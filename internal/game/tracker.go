// internal/game/tracker.go
package game

import (
	"github.com/google/uuid"
	engine "github.com/jason-s-yu/tripeaks/engine"
)

// CardUUIDTracker assigns client-facing UUIDs to engine cards. It is rebuilt
// on every restart so ids never leak between levels.
type CardUUIDTracker struct {
	byEngine map[engine.CardID]uuid.UUID
	byUUID   map[uuid.UUID]engine.CardID
}

// Reset assigns a fresh UUID to every card in snap.
func (t *CardUUIDTracker) Reset(snap engine.Snapshot) {
	t.byEngine = make(map[engine.CardID]uuid.UUID, len(snap.Cards))
	t.byUUID = make(map[uuid.UUID]engine.CardID, len(snap.Cards))
	for id := range snap.Cards {
		u := uuid.New()
		t.byEngine[id] = u
		t.byUUID[u] = id
	}
}

// UUID returns the client id for an engine card, or uuid.Nil.
func (t *CardUUIDTracker) UUID(id engine.CardID) uuid.UUID {
	return t.byEngine[id]
}

// Resolve maps a client id back to the engine card.
func (t *CardUUIDTracker) Resolve(u uuid.UUID) (engine.CardID, bool) {
	id, ok := t.byUUID[u]
	return id, ok
}
