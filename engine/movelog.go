package engine

// MoveKind tags a MoveEntry.
type MoveKind uint8

const (
	MovePlayfieldMatch MoveKind = iota + 1
	MoveStockDraw
)

func (k MoveKind) String() string {
	switch k {
	case MovePlayfieldMatch:
		return "playfield_match"
	case MoveStockDraw:
		return "stock_draw"
	default:
		return "unknown"
	}
}

// MoveEntry is a recorded reversible step. It stores ids and copies of the
// fields needed for reversal, never live records.
type MoveEntry struct {
	Kind             MoveKind
	Card             CardID
	PreviousWasteTop CardID // NoCard when the waste was empty

	// Set for MovePlayfieldMatch only.
	OriginalPosition Vec2
	PlayfieldIndex   int
}

// MoveLog is an unbounded LIFO of reversible steps. It never touches a
// PlayState; the Game interprets popped entries.
type MoveLog struct {
	entries []MoveEntry
}

// PushMatch records a playfield card moving onto the waste.
func (l *MoveLog) PushMatch(card CardID, originalPosition Vec2, playfieldIndex int, previousWasteTop CardID) {
	l.entries = append(l.entries, MoveEntry{
		Kind:             MovePlayfieldMatch,
		Card:             card,
		PreviousWasteTop: previousWasteTop,
		OriginalPosition: originalPosition,
		PlayfieldIndex:   playfieldIndex,
	})
}

// PushDraw records a stock card moving onto the waste.
func (l *MoveLog) PushDraw(card CardID, previousWasteTop CardID) {
	l.entries = append(l.entries, MoveEntry{
		Kind:             MoveStockDraw,
		Card:             card,
		PreviousWasteTop: previousWasteTop,
	})
}

// Pop removes and returns the most recent entry. ok is false when there is
// nothing to undo.
func (l *MoveLog) Pop() (e MoveEntry, ok bool) {
	n := len(l.entries)
	if n == 0 {
		return MoveEntry{}, false
	}
	e = l.entries[n-1]
	l.entries = l.entries[:n-1]
	return e, true
}

// Peek returns the most recent entry without removing it.
func (l *MoveLog) Peek() (MoveEntry, bool) {
	if len(l.entries) == 0 {
		return MoveEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of undoable entries.
func (l *MoveLog) Len() int { return len(l.entries) }

// Clear discards all entries.
func (l *MoveLog) Clear() { l.entries = nil }
