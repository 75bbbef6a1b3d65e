package engine

// Status is the orchestration state of a Game.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusEnded // lost: no moves left
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is Won or Ended.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusEnded }

// Action identifies what a MoveResult describes.
type Action uint8

const (
	ActionMatch Action = iota + 1
	ActionDraw
	ActionUndoMatch
	ActionUndoDraw
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionMatch:
		return "match"
	case ActionDraw:
		return "draw"
	case ActionUndoMatch:
		return "undo_match"
	case ActionUndoDraw:
		return "undo_draw"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

// Reject explains why a request was refused. Rejections are routine
// consequences of player input and never errors.
type Reject uint8

const (
	RejectNone Reject = iota
	RejectNotPlaying
	RejectNotInPlayfield
	RejectFaceDown
	RejectNoWasteTop
	RejectMismatch
	RejectStockEmpty
	RejectNothingToUndo
)

func (r Reject) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectNotPlaying:
		return "not_playing"
	case RejectNotInPlayfield:
		return "not_in_playfield"
	case RejectFaceDown:
		return "face_down"
	case RejectNoWasteTop:
		return "no_waste_top"
	case RejectMismatch:
		return "mismatch"
	case RejectStockEmpty:
		return "stock_empty"
	case RejectNothingToUndo:
		return "nothing_to_undo"
	default:
		return "unknown"
	}
}

// MoveResult describes a committed transition (or a rejection) so the
// presentation layer can animate it after the fact.
type MoveResult struct {
	Action Action
	Reject Reject

	// Card is the moved card. For RejectMismatch it is the clicked card.
	Card CardID
	From Location
	To   Location
	// Position is where a matched card left the playfield, or where an
	// undone match was restored.
	Position Vec2

	PreviousWasteTop CardID
	WasteTop         CardID
	StockCount       int
	Flipped          []VisibilityChange
	Status           Status
}

// OK reports whether the request was applied.
func (r MoveResult) OK() bool { return r.Reject == RejectNone }
