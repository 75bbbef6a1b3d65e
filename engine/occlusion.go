package engine

// Occlusion decides which playfield cards are exposed. A card is blocked
// when another playfield card sits strictly lower on screen (smaller Y,
// beyond RowTolerance) and their shrunk bounding boxes intersect.
type Occlusion struct {
	// ShrinkFactor scales each card box around its centre before testing
	// overlap, so only central overlaps count.
	ShrinkFactor float64
	// RowTolerance is the Y band within which cards never block each other.
	RowTolerance float64
}

// DefaultOcclusion returns the tuned parameters: 70% boxes, 10-unit rows.
func DefaultOcclusion() Occlusion {
	return Occlusion{ShrinkFactor: 0.7, RowTolerance: 10}
}

// ShrunkRect returns c's bounding box scaled by ShrinkFactor, centred on
// c.Position.
func (o Occlusion) ShrunkRect(c Card) Rect {
	w := c.Size.W * o.ShrinkFactor
	h := c.Size.H * o.ShrinkFactor
	return Rect{X: c.Position.X - w/2, Y: c.Position.Y - h/2, W: w, H: h}
}

// Covers reports whether d blocks c.
func (o Occlusion) Covers(d, c Card) bool {
	if d.ID == c.ID {
		return false
	}
	if d.Position.Y >= c.Position.Y-o.RowTolerance {
		return false
	}
	return o.ShrunkRect(c).Intersects(o.ShrunkRect(d))
}

// Blocked reports whether any card in others blocks c.
func (o Occlusion) Blocked(c Card, others []Card) bool {
	for _, d := range others {
		if o.Covers(d, c) {
			return true
		}
	}
	return false
}

// VisibilityChange records a playfield card whose FaceUp flag flipped.
type VisibilityChange struct {
	Card   CardID `json:"card"`
	FaceUp bool   `json:"faceUp"`
}

// Refresh recomputes FaceUp for every playfield card and returns the cards
// whose visibility changed, in playfield order. Cards outside the playfield
// are untouched. O(n²) in playfield size.
func (o Occlusion) Refresh(s *PlayState) []VisibilityChange {
	if len(s.playfield) == 0 {
		return nil
	}
	snapshot := make([]Card, len(s.playfield))
	for i, id := range s.playfield {
		snapshot[i] = *s.cards[id]
	}

	var changes []VisibilityChange
	for i, id := range s.playfield {
		faceUp := !o.Blocked(snapshot[i], snapshot)
		rec := s.cards[id]
		if rec.FaceUp != faceUp {
			rec.FaceUp = faceUp
			changes = append(changes, VisibilityChange{Card: id, FaceUp: faceUp})
		}
	}
	return changes
}
