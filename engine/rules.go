package engine

// Rules holds the tunable parameters of a game.
type Rules struct {
	Occlusion Occlusion
	CardSize  Size // bounding box shared by every card
	// StockIDBase offsets stock card ids so they stay disjoint from
	// playfield ids.
	StockIDBase CardID
	// ZOrderBase is the render depth origin: ZOrder = ZOrderBase - Y.
	ZOrderBase int
	// StrictInvariants panics after any operation that leaves the
	// containers inconsistent. Meant for development and tests.
	StrictInvariants bool
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Occlusion:   DefaultOcclusion(),
		CardSize:    Size{W: 150 * 3.5, H: 210 * 3.5},
		StockIDBase: 1000,
		ZOrderBase:  3000,
	}
}

// normalized fills zero fields with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.Occlusion == (Occlusion{}) {
		r.Occlusion = d.Occlusion
	}
	if r.Occlusion.ShrinkFactor <= 0 {
		r.Occlusion.ShrinkFactor = d.Occlusion.ShrinkFactor
	}
	if r.Occlusion.RowTolerance < 0 {
		r.Occlusion.RowTolerance = d.Occlusion.RowTolerance
	}
	if r.CardSize.W <= 0 || r.CardSize.H <= 0 {
		r.CardSize = d.CardSize
	}
	if r.StockIDBase <= 0 {
		r.StockIDBase = d.StockIDBase
	}
	if r.ZOrderBase == 0 {
		r.ZOrderBase = d.ZOrderBase
	}
	return r
}

// CanMatch reports whether two ranks are adjacent, with Ace and King
// wrapping around.
func CanMatch(a, b Rank) bool {
	d := int(a) - int(b)
	if d == 1 || d == -1 {
		return true
	}
	return (a == RankAce && b == RankKing) || (a == RankKing && b == RankAce)
}
