package bgengine

// GameState is a snapshot of a game, safe to keep after the game changes.
type GameState struct {
	Turn      Color
	Players   [2]Player
	Dice      []int  // Current roll.
	Available []int  // Dice not yet played.
	Layout    Layout // Board contents.
	Moves     []Move // Legal moves.
	Pips      [2]int
	Winner    Color
}

func (s *GameState) LocalPlayer() Player {
	return s.Player(s.Turn)
}

func (s *GameState) OpponentPlayer() Player {
	return s.Player(s.Turn.Opponent())
}

func (s *GameState) Player(c Color) Player {
	if !c.Valid() {
		return Player{}
	}
	return s.Players[c.index()]
}

// Point returns the owner and checker count of a point.
func (s *GameState) Point(space int) (Color, int) {
	if space < 0 || space >= numPoints {
		return NoColor, 0
	}
	v := s.Layout.Points[space]
	switch {
	case v > 0:
		return White, v
	case v < 0:
		return Black, -v
	default:
		return NoColor, 0
	}
}

func (s *GameState) Bar(c Color) int {
	if !c.Valid() {
		return 0
	}
	return s.Layout.Bar[c.index()]
}

func (s *GameState) Off(c Color) int {
	if !c.Valid() {
		return 0
	}
	return s.Layout.Off[c.index()]
}

func (s *GameState) Pip(c Color) int {
	if !c.Valid() {
		return 0
	}
	return s.Pips[c.index()]
}
