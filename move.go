package bgengine

import "slices"

// Move is a single checker move: an origin (or SpaceBar) and the die used.
type Move struct {
	From int
	Die  int
}

// To returns the space a checker of c reaches by playing m, or SpaceOff when
// the move bears the checker off.
func (m Move) To(c Color) int {
	to, _ := destination(m.From, m.Die, c)
	return to
}

// PlayedMove records a move that was executed.
type PlayedMove struct {
	Player  Color
	From    int
	To      int // SpaceOff when the checker was borne off.
	Die     int
	Hit     bool
	BoreOff bool
}

// distinctDice returns the unique die values in ascending order.
func distinctDice(dice []int) []int {
	values := slices.Clone(dice)
	slices.Sort(values)
	return slices.Compact(values)
}

// subtractDice returns the multiset difference of rolled minus used.
func subtractDice(rolled []int, used []int) []int {
	available := slices.Clone(rolled)
	for _, die := range used {
		if i := slices.Index(available, die); i >= 0 {
			available = slices.Delete(available, i, i+1)
		}
	}
	return available
}
