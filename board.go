package bgengine

import (
	"errors"
	"fmt"
)

// Points are addressed by index 0-23 (human point 1-24). Two additional
// spaces exist outside of the board.
const (
	SpaceBar = -1 // Origin of a checker re-entering from the bar.
	SpaceOff = -2 // Destination of a checker that was borne off.
)

const (
	minDie = 1
	maxDie = 6
)

// ErrCheckerCount is returned when a layout does not account for exactly 15
// checkers of each color.
var ErrCheckerCount = errors.New("each color must have 15 checkers")

// Point describes the occupant of a single point.
type Point struct {
	Owner Color
	Count int
}

// Layout is a plain description of a board. Point values are signed: positive
// values are White checkers, negative values are Black checkers. Bar and Off
// are indexed by color (White first).
type Layout struct {
	Points [numPoints]int
	Bar    [2]int
	Off    [2]int
}

// StartingLayout is the standard backgammon opening position.
func StartingLayout() Layout {
	var l Layout
	l.Points[23], l.Points[12], l.Points[7], l.Points[5] = 2, 5, 3, 5
	l.Points[0], l.Points[11], l.Points[16], l.Points[18] = -2, -5, -3, -5
	return l
}

// Board holds the checkers of both colors. All move legality and execution is
// handled here. The only way to mutate a board after creation is Move.
type Board struct {
	points [numPoints][]Checker
	bar    [2][]Checker
	off    [2]int
}

func NewBoard() *Board {
	b, err := NewBoardFromLayout(StartingLayout())
	if err != nil {
		panic(err)
	}
	return b
}

func NewBoardFromLayout(l Layout) (*Board, error) {
	var totals [2]int
	for _, v := range l.Points {
		totals[White.index()] += numPlayerCheckers(v, White)
		totals[Black.index()] += numPlayerCheckers(v, Black)
	}
	for _, c := range []Color{White, Black} {
		i := c.index()
		if l.Bar[i] < 0 || l.Off[i] < 0 {
			return nil, fmt.Errorf("%s: negative bar or off count: %w", c, ErrCheckerCount)
		}
		totals[i] += l.Bar[i] + l.Off[i]
		if totals[i] != numCheckers {
			return nil, fmt.Errorf("%s has %d checkers: %w", c, totals[i], ErrCheckerCount)
		}
	}

	b := &Board{}
	for space, v := range l.Points {
		for _, c := range []Color{White, Black} {
			for n := numPlayerCheckers(v, c); n > 0; n-- {
				b.points[space] = append(b.points[space], NewChecker(c))
			}
		}
	}
	for _, c := range []Color{White, Black} {
		for n := l.Bar[c.index()]; n > 0; n-- {
			b.bar[c.index()] = append(b.bar[c.index()], NewChecker(c))
		}
		b.off[c.index()] = l.Off[c.index()]
	}
	return b, nil
}

// Layout returns a copy of the current board state.
func (b *Board) Layout() Layout {
	var l Layout
	for space := range b.points {
		owner, count := b.PointOwnerCount(space)
		switch owner {
		case White:
			l.Points[space] = count
		case Black:
			l.Points[space] = -count
		}
	}
	l.Bar = b.Bar()
	l.Off = b.Off()
	return l
}

// PointOwnerCount returns the owner of a point and the number of checkers on
// it. Empty points and invalid indexes report NoColor and zero.
func (b *Board) PointOwnerCount(space int) (Color, int) {
	if space < 0 || space >= numPoints || len(b.points[space]) == 0 {
		return NoColor, 0
	}
	return b.points[space][0].Color(), len(b.points[space])
}

func (b *Board) Point(space int) Point {
	owner, count := b.PointOwnerCount(space)
	return Point{Owner: owner, Count: count}
}

// Points returns a snapshot of every point. Modifying it has no effect on the board.
func (b *Board) Points() [numPoints]Point {
	var p [numPoints]Point
	for space := range b.points {
		p[space] = b.Point(space)
	}
	return p
}

// Bar returns the number of checkers on the bar, indexed by color (White first).
func (b *Board) Bar() [2]int {
	return [2]int{len(b.bar[White.index()]), len(b.bar[Black.index()])}
}

// Off returns the number of checkers borne off, indexed by color (White first).
func (b *Board) Off() [2]int {
	return b.off
}

func (b *Board) BarCount(c Color) int {
	if !c.Valid() {
		return 0
	}
	return len(b.bar[c.index()])
}

func (b *Board) OffCount(c Color) int {
	if !c.Valid() {
		return 0
	}
	return b.off[c.index()]
}

func (b *Board) HasCheckersOnBar(c Color) bool {
	return b.BarCount(c) > 0
}

// PipCount returns the total number of pips c needs to bear off every checker.
func (b *Board) PipCount(c Color) int {
	if !c.Valid() {
		return 0
	}
	pips := b.BarCount(c) * (numPoints + 1)
	for space := range b.points {
		if owner, count := b.PointOwnerCount(space); owner == c {
			pips += count * c.distance(space)
		}
	}
	return pips
}

// CanBearOff reports whether every checker of c still in play is in its home
// quadrant.
func (b *Board) CanBearOff(c Color) bool {
	if !c.Valid() || b.HasCheckersOnBar(c) {
		return false
	}
	for space := range b.points {
		if owner, _ := b.PointOwnerCount(space); owner == c && !c.inHome(space) {
			return false
		}
	}
	return true
}

// canLandOn reports whether c may place a checker on space. A single
// opposing checker may be hit; two or more block the point.
func (b *Board) canLandOn(space int, c Color) bool {
	if space < 0 || space >= numPoints {
		return false
	}
	owner, count := b.PointOwnerCount(space)
	return owner == NoColor || owner == c || count == 1
}

// isFurthest reports whether no checker of c sits farther from the exit than
// the checker at space.
func (b *Board) isFurthest(space int, c Color) bool {
	distance := c.distance(space)
	for other := range b.points {
		if owner, _ := b.PointOwnerCount(other); owner == c && c.distance(other) > distance {
			return false
		}
	}
	return true
}

// destination returns the index reached by moving die pips from space. The
// second value is true when the move bears the checker off.
func destination(from int, die int, c Color) (int, bool) {
	if from == SpaceBar {
		return c.entryPoint(die), false
	}
	to := from + c.Direction()*die
	if to < 0 || to >= numPoints {
		return SpaceOff, true
	}
	return to, false
}

// CanMove reports whether c may move a checker from space using die. Use
// SpaceBar as the origin to re-enter a checker from the bar.
func (b *Board) CanMove(from int, die int, c Color) bool {
	if die < minDie || die > maxDie || !c.Valid() {
		return false
	}

	onBar := b.HasCheckersOnBar(c)
	if from == SpaceBar {
		return onBar && b.canLandOn(c.entryPoint(die), c)
	} else if onBar {
		return false
	}

	owner, count := b.PointOwnerCount(from)
	if owner != c || count == 0 {
		return false
	}

	to, bearOff := destination(from, die, c)
	if !bearOff {
		return b.canLandOn(to, c)
	}

	if !b.CanBearOff(c) {
		return false
	}
	distance := c.distance(from)
	switch {
	case die == distance:
		return true
	case die > distance:
		return b.isFurthest(from, c)
	default:
		return false
	}
}

// Move moves a checker of c from space using die. It returns false without
// modifying the board when the move is not legal.
func (b *Board) Move(from int, die int, c Color) bool {
	_, ok := b.move(from, die, c)
	return ok
}

func (b *Board) move(from int, die int, c Color) (PlayedMove, bool) {
	if !b.CanMove(from, die, c) {
		return PlayedMove{}, false
	}

	to, bearOff := destination(from, die, c)
	played := PlayedMove{
		Player:  c,
		From:    from,
		To:      to,
		Die:     die,
		BoreOff: bearOff,
	}

	var checker Checker
	if from == SpaceBar {
		checker = pop(&b.bar[c.index()])
	} else {
		checker = pop(&b.points[from])
	}

	if bearOff {
		b.off[c.index()]++
		return played, true
	}

	played.Hit = b.captureIfBlot(to, c)
	b.points[to] = append(b.points[to], checker)
	return played, true
}

// captureIfBlot sends a lone opposing checker on space to the bar.
func (b *Board) captureIfBlot(space int, attacker Color) bool {
	owner, count := b.PointOwnerCount(space)
	if owner != attacker.Opponent() || count != 1 {
		return false
	}
	captured := pop(&b.points[space])
	b.bar[owner.index()] = append(b.bar[owner.index()], captured)
	return true
}

func pop(stack *[]Checker) Checker {
	s := *stack
	c := s[len(s)-1]
	*stack = s[:len(s)-1]
	return c
}

// ValidMoves returns every distinct origin and die pair c may play with the
// provided dice. When c has checkers on the bar only re-entry moves are listed.
func (b *Board) ValidMoves(c Color, dice []int) []Move {
	values := distinctDice(dice)
	if len(values) == 0 || !c.Valid() {
		return nil
	}

	var moves []Move
	if b.HasCheckersOnBar(c) {
		for _, die := range values {
			if b.CanMove(SpaceBar, die, c) {
				moves = append(moves, Move{From: SpaceBar, Die: die})
			}
		}
		return moves
	}

	for space := range b.points {
		if owner, _ := b.PointOwnerCount(space); owner != c {
			continue
		}
		for _, die := range values {
			if b.CanMove(space, die, c) {
				moves = append(moves, Move{From: space, Die: die})
			}
		}
	}
	return moves
}

func (b *Board) HasValidMoves(c Color, dice []int) bool {
	return len(b.ValidMoves(c, dice)) > 0
}

func numPlayerCheckers(checkers int, c Color) int {
	if c == White {
		if checkers > 0 {
			return checkers
		}
		return 0
	} else {
		if checkers < 0 {
			return checkers * -1
		}
		return 0
	}
}
