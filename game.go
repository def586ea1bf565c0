package bgengine

import (
	"slices"

	"github.com/rs/zerolog"
)

// Game composes a Board and Dice into the turn protocol of a single game:
// roll, play each die, then pass the turn to the opponent.
//
// A Game is not safe for concurrent use.
type Game struct {
	board   *Board
	dice    *Dice
	players [2]Player
	turn    Color
	roll    []int // The roll as reported to the player.
	used    []int // Die values consumed this turn.
	history []PlayedMove
	handler func(ev any)
	log     zerolog.Logger
}

type Option func(g *Game)

// WithBoard starts the game from b instead of the standard layout.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

func WithDice(d *Dice) Option {
	return func(g *Game) {
		g.dice = d
	}
}

func WithPlayerNames(white string, black string) Option {
	return func(g *Game) {
		g.players[White.index()].Name = white
		g.players[Black.index()].Name = black
	}
}

// WithTurn sets the color that rolls first. White rolls first by default.
func WithTurn(c Color) Option {
	return func(g *Game) {
		if c.Valid() {
			g.turn = c
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithEventHandler registers f to receive EventRolled, EventMoved, EventTurn
// and EventWin as they happen.
func WithEventHandler(f func(ev any)) Option {
	return func(g *Game) {
		g.handler = f
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		turn: White,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = NewBoard()
	}
	if g.dice == nil {
		g.dice = NewDice(nil)
	}
	for _, c := range []Color{White, Black} {
		p, err := NewPlayer(c, g.players[c.index()].Name)
		if err != nil {
			panic(err)
		}
		g.players[c.index()] = p
	}
	return g
}

// SetEventHandler replaces the handler registered with WithEventHandler.
func (g *Game) SetEventHandler(f func(ev any)) {
	g.handler = f
}

func (g *Game) emit(ev any) {
	if g.handler != nil {
		g.handler(ev)
	}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turn() Color {
	return g.turn
}

func (g *Game) Players() [2]Player {
	return g.players
}

func (g *Game) Player(c Color) Player {
	if !c.Valid() {
		return Player{}
	}
	return g.players[c.index()]
}

func (g *Game) CurrentPlayer() Player {
	return g.Player(g.turn)
}

func (g *Game) OpponentPlayer() Player {
	return g.Player(g.turn.Opponent())
}

// Dice returns the current roll, including dice that were already played.
func (g *Game) Dice() []int {
	return slices.Clone(g.roll)
}

func (g *Game) Rolled() bool {
	return len(g.roll) > 0
}

// AvailableDice returns the dice that may still be played this turn.
func (g *Game) AvailableDice() []int {
	return subtractDice(g.roll, g.used)
}

func (g *Game) dieAvailable(die int) bool {
	return slices.Contains(g.AvailableDice(), die)
}

// Roll rolls the dice for the current turn. It fails when the dice were
// already rolled this turn or the game is over.
func (g *Game) Roll() ([]int, bool) {
	if g.Rolled() || g.IsGameOver() {
		return nil, false
	}
	g.roll = g.dice.Roll()
	g.used = g.used[:0]

	g.log.Debug().Stringer("player", g.turn).Ints("dice", g.roll).Msg("rolled")
	g.emit(&EventRolled{
		Event: Event{Type: EventTypeRolled, Player: g.turn},
		Dice:  g.Dice(),
	})
	return g.Dice(), true
}

func (g *Game) CanMove(from int, die int) bool {
	if g.IsGameOver() || !g.dieAvailable(die) {
		return false
	}
	return g.board.CanMove(from, die, g.turn)
}

// Move plays die for the current player from the given point (or SpaceBar).
// The turn ends automatically once every die is played.
func (g *Game) Move(from int, die int) bool {
	if !g.CanMove(from, die) {
		return false
	}
	played, ok := g.board.move(from, die, g.turn)
	if !ok {
		return false
	}
	g.used = append(g.used, die)
	g.history = append(g.history, played)

	g.log.Debug().
		Stringer("player", played.Player).
		Int("from", played.From).
		Int("to", played.To).
		Int("die", played.Die).
		Bool("hit", played.Hit).
		Bool("off", played.BoreOff).
		Msg("moved")
	g.emit(&EventMoved{
		Event: Event{Type: EventTypeMoved, Player: played.Player},
		Move:  played,
	})

	if winner := g.Winner(); winner != NoColor {
		g.log.Info().Stringer("winner", winner).Int("moves", len(g.history)).Msg("game over")
		g.emit(&EventWin{
			Event: Event{Type: EventTypeWin, Player: winner},
		})
		return true
	}

	if len(g.AvailableDice()) == 0 {
		g.endTurn()
	}
	return true
}

// DieFor returns the die value that moves a checker of the current player
// from one point to another. Bearing off (to SpaceOff) uses the smallest
// available die that is legal.
func (g *Game) DieFor(from int, to int) (int, bool) {
	if to == SpaceOff {
		if from < 0 {
			return 0, false
		}
		for _, die := range distinctDice(g.AvailableDice()) {
			if _, bearOff := destination(from, die, g.turn); bearOff && g.CanMove(from, die) {
				return die, true
			}
		}
		return 0, false
	}

	var die int
	switch {
	case to < 0 || to >= numPoints:
		return 0, false
	case from == SpaceBar:
		for d := minDie; d <= maxDie; d++ {
			if g.turn.entryPoint(d) == to {
				die = d
			}
		}
	default:
		die = (to - from) * g.turn.Direction()
	}
	if die < minDie || die > maxDie {
		return 0, false
	}
	return die, true
}

func (g *Game) ValidMoves() []Move {
	if g.IsGameOver() {
		return nil
	}
	return g.board.ValidMoves(g.turn, g.AvailableDice())
}

func (g *Game) HasValidMoves() bool {
	return len(g.ValidMoves()) > 0
}

// CanEndTurn reports whether the current player has rolled and has either
// played every die or has no legal move left.
func (g *Game) CanEndTurn() bool {
	if !g.Rolled() || g.IsGameOver() {
		return false
	}
	if len(g.AvailableDice()) == 0 {
		return true
	}
	return !g.HasValidMoves()
}

// EndTurn passes the turn to the opponent. It returns false while the current
// player still has a legal move to play.
func (g *Game) EndTurn() bool {
	if !g.CanEndTurn() {
		return false
	}
	g.endTurn()
	return true
}

func (g *Game) endTurn() {
	g.log.Debug().
		Stringer("player", g.turn).
		Ints("unplayed", g.AvailableDice()).
		Msg("turn ended")

	g.turn = g.turn.Opponent()
	g.roll = nil
	g.used = nil
	g.emit(&EventTurn{
		Event: Event{Type: EventTypeTurn, Player: g.turn},
	})
}

func (g *Game) IsGameOver() bool {
	return g.Winner() != NoColor
}

// Winner returns the color that bore off all of its checkers, or NoColor.
func (g *Game) Winner() Color {
	for _, c := range []Color{White, Black} {
		if g.board.OffCount(c) == numCheckers {
			return c
		}
	}
	return NoColor
}

// History returns every move played so far.
func (g *Game) History() []PlayedMove {
	return slices.Clone(g.history)
}

// State returns a snapshot of the game.
func (g *Game) State() GameState {
	return GameState{
		Turn:      g.turn,
		Players:   g.players,
		Dice:      g.Dice(),
		Available: g.AvailableDice(),
		Layout:    g.board.Layout(),
		Moves:     g.ValidMoves(),
		Pips:      [2]int{g.board.PipCount(White), g.board.PipCount(Black)},
		Winner:    g.Winner(),
	}
}
