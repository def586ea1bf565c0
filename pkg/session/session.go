// Package session drives a single game with commands read from a client.
package session

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"codeberg.org/tslocum/bgengine"
	"github.com/rs/zerolog"
)

// Reasons reported in failure events. Clients may translate them.
const (
	ReasonAlreadyRolled = "You have already rolled."
	ReasonGameOver      = "The game is over."
	ReasonRollFirst     = "Roll the dice first."
	ReasonNoDie         = "None of your dice can play that move."
	ReasonEnterFirst    = "You must enter your checkers from the bar first."
	ReasonIllegalMove   = "That move is not legal."
	ReasonMovesLeft     = "You still have legal moves to play."
)

type session struct {
	game   *bgengine.Game
	client bgengine.Client
	log    zerolog.Logger
	err    error
}

// Run plays game until it is won, the client quits or the client runs out
// of input. Events produced by the game are forwarded to the client.
func Run(game *bgengine.Game, client bgengine.Client, logger zerolog.Logger) error {
	s := &session{
		game:   game,
		client: client,
		log:    logger,
	}
	game.SetEventHandler(s.write)
	defer game.SetEventHandler(nil)

	s.sendBoard()
	for s.err == nil && !game.IsGameOver() {
		cmd, err := client.ReadCommand()
		if errors.Is(err, io.EOF) {
			s.log.Debug().Msg("client input ended")
			return nil
		} else if errors.Is(err, bgengine.ErrUnknownCommand) {
			s.log.Debug().Err(err).Msg("unknown command")
			s.write(&bgengine.EventHelp{
				Event: bgengine.Event{Type: bgengine.EventTypeHelp, Player: game.Turn()},
			})
			continue
		} else if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		if quit := s.handle(cmd); quit {
			s.log.Debug().Stringer("player", game.Turn()).Msg("client quit")
			break
		}
	}
	if s.err != nil {
		return fmt.Errorf("write event: %w", s.err)
	}
	return nil
}

func (s *session) write(ev any) {
	if s.err != nil {
		return
	}
	s.err = s.client.WriteEvent(ev)
}

func (s *session) event(t bgengine.EventType) bgengine.Event {
	return bgengine.Event{Type: t, Player: s.game.Turn()}
}

func (s *session) sendBoard() {
	s.write(&bgengine.EventBoard{
		Event: s.event(bgengine.EventTypeBoard),
		State: s.game.State(),
	})
}

func (s *session) handle(cmd any) bool {
	switch c := cmd.(type) {
	case bgengine.CommandMove:
		s.move(c.From, c.To)
	case *bgengine.CommandMove:
		s.move(c.From, c.To)
	case bgengine.Command:
		return s.handleCommand(c.Type)
	case *bgengine.Command:
		return s.handleCommand(c.Type)
	default:
		s.log.Warn().Msgf("unexpected command %T", cmd)
	}
	return false
}

func (s *session) handleCommand(t bgengine.CommandType) bool {
	s.log.Debug().Str("command", string(t)).Stringer("player", s.game.Turn()).Msg("command")

	switch t {
	case bgengine.CommandTypeRoll:
		s.roll()
	case bgengine.CommandTypeEnd:
		s.endTurn()
	case bgengine.CommandTypeHint:
		s.write(&bgengine.EventHint{
			Event: s.event(bgengine.EventTypeHint),
			Moves: s.game.ValidMoves(),
		})
	case bgengine.CommandTypeBoard:
		s.sendBoard()
	case bgengine.CommandTypeHistory:
		s.write(&bgengine.EventHistory{
			Event: s.event(bgengine.EventTypeHistory),
			Moves: s.game.History(),
		})
	case bgengine.CommandTypeHelp:
		s.write(&bgengine.EventHelp{
			Event: s.event(bgengine.EventTypeHelp),
		})
	case bgengine.CommandTypeQuit:
		return true
	default:
		s.log.Warn().Str("command", string(t)).Msg("unsupported command")
	}
	return false
}

func (s *session) roll() {
	dice, ok := s.game.Roll()
	if !ok {
		reason := ReasonAlreadyRolled
		if s.game.IsGameOver() {
			reason = ReasonGameOver
		}
		s.write(&bgengine.EventFailedRoll{
			Event:  s.event(bgengine.EventTypeFailedRoll),
			Reason: reason,
		})
		return
	}

	if !s.game.HasValidMoves() {
		s.log.Debug().Stringer("player", s.game.Turn()).Ints("dice", dice).Msg("no legal moves")
		s.write(&bgengine.EventNoMoves{
			Event: s.event(bgengine.EventTypeNoMoves),
			Dice:  dice,
		})
	}
}

func (s *session) move(from int, to int) {
	s.log.Debug().Int("from", from).Int("to", to).Stringer("player", s.game.Turn()).Msg("command move")

	fail := func(reason string) {
		s.write(&bgengine.EventFailedMove{
			Event:  s.event(bgengine.EventTypeFailedMove),
			From:   from,
			To:     to,
			Reason: reason,
		})
	}

	switch {
	case s.game.IsGameOver():
		fail(ReasonGameOver)
		return
	case !s.game.Rolled():
		fail(ReasonRollFirst)
		return
	case from != bgengine.SpaceBar && s.game.Board().HasCheckersOnBar(s.game.Turn()):
		fail(ReasonEnterFirst)
		return
	}

	die, ok := s.game.DieFor(from, to)
	if !ok {
		fail(ReasonNoDie)
		return
	}
	if !s.game.CanMove(from, die) {
		if !slices.Contains(s.game.AvailableDice(), die) {
			fail(ReasonNoDie)
		} else {
			fail(ReasonIllegalMove)
		}
		return
	}

	s.game.Move(from, die)
	s.sendBoard()
}

func (s *session) endTurn() {
	if s.game.EndTurn() {
		s.sendBoard()
		return
	}

	reason := ReasonMovesLeft
	switch {
	case s.game.IsGameOver():
		reason = ReasonGameOver
	case !s.game.Rolled():
		reason = ReasonRollFirst
	}
	s.write(&bgengine.EventFailedEnd{
		Event:  s.event(bgengine.EventTypeFailedEnd),
		Reason: reason,
	})
}
