package bgengine

import "errors"

// commands are always sent TO the game by a client

// ErrUnknownCommand is returned by clients that cannot parse their input.
var ErrUnknownCommand = errors.New("unknown command")

type CommandType string

const (
	CommandTypeRoll    CommandType = "roll"
	CommandTypeMove    CommandType = "move"
	CommandTypeEnd     CommandType = "end"
	CommandTypeHint    CommandType = "hint"
	CommandTypeBoard   CommandType = "board"
	CommandTypeHistory CommandType = "history"
	CommandTypeHelp    CommandType = "help"
	CommandTypeQuit    CommandType = "quit"
)

type Command struct {
	Type CommandType
}

// CommandMove moves a checker From a point (or SpaceBar) To a point (or SpaceOff).
type CommandMove struct {
	Command
	From int
	To   int
}

func NewCommand(t CommandType) Command {
	return Command{Type: t}
}

func NewCommandMove(from int, to int) CommandMove {
	return CommandMove{
		Command: Command{Type: CommandTypeMove},
		From:    from,
		To:      to,
	}
}
