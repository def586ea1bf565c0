package console

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/tslocum/bgengine"
)

// ParseCommand parses a line of user input into a bgengine.Command or
// bgengine.CommandMove. Points are numbered 1-24.
func ParseCommand(line string) (any, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty input: %w", bgengine.ErrUnknownCommand)
	}

	switch fields[0] {
	case "roll", "r":
		return bgengine.NewCommand(bgengine.CommandTypeRoll), nil
	case "move", "m", "mv":
		if len(fields) != 3 {
			return nil, fmt.Errorf("move requires a source and a destination: %w", bgengine.ErrUnknownCommand)
		}
		from, err := parseSpace(fields[1], true)
		if err != nil {
			return nil, err
		}
		to, err := parseSpace(fields[2], false)
		if err != nil {
			return nil, err
		}
		return bgengine.NewCommandMove(from, to), nil
	case "end", "pass", "e":
		return bgengine.NewCommand(bgengine.CommandTypeEnd), nil
	case "hint", "moves", "h":
		return bgengine.NewCommand(bgengine.CommandTypeHint), nil
	case "show", "board", "b":
		return bgengine.NewCommand(bgengine.CommandTypeBoard), nil
	case "history", "log":
		return bgengine.NewCommand(bgengine.CommandTypeHistory), nil
	case "help", "?":
		return bgengine.NewCommand(bgengine.CommandTypeHelp), nil
	case "quit", "exit", "q":
		return bgengine.NewCommand(bgengine.CommandTypeQuit), nil
	default:
		return nil, fmt.Errorf("%q: %w", fields[0], bgengine.ErrUnknownCommand)
	}
}

// parseSpace converts a human point number (or "bar"/"off") to a space index.
func parseSpace(s string, origin bool) (int, error) {
	switch {
	case origin && s == "bar":
		return bgengine.SpaceBar, nil
	case !origin && s == "off":
		return bgengine.SpaceOff, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 24 {
		return 0, fmt.Errorf("invalid point %q: %w", s, bgengine.ErrUnknownCommand)
	}
	return n - 1, nil
}

// FormatSpace converts a space index to its human form.
func FormatSpace(space int) string {
	switch space {
	case bgengine.SpaceBar:
		return "bar"
	case bgengine.SpaceOff:
		return "off"
	default:
		return strconv.Itoa(space + 1)
	}
}
