// Package console implements a text front-end for bgengine.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"codeberg.org/tslocum/bgengine"
	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const prompt = "> "

// Console reads commands from an input stream and writes events as text.
// It implements bgengine.Client.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	lang    string
	printer *message.Printer
	players [2]bgengine.Player
}

// New returns a console using the translation closest to lang. English is
// used when lang is empty or no translation matches.
func New(in io.Reader, out io.Writer, lang string) *Console {
	lang = matchLanguage(lang)
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	c := &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		lang:    lang,
		printer: message.NewPrinter(tag),
	}
	c.players[0], _ = bgengine.NewPlayer(bgengine.White, "")
	c.players[1], _ = bgengine.NewPlayer(bgengine.Black, "")
	return c
}

func (c *Console) Language() string {
	return c.lang
}

func (c *Console) tr(s string) string {
	return gotext.GetD(domainPrefix+c.lang, s)
}

// SetPlayers sets the names used when describing events.
func (c *Console) SetPlayers(players [2]bgengine.Player) {
	c.players = players
}

func (c *Console) name(color bgengine.Color) string {
	for _, p := range c.players {
		if p.Color == color {
			return p.Name
		}
	}
	return color.String()
}

func (c *Console) printf(format string, a ...any) error {
	_, err := c.printer.Fprintf(c.out, c.tr(format), a...)
	return err
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// PromptName asks for the name of the player using color. An empty answer
// selects def.
func (c *Console) PromptName(color bgengine.Color, def string) (string, error) {
	label := "Name of the White player"
	if color == bgengine.Black {
		label = "Name of the Black player"
	}
	if err := c.printf("%s [%s]: ", c.tr(label), def); err != nil {
		return "", err
	}
	name, err := c.readLine()
	if err != nil {
		return "", err
	}
	if name == "" {
		return def, nil
	}
	return name, nil
}

// ReadCommand prompts for and parses the next command. Blank lines are skipped.
func (c *Console) ReadCommand() (any, error) {
	for {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return nil, err
		}
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			continue
		}
		return ParseCommand(line)
	}
}

// WriteEvent prints a description of ev.
func (c *Console) WriteEvent(ev any) error {
	switch e := ev.(type) {
	case *bgengine.EventBoard:
		c.players = e.State.Players
		_, err := c.out.Write(RenderBoard(&e.State, c.tr))
		return err
	case *bgengine.EventRolled:
		return c.printf("%s rolled %s.\n", c.name(e.Player), formatDice(e.Dice))
	case *bgengine.EventFailedRoll:
		return c.printf("Cannot roll: %s\n", c.tr(e.Reason))
	case *bgengine.EventMoved:
		if e.Move.BoreOff {
			return c.printf("%s bore off from %s.\n", c.name(e.Player), FormatSpace(e.Move.From))
		} else if e.Move.Hit {
			return c.printf("%s moved %s and hit.\n", c.name(e.Player), FormatMove(e.Move))
		}
		return c.printf("%s moved %s.\n", c.name(e.Player), FormatMove(e.Move))
	case *bgengine.EventFailedMove:
		return c.printf("Cannot move %s/%s: %s\n", FormatSpace(e.From), FormatSpace(e.To), c.tr(e.Reason))
	case *bgengine.EventTurn:
		return c.printf("It is %s's turn. Type 'roll' to roll the dice.\n", c.name(e.Player))
	case *bgengine.EventFailedEnd:
		return c.printf("Cannot end turn: %s\n", c.tr(e.Reason))
	case *bgengine.EventNoMoves:
		return c.printf("%s cannot play %s. Type 'end' to pass.\n", c.name(e.Player), formatDice(e.Dice))
	case *bgengine.EventWin:
		return c.printf("%s wins the game!\n", c.name(e.Player))
	case *bgengine.EventHint:
		return c.writeHint(e)
	case *bgengine.EventHistory:
		return c.writeHistory(e)
	case *bgengine.EventHelp:
		return c.writeHelp()
	default:
		return fmt.Errorf("unknown event type %T", ev)
	}
}

func (c *Console) writeHint(e *bgengine.EventHint) error {
	if len(e.Moves) == 0 {
		return c.printf("No legal moves.\n")
	}
	if err := c.printf("Legal moves:\n"); err != nil {
		return err
	}
	for _, m := range e.Moves {
		if err := c.printf("  %s/%s (%d)\n", FormatSpace(m.From), FormatSpace(m.To(e.Player)), m.Die); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) writeHistory(e *bgengine.EventHistory) error {
	if len(e.Moves) == 0 {
		return c.printf("No moves have been played.\n")
	}
	if err := c.printf("Move history:\n"); err != nil {
		return err
	}
	for i, m := range e.Moves {
		if err := c.printf("%3d. %s %s (%d)\n", i+1, c.name(m.Player), FormatMove(m), m.Die); err != nil {
			return err
		}
	}
	return nil
}

var helpText = []string{
	"roll                 Roll the dice.",
	"move <from> <to>     Move a checker. Use 'bar' to enter and 'off' to bear off.",
	"end                  End your turn when no legal move remains.",
	"hint                 List legal moves.",
	"show                 Print the board.",
	"history              Print every move played.",
	"quit                 Leave the game.",
}

func (c *Console) writeHelp() error {
	if err := c.printf("Commands:\n"); err != nil {
		return err
	}
	for _, line := range helpText {
		if _, err := fmt.Fprintf(c.out, "  %s\n", c.tr(line)); err != nil {
			return err
		}
	}
	return nil
}
