package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"codeberg.org/tslocum/bgengine"
	"github.com/stretchr/testify/require"
)

func TestMatchLanguage(t *testing.T) {
	require.Equal(t, "en", matchLanguage(""))
	require.Equal(t, "en", matchLanguage("en-GB"))
	require.Equal(t, "en", matchLanguage("not a language"))
	require.Equal(t, "es", matchLanguage("es"))
	require.Equal(t, "es", matchLanguage("es-AR"))
	require.Contains(t, Languages(), "es")
}

func TestReadCommand(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("\n\nroll\nmove 24 21\ndance\n"), &out, "")

	cmd, err := c.ReadCommand()
	require.NoError(t, err)
	require.Equal(t, bgengine.NewCommand(bgengine.CommandTypeRoll), cmd)

	cmd, err = c.ReadCommand()
	require.NoError(t, err)
	require.Equal(t, bgengine.NewCommandMove(23, 20), cmd)

	_, err = c.ReadCommand()
	require.ErrorIs(t, err, bgengine.ErrUnknownCommand)

	_, err = c.ReadCommand()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, strings.Repeat(prompt, 6), out.String())
}

func TestPromptName(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("Ana\n\n"), &out, "en")

	name, err := c.PromptName(bgengine.White, "White")
	require.NoError(t, err)
	require.Equal(t, "Ana", name)

	name, err = c.PromptName(bgengine.Black, "Black")
	require.NoError(t, err)
	require.Equal(t, "Black", name)

	require.Equal(t, "Name of the White player [White]: Name of the Black player [Black]: ", out.String())

	_, err = c.PromptName(bgengine.White, "White")
	require.ErrorIs(t, err, io.EOF)
}

func players(t *testing.T) [2]bgengine.Player {
	white, err := bgengine.NewPlayer(bgengine.White, "Ana")
	require.NoError(t, err)
	black, err := bgengine.NewPlayer(bgengine.Black, "Beto")
	require.NoError(t, err)
	return [2]bgengine.Player{white, black}
}

func TestWriteEvent(t *testing.T) {
	white := bgengine.Event{Player: bgengine.White}
	for _, tc := range []struct {
		name string
		ev   any
		want string
	}{
		{"rolled", &bgengine.EventRolled{Event: white, Dice: []int{3, 1}}, "Ana rolled 3 1.\n"},
		{"moved", &bgengine.EventMoved{Event: white, Move: bgengine.PlayedMove{From: 23, To: 20, Die: 3}}, "Ana moved 24/21.\n"},
		{"hit", &bgengine.EventMoved{Event: white, Move: bgengine.PlayedMove{From: 12, To: 10, Die: 2, Hit: true}}, "Ana moved 13/11* and hit.\n"},
		{"bore off", &bgengine.EventMoved{Event: white, Move: bgengine.PlayedMove{From: 2, To: bgengine.SpaceOff, Die: 3, BoreOff: true}}, "Ana bore off from 3.\n"},
		{"failed move", &bgengine.EventFailedMove{Event: white, From: bgengine.SpaceBar, To: 20, Reason: "That move is not legal."}, "Cannot move bar/21: That move is not legal.\n"},
		{"turn", &bgengine.EventTurn{Event: bgengine.Event{Player: bgengine.Black}}, "It is Beto's turn. Type 'roll' to roll the dice.\n"},
		{"no moves", &bgengine.EventNoMoves{Event: white, Dice: []int{6, 6, 6, 6}}, "Ana cannot play 6 6 6 6. Type 'end' to pass.\n"},
		{"win", &bgengine.EventWin{Event: white}, "Ana wins the game!\n"},
		{"no hint", &bgengine.EventHint{Event: white}, "No legal moves.\n"},
		{"hint", &bgengine.EventHint{Event: white, Moves: []bgengine.Move{{From: 23, Die: 3}, {From: 2, Die: 6}}}, "Legal moves:\n  24/21 (3)\n  3/off (6)\n"},
		{"history", &bgengine.EventHistory{Event: white, Moves: []bgengine.PlayedMove{{Player: bgengine.Black, From: 0, To: 3, Die: 3}}}, "Move history:\n  1. Beto 1/4 (3)\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			c := New(strings.NewReader(""), &out, "en")
			c.SetPlayers(players(t))
			require.NoError(t, c.WriteEvent(tc.ev))
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestWriteEventSpanish(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, "es-AR")
	require.Equal(t, "es", c.Language())
	c.SetPlayers(players(t))

	require.NoError(t, c.WriteEvent(&bgengine.EventRolled{Event: bgengine.Event{Player: bgengine.White}, Dice: []int{5, 2}}))
	require.NoError(t, c.WriteEvent(&bgengine.EventFailedEnd{Event: bgengine.Event{Player: bgengine.White}, Reason: "Roll the dice first."}))
	require.Equal(t, "Ana tiró 5 2.\nNo se puede terminar el turno: Primero tirá los dados.\n", out.String())
}

func TestWriteEventBoardUpdatesNames(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, "en")
	g := bgengine.NewGame(bgengine.WithPlayerNames("Carla", "Dani"))

	require.NoError(t, c.WriteEvent(&bgengine.EventBoard{State: g.State()}))
	require.Contains(t, out.String(), "Carla")

	out.Reset()
	require.NoError(t, c.WriteEvent(&bgengine.EventWin{Event: bgengine.Event{Player: bgengine.Black}}))
	require.Equal(t, "Dani wins the game!\n", out.String())

	require.Error(t, c.WriteEvent("not an event"))
}
