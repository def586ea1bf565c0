package console

import (
	"strings"
	"testing"

	"codeberg.org/tslocum/bgengine"
	"github.com/stretchr/testify/require"
)

func identity(s string) string {
	return s
}

func TestRenderBoard(t *testing.T) {
	g := bgengine.NewGame(bgengine.WithPlayerNames("Ana", "Beto"))
	s := g.State()

	lines := strings.Split(strings.TrimSuffix(string(RenderBoard(&s, identity)), "\n"), "\n")
	require.Len(t, lines, 2+2*checkerRows+1)
	require.Equal(t, string(boardTop), lines[0])
	require.Equal(t, string(boardBottom), lines[len(lines)-1])

	width := len(boardTop)
	for _, line := range lines {
		runes := []rune(line)
		require.GreaterOrEqual(t, len(runes), width, line)
		require.Contains(t, "│+", string(runes[width-1]), line)
		require.True(t, len(runes) == width || strings.HasPrefix(string(runes[width:]), "  "), line)
	}

	// Point 24 (two White checkers) is the first column of the top half.
	require.Equal(t, "│ o ", string([]rune(lines[1])[:4]))
	require.Equal(t, "│ o ", string([]rune(lines[2])[:4]))
	require.Equal(t, "│   ", string([]rune(lines[3])[:4]))

	// Point 1 (two Black checkers) is the first column of the bottom half.
	bottomEdge := lines[len(lines)-2]
	require.Equal(t, "│ x ", string([]rune(bottomEdge)[:4]))

	require.Contains(t, lines[1], "x Beto  pips: 167")
	require.Contains(t, bottomEdge, "o Ana  pips: 167")
	require.Contains(t, lines[checkerRows+1], "Turn: Ana  Dice: not rolled")
}

func TestRenderBoardStacksAndBar(t *testing.T) {
	var l bgengine.Layout
	l.Points[5] = 12
	l.Bar[0] = 2
	l.Off[0] = 1
	l.Points[18] = -15
	b, err := bgengine.NewBoardFromLayout(l)
	require.NoError(t, err)
	g := bgengine.NewGame(bgengine.WithBoard(b))
	s := g.State()

	out := string(RenderBoard(&s, identity))
	require.Contains(t, out, "12 ")
	require.Contains(t, out, "bar: 2")
	require.Contains(t, out, "off: 1")
	require.Contains(t, out, "│ 2 │")
}

func TestFormatDice(t *testing.T) {
	require.Equal(t, "-", formatDice(nil))
	require.Equal(t, "4 4 4 4", formatDice([]int{4, 4, 4, 4}))
}
