package console

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/tslocum/bgengine"
)

var boardTop = []byte("+24-23-22-21-20-19-+---+18-17-16-15-14-13-+")
var boardBottom = []byte("+-1--2--3--4--5--6-+---+-7--8--9-10-11-12-+")

const (
	VerticalBar rune = '\u2502' // │

	checkerRows = 5
)

// checkerSymbol returns the character drawn for checkers of c.
func checkerSymbol(c bgengine.Color) string {
	switch c {
	case bgengine.White:
		return "o"
	case bgengine.Black:
		return "x"
	default:
		return " "
	}
}

// renderSpace draws row (1 is nearest the edge of the board) of a point.
// Stacks taller than the board show their count on the last row.
func renderSpace(owner bgengine.Color, count int, row int) []byte {
	switch {
	case count == 0 || row > count:
		return []byte("   ")
	case row == checkerRows && count > checkerRows:
		return []byte(fmt.Sprintf("%2d ", count))
	default:
		return []byte(" " + checkerSymbol(owner) + " ")
	}
}

// renderBar draws the bar column. Black checkers sit in the top half and
// White checkers in the bottom half.
func renderBar(count int, row int) []byte {
	switch {
	case count == 0 || row > 1:
		return []byte("   ")
	default:
		return []byte(fmt.Sprintf("%2d ", count))
	}
}

// RenderBoard draws the board of s as text. Every label is passed through tr.
func RenderBoard(s *bgengine.GameState, tr func(string) string) []byte {
	var t bytes.Buffer

	playerLine := func(c bgengine.Color) string {
		line := fmt.Sprintf("%s %s  %s: %d", checkerSymbol(c), s.Player(c).Name, tr("pips"), s.Pip(c))
		if bar := s.Bar(c); bar > 0 {
			line += fmt.Sprintf("  %s: %d", tr("bar"), bar)
		}
		if off := s.Off(c); off > 0 {
			line += fmt.Sprintf("  %s: %d", tr("off"), off)
		}
		return line
	}

	row := func(points []int, r int, bar int, side string) {
		t.WriteRune(VerticalBar)
		for i, space := range points {
			owner, count := s.Point(space)
			t.Write(renderSpace(owner, count, r))
			if i == 5 {
				t.WriteRune(VerticalBar)
				t.Write(renderBar(bar, r))
				t.WriteRune(VerticalBar)
			}
		}
		t.WriteRune(VerticalBar)
		if side != "" {
			t.WriteString("  ")
			t.WriteString(side)
		}
		t.WriteByte('\n')
	}

	top := []int{23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12}
	bottom := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	t.Write(boardTop)
	t.WriteByte('\n')
	for r := 1; r <= checkerRows; r++ {
		var side string
		if r == 1 {
			side = playerLine(bgengine.Black)
		}
		row(top, r, s.Bar(bgengine.Black), side)
	}

	status := fmt.Sprintf("%s: %s", tr("Turn"), s.LocalPlayer().Name)
	if s.Winner != bgengine.NoColor {
		status = fmt.Sprintf("%s: %s", tr("Winner"), s.Player(s.Winner).Name)
	} else if len(s.Dice) == 0 {
		status += fmt.Sprintf("  %s: %s", tr("Dice"), tr("not rolled"))
	} else {
		status += fmt.Sprintf("  %s: %s  (%s: %s)", tr("Dice"), formatDice(s.Dice), tr("available"), formatDice(s.Available))
	}
	t.WriteRune(VerticalBar)
	t.WriteString(strings.Repeat(" ", 18))
	t.WriteRune(VerticalBar)
	t.WriteString("BAR")
	t.WriteRune(VerticalBar)
	t.WriteString(strings.Repeat(" ", 18))
	t.WriteRune(VerticalBar)
	t.WriteString("  " + status + "\n")

	for r := checkerRows; r >= 1; r-- {
		var side string
		if r == 1 {
			side = playerLine(bgengine.White)
		}
		row(bottom, r, s.Bar(bgengine.White), side)
	}
	t.Write(boardBottom)
	t.WriteByte('\n')
	return t.Bytes()
}

func formatDice(dice []int) string {
	if len(dice) == 0 {
		return "-"
	}
	values := make([]string, len(dice))
	for i, die := range dice {
		values[i] = strconv.Itoa(die)
	}
	return strings.Join(values, " ")
}

// FormatMove formats a played move as "13/10*" style notation.
func FormatMove(m bgengine.PlayedMove) string {
	s := FormatSpace(m.From) + "/" + FormatSpace(m.To)
	if m.Hit {
		s += "*"
	}
	return s
}
