package bgengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedGenerator returns die faces from a fixed sequence, repeating it
// once exhausted.
type scriptedGenerator struct {
	faces []int
	i     int
}

func (s *scriptedGenerator) Intn(n int) int {
	face := s.faces[s.i%len(s.faces)]
	s.i++
	return face - 1
}

func scriptedDice(faces ...int) *Dice {
	return NewDice(&scriptedGenerator{faces: faces})
}

// fillOff places every checker not on a point or the bar in the off tray.
func fillOff(l Layout) Layout {
	for _, c := range []Color{White, Black} {
		total := l.Bar[c.index()]
		for _, v := range l.Points {
			total += numPlayerCheckers(v, c)
		}
		l.Off[c.index()] = numCheckers - total
	}
	return l
}

func mustBoard(t *testing.T, l Layout) *Board {
	t.Helper()
	b, err := NewBoardFromLayout(fillOff(l))
	require.NoError(t, err)
	return b
}

// requireInvariants checks that no checker was created or lost and that no
// point holds checkers of both colors.
func requireInvariants(t *testing.T, b *Board) {
	t.Helper()
	for _, c := range []Color{White, Black} {
		total := b.BarCount(c) + b.OffCount(c)
		for space := range b.points {
			for _, checker := range b.points[space] {
				if checker.Color() == c {
					total++
				}
			}
		}
		require.Equal(t, numCheckers, total, "%s checker count", c)
	}
	for space, stack := range b.points {
		for _, checker := range stack {
			require.Equal(t, stack[0].Color(), checker.Color(), "point %d mixes colors", space)
		}
	}
}
