package bgengine

import (
	"slices"
	"time"

	"golang.org/x/exp/rand"
)

// Generator supplies random integers in [0,n). *rand.Rand satisfies it.
type Generator interface {
	Intn(n int) int
}

// Dice rolls a pair of six-sided dice.
type Dice struct {
	r    Generator
	last []int
}

// NewDice returns dice backed by r. A nil generator is replaced with one
// seeded from the current time.
func NewDice(r Generator) *Dice {
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Dice{r: r}
}

func NewSeededDice(seed uint64) *Dice {
	return NewDice(rand.New(rand.NewSource(seed)))
}

// Roll rolls both dice. Doubles are expanded to four values.
func (d *Dice) Roll() []int {
	roll1, roll2 := d.r.Intn(6)+1, d.r.Intn(6)+1
	if roll1 == roll2 {
		d.last = []int{roll1, roll1, roll1, roll1}
	} else {
		d.last = []int{roll1, roll2}
	}
	return d.Last()
}

// Last returns a copy of the most recent roll.
func (d *Dice) Last() []int {
	if len(d.last) == 0 {
		return []int{}
	}
	return slices.Clone(d.last)
}
