package game

import (
	"golang.org/x/exp/rand"

	"risklegacy/meta"
)

// Roller produces uniformly distributed six-sided dice.
type Roller interface {
	// Roll returns n independent dice in [1, 6].
	Roll(n int) []int
	// Fill overwrites every element of buf with a fresh die.
	Fill(buf []int)
}

// Dice is a Roller backed by an explicit random source.
type Dice struct {
	rng *rand.Rand
}

func NewDice(seed uint64) *Dice {
	return Stream(seed)
}

func NewDiceFrom(rng *rand.Rand) *Dice {
	return &Dice{rng: rng}
}

// Stream derives an independent dice stream for a seed and a path of ids,
// such as a call number and a worker index. Paths that differ only in their
// last id always get different streams.
func Stream(seed uint64, ids ...uint64) *Dice {
	h := mix(seed)
	for _, id := range ids {
		h = mix(h ^ id)
	}
	return &Dice{rng: rand.New(rand.NewSource(h))}
}

// mix is the splitmix64 finalizer, a bijection on uint64.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func (d *Dice) Roll(n int) []int {
	if n < 0 {
		panic("cannot roll a negative number of dice")
	}
	rolls := make([]int, n)
	d.Fill(rolls)
	return rolls
}

func (d *Dice) Fill(buf []int) {
	for i := range buf {
		buf[i] = d.rng.Intn(meta.MAX_DIE) + 1
	}
}
