package game

import "risklegacy/meta"

// Modifiers are the per-rank offsets added to dice before comparison.
// Rank 1 is a side's highest die, rank 2 its second highest. The zero value
// applies no modifiers.
type Modifiers struct {
	Attack1  int `yaml:"attack1"`
	Attack2  int `yaml:"attack2"`
	Defense1 int `yaml:"defense1"`
	Defense2 int `yaml:"defense2"`
}

// attack returns the attacker offset for a rank index (0 is rank 1).
func (m Modifiers) attack(rank int) int {
	if rank == 0 {
		return m.Attack1
	}
	return m.Attack2
}

func (m Modifiers) defense(rank int) int {
	if rank == 0 {
		return m.Defense1
	}
	return m.Defense2
}

// Modify applies an offset to a die. The result is capped at the highest die
// face but has no lower bound.
func Modify(die, offset int) int {
	return min(die+offset, meta.MAX_DIE)
}
