package game

import (
	"fmt"
	"sort"

	"risklegacy/meta"
)

// Losses counts the troops each side loses in a single round.
type Losses struct {
	Attacker int
	Defender int
}

// ExactRoundOdds enumerates every roll of the given dice and returns the
// probability of each loss combination.
func ExactRoundOdds(attackerDice, defenderDice int, mods Modifiers) map[Losses]float64 {
	counts, total := countOutcomes(attackerDice, defenderDice, mods)
	odds := make(map[Losses]float64, len(counts))
	for losses, count := range counts {
		odds[losses] = float64(count) / float64(total)
	}
	return odds
}

// ExactLossRatio is the expected attacker losses per defender loss of a full
// 3-vs-2 round, computed without sampling.
func ExactLossRatio(mods Modifiers) (float64, error) {
	counts, _ := countOutcomes(meta.MAX_ATTACK_DICE, meta.MAX_DEFEND_DICE, mods)
	attackerLosses, defenderLosses := 0, 0
	for losses, count := range counts {
		attackerLosses += losses.Attacker * count
		defenderLosses += losses.Defender * count
	}
	if defenderLosses == 0 {
		return 0, fmt.Errorf("defenders never lose with modifiers %+v: %w", mods, ErrDegenerateResult)
	}
	return float64(attackerLosses) / float64(defenderLosses), nil
}

func countOutcomes(attackerDice, defenderDice int, mods Modifiers) (map[Losses]int, int) {
	rules := NewLegacyRules()
	attackerRolls := allRolls(attackerDice)
	defenderRolls := allRolls(defenderDice)

	counts := make(map[Losses]int)
	for _, a := range attackerRolls {
		for _, d := range defenderRolls {
			attackerLosses, defenderLosses := rules.DetermineAttackOutcome(a, d, mods)
			counts[Losses{Attacker: attackerLosses, Defender: defenderLosses}]++
		}
	}
	return counts, len(attackerRolls) * len(defenderRolls)
}

// allRolls lists every ordered roll of n dice, each sorted highest first.
func allRolls(n int) [][]int {
	if n == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for _, sub := range allRolls(n - 1) {
		for face := 1; face <= meta.MAX_DIE; face++ {
			roll := append([]int{face}, sub...)
			sort.Sort(sort.Reverse(sort.IntSlice(roll)))
			out = append(out, roll)
		}
	}
	return out
}
