package game

import "risklegacy/meta"

// LegacyRules resolves rounds the Risk Legacy way: rank modifiers are added
// to the paired dice, modified dice never exceed 6, and the defender wins ties.
type LegacyRules struct {
	MaxAttack int
	MaxDefend int
}

func NewLegacyRules() *LegacyRules {
	return &LegacyRules{
		MaxAttack: meta.MAX_ATTACK_DICE,
		MaxDefend: meta.MAX_DEFEND_DICE,
	}
}

func (lr *LegacyRules) MaxAttackDice() int {
	return lr.MaxAttack
}

func (lr *LegacyRules) MaxDefendDice() int {
	return lr.MaxDefend
}

func (lr *LegacyRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int, mods Modifiers) (attackerLosses, defenderLosses int) {
	// Only the top two ranks carry modifiers, so never pair more than two dice
	battles := min(len(attackerRolls), len(defenderRolls), 2)
	for i := 0; i < battles; i++ {
		if Modify(attackerRolls[i], mods.attack(i)) > Modify(defenderRolls[i], mods.defense(i)) {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
