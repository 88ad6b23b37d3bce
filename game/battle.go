package game

import (
	"fmt"
	"sort"
)

// Outcome holds the troops each side has left after a round or a fight.
type Outcome struct {
	Attackers int
	Defenders int
}

// AttackerWon reports whether the defenders were eliminated.
func (o Outcome) AttackerWon() bool {
	return o.Defenders == 0 && o.Attackers > 0
}

// ResolveRound rolls one round of combat between attackers and defenders.
// Each side rolls one die per troop up to the rules' cap. Highest dice are
// paired first and the second highest are paired only when both sides have
// more than one troop.
func ResolveRound(roller Roller, rules Rules, attackers, defenders int, mods Modifiers) (Outcome, error) {
	if attackers < 1 || defenders < 1 {
		return Outcome{}, fmt.Errorf("cannot resolve round with %d attackers and %d defenders: %w", attackers, defenders, ErrInvalidInput)
	}
	return resolve(roller, rules, attackers, defenders, mods), nil
}

func resolve(roller Roller, rules Rules, attackers, defenders int, mods Modifiers) Outcome {
	attackerRolls := roller.Roll(min(attackers, rules.MaxAttackDice()))
	defenderRolls := roller.Roll(min(defenders, rules.MaxDefendDice()))

	// Sort dice rolls
	sort.Sort(sort.Reverse(sort.IntSlice(attackerRolls)))
	sort.Sort(sort.Reverse(sort.IntSlice(defenderRolls)))

	attackerLosses, defenderLosses := rules.DetermineAttackOutcome(attackerRolls, defenderRolls, mods)
	return Outcome{
		Attackers: attackers - attackerLosses,
		Defenders: defenders - defenderLosses,
	}
}

// Fight resolves rounds until one side is eliminated and returns the final
// troop counts along with the number of rounds fought.
func Fight(roller Roller, rules Rules, attackers, defenders int, mods Modifiers) (Outcome, int, error) {
	if attackers < 1 || defenders < 1 {
		return Outcome{}, 0, fmt.Errorf("cannot fight with %d attackers and %d defenders: %w", attackers, defenders, ErrInvalidInput)
	}

	outcome := Outcome{Attackers: attackers, Defenders: defenders}
	rounds := 0
	for outcome.Attackers > 0 && outcome.Defenders > 0 {
		outcome = resolve(roller, rules, outcome.Attackers, outcome.Defenders, mods)
		rounds++
	}
	return outcome, rounds, nil
}
