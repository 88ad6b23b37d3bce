package game

type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	// DetermineAttackOutcome compares dice sorted highest first and returns the losses of each side.
	DetermineAttackOutcome(attackerRolls, defenderRolls []int, mods Modifiers) (attackerLosses, defenderLosses int)
}
