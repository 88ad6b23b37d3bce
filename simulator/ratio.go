package simulator

import (
	"fmt"
	"sort"

	"risklegacy/game"
	"risklegacy/meta"

	"github.com/rs/zerolog/log"
)

type RatioResult struct {
	AttackerLosses int
	DefenderLosses int
	Rounds         int
}

// Ratio is the attackers lost per defender lost. It is 0 when no defender
// was lost; EstimateLossRatio reports that case as an error.
func (r RatioResult) Ratio() float64 {
	if r.DefenderLosses == 0 {
		return 0
	}
	return float64(r.AttackerLosses) / float64(r.DefenderLosses)
}

type lossTally struct {
	attacker int
	defender int
}

// EstimateLossRatio samples full 3-vs-2 rounds to estimate how many
// attackers are lost per defender under the given modifiers.
func (s *Simulator) EstimateLossRatio(rounds int, mods game.Modifiers) (RatioResult, error) {
	if rounds < 1 {
		return RatioResult{}, fmt.Errorf("loss ratio needs at least one round, got %d: %w", rounds, game.ErrInvalidInput)
	}

	log.Debug().Int("rounds", rounds).Uint64("seed", s.seed).Msg("starting loss ratio estimation")
	record := s.metrics.Start("ratio", s.goroutines, s.seed)

	const diceAttack, diceDefend = meta.MAX_ATTACK_DICE, meta.MAX_DEFEND_DICE
	const perRound = diceAttack + diceDefend

	tallies := run(s, record, rounds, func(roller game.Roller, n int) lossTally {
		var tally lossTally
		buf := make([]int, min(n, meta.RATIO_BATCH)*perRound)
		for remaining := n; remaining > 0; {
			batch := min(remaining, meta.RATIO_BATCH)
			dice := buf[:batch*perRound]
			roller.Fill(dice)
			for r := 0; r < batch; r++ {
				attackerRolls := dice[r*perRound : r*perRound+diceAttack]
				defenderRolls := dice[r*perRound+diceAttack : (r+1)*perRound]
				sort.Sort(sort.Reverse(sort.IntSlice(attackerRolls)))
				sort.Sort(sort.Reverse(sort.IntSlice(defenderRolls)))

				attackerLosses, defenderLosses := s.rules.DetermineAttackOutcome(attackerRolls, defenderRolls, mods)
				tally.attacker += attackerLosses
				tally.defender += defenderLosses
			}
			remaining -= batch
		}
		return tally
	})

	result := RatioResult{Rounds: rounds}
	for _, tally := range tallies {
		result.AttackerLosses += tally.attacker
		result.DefenderLosses += tally.defender
	}

	record.AddRounds(rounds)
	metric := record.Complete()
	log.Debug().Int("attacker_losses", result.AttackerLosses).Int("defender_losses", result.DefenderLosses).Dur("duration", metric.Duration).Msg("completed loss ratio estimation")

	if result.DefenderLosses == 0 {
		return result, fmt.Errorf("no defender lost in %d rounds with modifiers %+v: %w", rounds, mods, game.ErrDegenerateResult)
	}
	return result, nil
}
