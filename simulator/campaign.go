package simulator

import (
	"fmt"

	"risklegacy/game"

	"github.com/rs/zerolog/log"
)

type CampaignResult struct {
	AttackerWins int
	DefenderWins int
	Trials       int
	MeanRounds   float64 // Rounds fought per trial
}

func (r CampaignResult) WinRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.AttackerWins) / float64(r.Trials)
}

type campaignTally struct {
	attackerWins int
	defenderWins int
	rounds       int
}

// SimulateCampaign fights attackers against defenders to elimination in each
// trial and counts which side won.
func (s *Simulator) SimulateCampaign(attackers, defenders int, mods game.Modifiers, trials int) (CampaignResult, error) {
	if trials < 1 {
		return CampaignResult{}, fmt.Errorf("campaign needs at least one trial, got %d: %w", trials, game.ErrInvalidInput)
	}
	if attackers < 1 || defenders < 1 {
		return CampaignResult{}, fmt.Errorf("campaign needs troops on both sides, got %d attackers and %d defenders: %w", attackers, defenders, game.ErrInvalidInput)
	}

	log.Debug().Int("attackers", attackers).Int("defenders", defenders).Int("trials", trials).Uint64("seed", s.seed).Msg("starting campaign simulation")
	record := s.metrics.Start("campaign", s.goroutines, s.seed)

	tallies := run(s, record, trials, func(roller game.Roller, n int) campaignTally {
		var tally campaignTally
		for i := 0; i < n; i++ {
			outcome, rounds, err := game.Fight(roller, s.rules, attackers, defenders, mods)
			if err != nil {
				panic(err)
			}
			if outcome.AttackerWon() {
				tally.attackerWins++
			} else {
				tally.defenderWins++
			}
			tally.rounds += rounds
		}
		return tally
	})

	result := CampaignResult{Trials: trials}
	rounds := 0
	for _, tally := range tallies {
		result.AttackerWins += tally.attackerWins
		result.DefenderWins += tally.defenderWins
		rounds += tally.rounds
	}
	result.MeanRounds = float64(rounds) / float64(trials)

	record.AddRounds(rounds)
	metric := record.Complete()
	log.Debug().Int("attacker_wins", result.AttackerWins).Int("defender_wins", result.DefenderWins).Dur("duration", metric.Duration).Msg("completed campaign simulation")

	return result, nil
}
