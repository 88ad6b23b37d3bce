package simulator

import (
	"fmt"

	"risklegacy/game"

	"github.com/rs/zerolog/log"
)

type PathResult struct {
	Successes     int
	Trials        int
	MeanSurvivors float64 // Attackers left at the end of the path, failures counting as 0
	Captured      []int   // Trials that conquered each territory
}

// Probability is the fraction of trials that conquered the whole path.
func (r PathResult) Probability() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Trials)
}

// CaptureRate is the fraction of trials that conquered territory i.
func (r PathResult) CaptureRate(i int) float64 {
	if r.Trials == 0 || i < 0 || i >= len(r.Captured) {
		return 0
	}
	return float64(r.Captured[i]) / float64(r.Trials)
}

type pathTally struct {
	successes int
	survivors int
	rounds    int
	captured  []int
}

// SimulatePath attacks each territory of the path in order, carrying the
// surviving attackers forward. One troop is left behind before every
// territory, the first included, unless only one troop remains.
func (s *Simulator) SimulatePath(attackers int, path game.Path, trials int) (PathResult, error) {
	if trials < 1 {
		return PathResult{}, fmt.Errorf("path needs at least one trial, got %d: %w", trials, game.ErrInvalidInput)
	}
	if attackers < 1 {
		return PathResult{}, fmt.Errorf("path needs at least one attacker, got %d: %w", attackers, game.ErrInvalidInput)
	}
	if err := path.Validate(); err != nil {
		return PathResult{}, fmt.Errorf("invalid path: %w", err)
	}

	log.Debug().Int("attackers", attackers).Int("territories", len(path)).Int("trials", trials).Uint64("seed", s.seed).Msg("starting path simulation")
	record := s.metrics.Start("path", s.goroutines, s.seed)

	tallies := run(s, record, trials, func(roller game.Roller, n int) pathTally {
		tally := pathTally{captured: make([]int, len(path))}
		for i := 0; i < n; i++ {
			troops := attackers
			for ti, territory := range path {
				troops = game.LeaveBehind(troops)
				outcome, rounds, err := game.Fight(roller, s.rules, troops, territory.Defenders, territory.Modifiers)
				if err != nil {
					panic(err)
				}
				tally.rounds += rounds
				troops = outcome.Attackers
				if troops == 0 {
					break
				}
				tally.captured[ti]++
			}
			if troops > 0 {
				tally.successes++
			}
			tally.survivors += troops
		}
		return tally
	})

	result := PathResult{Trials: trials, Captured: make([]int, len(path))}
	survivors, rounds := 0, 0
	for _, tally := range tallies {
		result.Successes += tally.successes
		survivors += tally.survivors
		rounds += tally.rounds
		for i, c := range tally.captured {
			result.Captured[i] += c
		}
	}
	result.MeanSurvivors = float64(survivors) / float64(trials)

	record.AddRounds(rounds)
	metric := record.Complete()
	log.Debug().Int("successes", result.Successes).Float64("mean_survivors", result.MeanSurvivors).Dur("duration", metric.Duration).Msg("completed path simulation")

	return result, nil
}
