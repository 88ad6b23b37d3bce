package experiments

import (
	"fmt"

	"risklegacy/experiments/metrics"
	"risklegacy/simulator"

	"github.com/rs/zerolog/log"
)

// Defaults fill in the counts a scenario leaves unset.
type Defaults struct {
	Trials int
	Rounds int
}

// Run simulates every scenario in order and returns one record per scenario.
// It stops at the first scenario that fails.
func Run(sim *simulator.Simulator, scenarios []Scenario, defaults Defaults) ([]metrics.ScenarioRecord, error) {
	records := make([]metrics.ScenarioRecord, 0, len(scenarios))

	for i, scenario := range scenarios {
		log.Info().Msgf("starting scenario %d of %d: %s (%s)...", i+1, len(scenarios), scenario.Name, scenario.Kind)

		record, err := runScenario(sim, scenario, defaults)
		if err != nil {
			return records, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		record.ID = i + 1
		records = append(records, record)

		log.Info().Msgf("completed scenario %d of %d: %s estimate=%.4f", i+1, len(scenarios), scenario.Name, record.Estimate)
	}
	return records, nil
}

func runScenario(sim *simulator.Simulator, scenario Scenario, defaults Defaults) (metrics.ScenarioRecord, error) {
	record := metrics.ScenarioRecord{
		Name: scenario.Name,
		Kind: string(scenario.Kind),
	}

	switch scenario.Kind {
	case CampaignKind:
		trials := orDefault(scenario.Trials, defaults.Trials)
		result, err := sim.SimulateCampaign(scenario.Attackers, scenario.Defenders, scenario.Modifiers, trials)
		if err != nil {
			return record, err
		}
		record.Attackers = scenario.Attackers
		record.Defenders = scenario.Defenders
		record.Territories = 1
		record.Trials = trials
		record.Estimate = result.WinRate()

	case PathKind:
		trials := orDefault(scenario.Trials, defaults.Trials)
		result, err := sim.SimulatePath(scenario.Attackers, scenario.Path, trials)
		if err != nil {
			return record, err
		}
		record.Attackers = scenario.Attackers
		for _, territory := range scenario.Path {
			record.Defenders += territory.Defenders
		}
		record.Territories = len(scenario.Path)
		record.Trials = trials
		record.Estimate = result.Probability()

	case RatioKind:
		rounds := orDefault(scenario.Rounds, defaults.Rounds)
		result, err := sim.EstimateLossRatio(rounds, scenario.Modifiers)
		if err != nil {
			return record, err
		}
		record.Trials = rounds
		record.Estimate = result.Ratio()

	default:
		return record, fmt.Errorf("unknown scenario kind %q", scenario.Kind)
	}

	return record, nil
}

// Store writes the scenario records and simulation metrics of a run under
// root/name/<timestamp> and returns that directory.
func Store(root, name string, records []metrics.ScenarioRecord, simulations []metrics.SimulationMetric) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteScenarioRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to write scenario records: %w", err)
	}
	log.Info().Msg("stored scenario records")

	err = writer.WriteSimulationRecords(simulations)
	if err != nil {
		return "", fmt.Errorf("failed to write simulation records: %w", err)
	}
	log.Info().Msg("stored simulation records")

	return writer.Dir(), nil
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
