package main

import (
	"flag"

	"risklegacy/config"
	"risklegacy/experiments"
	"risklegacy/experiments/metrics"
	"risklegacy/simulator"

	"github.com/rs/zerolog/log"
)

func main() {
	config.SetupEnvironment()

	scenarioFile := flag.String("scenarios", "", "YAML file of scenarios to run (built-in baseline when empty)")
	name := flag.String("name", "odds", "Experiment name, used for the output folder")
	store := flag.Bool("store", true, "Write CSV records of the run")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	scenarios := experiments.BaselineScenarios()
	if *scenarioFile != "" {
		scenarios, err = experiments.LoadScenarios(*scenarioFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *scenarioFile).Msg("failed to load scenarios")
		}
	}

	collector := metrics.NewCollector()
	options := []simulator.Option{
		simulator.WithGoroutines(cfg.Goroutines),
		simulator.WithMetrics(collector),
	}
	if cfg.Seed != nil {
		options = append(options, simulator.WithSeed(*cfg.Seed))
	}
	sim := simulator.NewSimulator(options...)

	log.Info().
		Int("scenarios", len(scenarios)).
		Int("goroutines", sim.Goroutines()).
		Uint64("seed", sim.Seed()).
		Msgf("starting %s experiment...", *name)

	records, err := experiments.Run(sim, scenarios, experiments.Defaults{Trials: cfg.Trials, Rounds: cfg.Rounds})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("completed %s experiment", *name)

	if !*store {
		return
	}
	dir, err := experiments.Store(cfg.OutputDir, *name, records, collector.Metrics())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store experiment")
	}
	log.Info().Str("dir", dir).Msg("stored experiment")
}
