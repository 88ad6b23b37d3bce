package simulator

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"risklegacy/experiments/metrics"
	"risklegacy/game"
	"risklegacy/meta"
	"risklegacy/utils"
)

type Option func(s *Simulator)

// Simulator repeats battles across parallel workers. Every worker draws from
// its own dice stream derived from the seed, so the same seed, goroutine
// count and sequence of calls always reproduce the same results.
type Simulator struct {
	goroutines int
	seed       uint64
	rules      game.Rules
	metrics    metrics.Collector
	calls      atomic.Uint64
}

func WithGoroutines(goroutines int) Option {
	return func(s *Simulator) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Simulator) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Simulator) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func NewSimulator(options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines: meta.GO_ROUTINES,
		seed:       rand.Uint64(),
		rules:      game.NewLegacyRules(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Simulator) Seed() uint64 {
	return s.seed
}

func (s *Simulator) Goroutines() int {
	return s.goroutines
}

// run splits trials across the workers and collects one partial result per
// worker, in worker order. Worker i of call c rolls from stream (seed, c, i).
func run[T any](s *Simulator, record metrics.Run, trials int, work func(roller game.Roller, trials int) T) []T {
	call := s.calls.Add(1)
	shares := utils.Split(trials, min(s.goroutines, trials))
	results := make([]T, len(shares))

	var wg sync.WaitGroup
	for i, share := range shares {
		wg.Add(1)
		go func() {
			defer wg.Done()

			roller := game.Stream(s.seed, call, uint64(i))
			results[i] = work(roller, share)
			record.AddTrials(share)
		}()
	}

	wg.Wait()
	return results
}
