package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type SimulationMetric struct {
	Kind       string // campaign, path or ratio
	Goroutines int
	Seed       uint64
	Trials     int // Trials for campaigns and paths, rounds for ratios
	Rounds     int // Rounds resolved across all trials
	StartTime  time.Time
	Duration   time.Duration
}

// Collector records simulations. Each Start returns its own Run, so
// simulations may run concurrently against one collector.
type Collector interface {
	Start(kind string, goroutines int, seed uint64) Run
	// Metrics returns every completed simulation in completion order.
	Metrics() []SimulationMetric
}

// Run counts the work of a single simulation.
type Run interface {
	AddTrials(n int)
	AddRounds(n int)
	Complete() SimulationMetric
}

type collector struct {
	mu        sync.Mutex
	completed []SimulationMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(kind string, goroutines int, seed uint64) Run {
	return &run{
		owner:      m,
		kind:       kind,
		goroutines: goroutines,
		seed:       seed,
		startTime:  time.Now(),
	}
}

func (m *collector) Metrics() []SimulationMetric {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SimulationMetric, len(m.completed))
	copy(out, m.completed)
	return out
}

func (m *collector) add(metric SimulationMetric) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.completed = append(m.completed, metric)
}

type run struct {
	owner      *collector
	kind       string
	goroutines int
	seed       uint64
	startTime  time.Time
	trials     atomic.Int64
	rounds     atomic.Int64
}

func (r *run) AddTrials(n int) {
	r.trials.Add(int64(n))
}

func (r *run) AddRounds(n int) {
	r.rounds.Add(int64(n))
}

func (r *run) Complete() SimulationMetric {
	metric := SimulationMetric{
		Kind:       r.kind,
		Goroutines: r.goroutines,
		Seed:       r.seed,
		Trials:     int(r.trials.Load()),
		Rounds:     int(r.rounds.Load()),
		StartTime:  r.startTime,
		Duration:   time.Since(r.startTime),
	}
	r.owner.add(metric)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(kind string, goroutines int, seed uint64) Run { return dummyRun{} }
func (m *dummyCollector) Metrics() []SimulationMetric                        { return nil }

type dummyRun struct{}

func (dummyRun) AddTrials(n int)            {}
func (dummyRun) AddRounds(n int)            {}
func (dummyRun) Complete() SimulationMetric { return SimulationMetric{} }
