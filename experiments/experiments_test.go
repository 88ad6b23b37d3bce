package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"risklegacy/experiments/metrics"
	"risklegacy/game"
	"risklegacy/simulator"

	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
scenarios:
  - name: bunker
    kind: campaign
    attackers: 10
    defenders: 5
    modifiers:
      defense1: 1
    trials: 400
  - kind: path
    attackers: 8
    path:
      - defenders: 2
      - defenders: 3
        modifiers:
          defense1: 1
          defense2: -1
  - name: faction
    kind: ratio
    modifiers:
      attack1: 1
    rounds: 5000
`

func TestParseScenarios(t *testing.T) {
	t.Run("parsing every kind", func(t *testing.T) {
		got, err := ParseScenarios([]byte(scenarioYAML))
		require.NoError(t, err)
		require.Len(t, got, 3)

		require.Equal(t, Scenario{
			Name:      "bunker",
			Kind:      CampaignKind,
			Attackers: 10,
			Defenders: 5,
			Modifiers: game.Modifiers{Defense1: 1},
			Trials:    400,
		}, got[0])

		require.Equal(t, "path-2", got[1].Name, "Unnamed scenarios should be named by kind and position")
		require.Equal(t, game.Path{
			{Defenders: 2},
			{Defenders: 3, Modifiers: game.Modifiers{Defense1: 1, Defense2: -1}},
		}, got[1].Path)

		require.Equal(t, RatioKind, got[2].Kind)
		require.Equal(t, 5000, got[2].Rounds)
	})

	t.Run("rejecting unknown kinds", func(t *testing.T) {
		_, err := ParseScenarios([]byte("scenarios:\n  - name: siege\n    kind: siege\n"))
		require.ErrorContains(t, err, "siege")
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := ParseScenarios([]byte("scenarios: ["))
		require.Error(t, err)
	})

	t.Run("loading from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenarios.yaml")
		require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

		got, err := LoadScenarios(path)
		require.NoError(t, err)
		require.Len(t, got, 3)

		_, err = LoadScenarios(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	scenarios, err := ParseScenarios([]byte(scenarioYAML))
	require.NoError(t, err)

	collector := metrics.NewCollector()
	sim := simulator.NewSimulator(simulator.WithSeed(1), simulator.WithGoroutines(2), simulator.WithMetrics(collector))

	records, err := Run(sim, scenarios, Defaults{Trials: 300, Rounds: 1000})
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, metrics.ScenarioRecord{ID: 1, Name: "bunker", Kind: "campaign", Attackers: 10, Defenders: 5, Territories: 1, Trials: 400, Estimate: records[0].Estimate}, records[0])
	require.Greater(t, records[0].Estimate, 0.5)

	require.Equal(t, 2, records[1].ID)
	require.Equal(t, 5, records[1].Defenders, "Path defenders should be totalled")
	require.Equal(t, 2, records[1].Territories)
	require.Equal(t, 300, records[1].Trials, "Missing trials should use the default")
	require.GreaterOrEqual(t, records[1].Estimate, 0.0)
	require.LessOrEqual(t, records[1].Estimate, 1.0)

	require.Equal(t, 5000, records[2].Trials)
	require.Greater(t, records[2].Estimate, 0.0)

	require.Len(t, collector.Metrics(), 3)

	t.Run("storing the run", func(t *testing.T) {
		dir, err := Store(t.TempDir(), "test", records, collector.Metrics())
		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "scenario_records.csv"))
		require.FileExists(t, filepath.Join(dir, "simulation_records.csv"))
	})

	t.Run("stopping at a failing scenario", func(t *testing.T) {
		bad := []Scenario{
			{Name: "fine", Kind: CampaignKind, Attackers: 2, Defenders: 1},
			{Name: "empty", Kind: CampaignKind, Attackers: 0, Defenders: 1},
		}
		records, err := Run(sim, bad, Defaults{Trials: 10})
		require.ErrorIs(t, err, game.ErrInvalidInput)
		require.ErrorContains(t, err, "empty")
		require.Len(t, records, 1)
	})

	t.Run("running the baseline", func(t *testing.T) {
		records, err := Run(sim, BaselineScenarios(), Defaults{Trials: 200, Rounds: 2000})
		require.NoError(t, err)
		require.Len(t, records, len(BaselineScenarios()))
	})
}
