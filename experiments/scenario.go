package experiments

import (
	"fmt"
	"os"

	"risklegacy/game"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	CampaignKind Kind = "campaign"
	PathKind     Kind = "path"
	RatioKind    Kind = "ratio"
)

// Scenario describes one simulation to run. Attackers and Defenders apply to
// campaigns, Path to path runs, and Modifiers to campaigns and ratios.
// Zero Trials or Rounds fall back to the experiment defaults.
type Scenario struct {
	Name      string         `yaml:"name"`
	Kind      Kind           `yaml:"kind"`
	Attackers int            `yaml:"attackers"`
	Defenders int            `yaml:"defenders"`
	Modifiers game.Modifiers `yaml:"modifiers"`
	Path      game.Path      `yaml:"path"`
	Trials    int            `yaml:"trials"`
	Rounds    int            `yaml:"rounds"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

func LoadScenarios(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	return ParseScenarios(b)
}

func ParseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	for i, s := range file.Scenarios {
		switch s.Kind {
		case CampaignKind, PathKind, RatioKind:
		default:
			return nil, fmt.Errorf("scenario %d (%s) has unknown kind %q", i+1, s.Name, s.Kind)
		}
		if s.Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("%s-%d", s.Kind, i+1)
		}
	}
	return file.Scenarios, nil
}

// BaselineScenarios is run when no scenario file is given.
func BaselineScenarios() []Scenario {
	return []Scenario{
		{Name: "ratio-baseline", Kind: RatioKind},
		{Name: "ratio-defense-bunker", Kind: RatioKind, Modifiers: game.Modifiers{Defense1: 1}},
		{Name: "ratio-attack-faction", Kind: RatioKind, Modifiers: game.Modifiers{Attack1: 1}},
		{Name: "campaign-10v5", Kind: CampaignKind, Attackers: 10, Defenders: 5},
		{Name: "campaign-5v5", Kind: CampaignKind, Attackers: 5, Defenders: 5},
		{Name: "campaign-10v5-bunker", Kind: CampaignKind, Attackers: 10, Defenders: 5, Modifiers: game.Modifiers{Defense1: 1}},
		{Name: "path-three-stops", Kind: PathKind, Attackers: 12, Path: game.Path{
			{Defenders: 3},
			{Defenders: 2},
			{Defenders: 3, Modifiers: game.Modifiers{Defense1: 1}},
		}},
	}
}
