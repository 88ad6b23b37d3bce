package game

import "fmt"

// Territory is one defended stop along an attack path.
type Territory struct {
	Defenders int       `yaml:"defenders"`
	Modifiers Modifiers `yaml:"modifiers"`
}

// Path is an ordered sequence of territories attacked one after another.
type Path []Territory

// Validate checks that every territory on the path has defenders to fight.
func (p Path) Validate() error {
	for i, t := range p {
		if t.Defenders < 1 {
			return fmt.Errorf("territory %d has %d defenders: %w", i, t.Defenders, ErrInvalidInput)
		}
	}
	return nil
}

// LeaveBehind returns the traveling troops after one is left on the
// territory being departed. A lone troop cannot leave anyone behind.
func LeaveBehind(troops int) int {
	if troops > 1 {
		return troops - 1
	}
	return troops
}
