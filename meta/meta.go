// meta/meta.go
package meta

// GO_ROUTINES defines the default number of simulation workers.
const GO_ROUTINES = 8

// TRIALS defines the default number of campaign and path trials.
const TRIALS = 10_000

// ROUNDS defines the default number of rounds for loss ratio estimation.
const ROUNDS = 1_000_000

// MAX_DIE is the highest face of a die, and the cap for modified dice.
const MAX_DIE = 6

// MAX_ATTACK_DICE defines how many dice an attacker rolls at most.
const MAX_ATTACK_DICE = 3

// MAX_DEFEND_DICE defines how many dice a defender rolls at most.
const MAX_DEFEND_DICE = 2

// RATIO_BATCH defines how many rounds of dice a ratio worker draws at once.
const RATIO_BATCH = 4096
