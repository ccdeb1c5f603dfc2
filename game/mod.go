package game

import "fmt"

// Action identifies one legal move from a given State. Implementations must be
// comparable so actions can key maps.
type Action interface {
	fmt.Stringer
}

// State should be immutable - Result always returns a new value. Implementations
// must be comparable so states can key the opening book and reward tallies.
type State interface {
	Actions() []Action
	Result(Action) State
	TerminalTest() bool
	Utility(player int) float64
	Player() int
	PlyCount() int
	// Loc returns the location of the given player, NoLocation if unplaced.
	Loc(player int) int
	// Liberties returns the actions available from the given location.
	Liberties(loc int) []Action
}

// Evaluates a non-terminal state from the perspective of player. Larger values
// favor player.
type Evaluate func(s State, player int) float64

const NoLocation = -1
