package builder

import (
	"isolation/game"

	"golang.org/x/exp/rand"
)

const WIN = 1     // Reward for winning outcome
const LOSS = -WIN // Reward for loss outcome (negate from opponent perspective)

// Simulate plays uniformly random moves till the game is over and returns the
// outcome for the player to move in state. The game must be finite.
func Simulate(rng *rand.Rand, state game.State) int {
	player := state.Player()
	for !state.TerminalTest() {
		actions := state.Actions()
		state = state.Result(actions[rng.Intn(len(actions))])
	}
	if state.Utility(player) < 0 {
		return LOSS
	}
	return WIN
}

// Explore samples one random line of play up to depth moves, finishes it
// with a rollout, and tallies the outcome for every move on the line from the
// perspective of the player who made it. The result is the reward for the
// player who moved into state.
func Explore(rng *rand.Rand, state game.State, tally *Tally, depth int) int {
	if depth <= 0 || state.TerminalTest() {
		return -Simulate(rng, state)
	}

	actions := state.Actions()
	action := actions[rng.Intn(len(actions))]
	reward := Explore(rng, state.Result(action), tally, depth-1)
	tally.Add(state, action, reward)
	return -reward
}
