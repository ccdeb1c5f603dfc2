package builder

import (
	"isolation/book"
	"isolation/game"
	"isolation/utils"
)

// Tally accumulates, per visited state, the net reward of every action
// tried from it. Entries are only ever added to.
type Tally struct {
	rewards map[game.State]map[game.Action]int
}

func NewTally() *Tally {
	return &Tally{rewards: make(map[game.State]map[game.Action]int)}
}

func (t *Tally) Add(state game.State, action game.Action, reward int) {
	actions, ok := t.rewards[state]
	if !ok {
		actions = make(map[game.Action]int)
		t.rewards[state] = actions
	}
	actions[action] += reward
}

// Rewards returns a copy of the tallied rewards for state
func (t *Tally) Rewards(state game.State) map[game.Action]int {
	rewards := make(map[game.Action]int, len(t.rewards[state]))
	for action, reward := range t.rewards[state] {
		rewards[action] = reward
	}
	return rewards
}

// Len returns the number of states with at least one tallied action
func (t *Tally) Len() int {
	return len(t.rewards)
}

// Collapse picks the action with the greatest reward for every tallied state.
// Ties go to the action that comes first in state.Actions().
func (t *Tally) Collapse() *book.Book {
	b := book.New()
	for state, rewards := range t.rewards {
		b.Set(state, best(state, rewards))
	}
	return b
}

func best(state game.State, rewards map[game.Action]int) game.Action {
	legal := state.Actions()
	var bestMove game.Action
	bestReward, bestIndex := 0, len(legal)
	for action, reward := range rewards {
		index := utils.FindIndex(legal, action)
		if index < 0 {
			panic("tallied action is not legal in its state")
		}
		if bestMove == nil || reward > bestReward || (reward == bestReward && index < bestIndex) {
			bestMove, bestReward, bestIndex = action, reward, index
		}
	}
	return bestMove
}
