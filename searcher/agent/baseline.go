package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) Decide(ctx context.Context, state game.State, out Announcer, memo Memo) (Memo, metrics.SearchMetric) {
	actions := state.Actions()
	out.Announce(actions[a.rng.Intn(len(actions))])
	memo.Decisions++
	return memo, metrics.SearchMetric{}
}

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent returns an agent that plays the move whose resulting state
// scores best, without lookahead.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateLiberties
	}
	return greedyAgent{evaluate: evaluate}
}

func (a greedyAgent) Decide(ctx context.Context, state game.State, out Announcer, memo Memo) (Memo, metrics.SearchMetric) {
	player := state.Player()
	var bestMove game.Action
	var bestScore float64
	for i, action := range state.Actions() {
		score := a.evaluate(state.Result(action), player)
		if i == 0 || score > bestScore {
			bestMove, bestScore = action, score
		}
	}
	out.Announce(bestMove)
	memo.Decisions++
	return memo, metrics.SearchMetric{Depth: 1}
}
