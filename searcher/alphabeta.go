package searcher

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"math"
)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning that
// scores positions from the perspective of a fixed player.
type AlphaBeta struct {
	player   int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewAlphaBeta(player int, options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		player:   player,
		evaluate: game.EvaluateLiberties,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// Search returns the root action with the strictly greatest minimax value at
// the given depth, the first one on ties. It returns ctx.Err() if ctx is done
// before the search completes.
func (ab *AlphaBeta) Search(ctx context.Context, state game.State, depth int) (game.Action, error) {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	if state.TerminalTest() {
		panic("cannot search a terminal state")
	}
	actions := state.Actions()
	if len(actions) == 0 {
		panic("cannot search a state without actions")
	}

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	var bestMove game.Action
	var bestValue float64
	for i, action := range actions {
		value, err := ab.minValue(ctx, state.Result(action), depth-1, alpha, beta)
		if err != nil {
			return nil, err
		}
		alpha = max(alpha, value)
		if i == 0 || value > bestValue {
			bestValue = value
			bestMove = action
		}
	}
	return bestMove, nil
}

func (ab *AlphaBeta) minValue(ctx context.Context, state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := interrupted(ctx); err != nil {
		return 0, err
	}
	ab.metrics.AddNode()

	if state.TerminalTest() {
		return state.Utility(ab.player), nil
	}
	if depth <= 0 {
		return ab.evaluate(state, ab.player), nil
	}

	value := math.Inf(1)
	for _, action := range state.Actions() {
		v, err := ab.maxValue(ctx, state.Result(action), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		value = min(value, v)
		if value <= alpha {
			ab.metrics.AddPrune()
			return value, nil
		}
		beta = min(beta, value)
	}
	return value, nil
}

func (ab *AlphaBeta) maxValue(ctx context.Context, state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := interrupted(ctx); err != nil {
		return 0, err
	}
	ab.metrics.AddNode()

	if state.TerminalTest() {
		return state.Utility(ab.player), nil
	}
	if depth <= 0 {
		return ab.evaluate(state, ab.player), nil
	}

	value := math.Inf(-1)
	for _, action := range state.Actions() {
		v, err := ab.minValue(ctx, state.Result(action), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		value = max(value, v)
		if value >= beta {
			ab.metrics.AddPrune()
			return value, nil
		}
		alpha = max(alpha, value)
	}
	return value, nil
}

func interrupted(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
