package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
)

// Announcer receives the current best action. Only the last announcement of
// a decision counts.
type Announcer interface {
	Announce(action game.Action)
}

// Memo is carried by the caller from one decision of an agent to its next.
type Memo struct {
	Decisions int
	BookHits  int
	Deepest   int // Deepest completed search depth over all decisions
}

type Agent interface {
	// Decide announces at least one legal action for a non-terminal state and
	// returns once ctx is done or no better action can be found. It returns
	// the memo for the next decision and performance metrics.
	Decide(ctx context.Context, state game.State, out Announcer, memo Memo) (Memo, metrics.SearchMetric)
}
