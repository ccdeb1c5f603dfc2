package agent

import (
	"context"
	"isolation/book"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type searchAgent struct {
	openings *book.Book
	rng      *rand.Rand
	options  []searcher.Option
}

// NewSearchAgent returns an agent that plays book moves in the opening and
// otherwise runs iterative deepening alpha-beta search until cut off.
func NewSearchAgent(openings *book.Book, rng *rand.Rand, options ...searcher.Option) Agent {
	return &searchAgent{openings: openings, rng: rng, options: options}
}

func (a *searchAgent) Decide(ctx context.Context, state game.State, out Announcer, memo Memo) (Memo, metrics.SearchMetric) {
	collector := metrics.NewCollector()
	collector.Start()
	memo.Decisions++

	// Random move in case of timeout
	actions := state.Actions()
	out.Announce(actions[a.rng.Intn(len(actions))])

	if state.PlyCount() < meta.BOOK_PLY_LIMIT {
		if action, ok := a.openings.Get(state); ok {
			out.Announce(action)
			memo.BookHits++
			collector.SetBookHit()
			return memo, collector.Complete()
		}
	}

	options := append(append([]searcher.Option{}, a.options...), searcher.WithMetrics(collector))
	deepener := searcher.NewDeepener(searcher.NewAlphaBeta(state.Player(), options...), state)
	for {
		action, err := deepener.Next(ctx)
		if err != nil {
			break
		}
		out.Announce(action)
	}

	log.Debug().Msgf("player %d reached depth %d at ply %d", state.Player(), deepener.Depth(), state.PlyCount())
	memo.Deepest = max(memo.Deepest, deepener.Depth())
	return memo, collector.Complete()
}
