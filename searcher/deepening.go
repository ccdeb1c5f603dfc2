package searcher

import (
	"context"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

// Deepener produces one search result per call at depths 1, 2, 3, ...
type Deepener struct {
	search *AlphaBeta
	state  game.State
	depth  int // Last completed depth
}

func NewDeepener(search *AlphaBeta, state game.State) *Deepener {
	return &Deepener{search: search, state: state}
}

// Next searches one ply deeper than the last completed depth. An interrupted
// search leaves the completed depth unchanged.
func (d *Deepener) Next(ctx context.Context) (game.Action, error) {
	move, err := d.search.Search(ctx, d.state, d.depth+1)
	if err != nil {
		return nil, err
	}
	d.depth++
	d.search.metrics.SetDepth(d.depth)
	log.Debug().Msgf("completed depth %d with move %v", d.depth, move)
	return move, nil
}

func (d *Deepener) Depth() int {
	return d.depth
}
