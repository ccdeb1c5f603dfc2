package builder

import (
	"context"
	"isolation/book"
	"isolation/game"
	"isolation/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(b *Builder)

// Builder samples random games from an initial state to build an opening book.
type Builder struct {
	rounds   int
	depth    int
	seed     uint64
	progress int
}

func WithRounds(rounds int) Option {
	return func(b *Builder) {
		if rounds > 0 {
			b.rounds = rounds
		}
	}
}

func WithDepth(depth int) Option {
	return func(b *Builder) {
		if depth > 0 {
			b.depth = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(b *Builder) {
		b.seed = seed
	}
}

// WithProgress logs progress every n rounds
func WithProgress(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.progress = n
		}
	}
}

func New(options ...Option) *Builder {
	b := &Builder{ // Default values
		rounds: meta.BOOK_ROUNDS,
		depth:  meta.BOOK_DEPTH,
		seed:   uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Tally runs every round from initial into a fresh tally. If ctx is done
// first, the rounds completed so far are returned along with ctx.Err().
func (b *Builder) Tally(ctx context.Context, initial game.State) (*Tally, error) {
	rng := rand.New(rand.NewSource(b.seed))
	tally := NewTally()

	log.Info().Msgf("building opening book with %d rounds to depth %d (seed %d)", b.rounds, b.depth, b.seed)
	for i := 0; i < b.rounds; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Msgf("stopped after %d of %d rounds: %v", i, b.rounds, err)
			return tally, err
		}
		Explore(rng, initial, tally, b.depth)
		if b.progress > 0 && (i+1)%b.progress == 0 {
			log.Info().Msgf("completed round %d of %d, %d states tallied", i+1, b.rounds, tally.Len())
		}
	}
	log.Info().Msgf("completed %d rounds, %d states tallied", b.rounds, tally.Len())
	return tally, nil
}

func (b *Builder) Build(ctx context.Context, initial game.State) (*book.Book, error) {
	tally, err := b.Tally(ctx, initial)
	return tally.Collapse(), err
}
