package agent

import (
	"context"
	"isolation/book"
	"isolation/game"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// recorder keeps every announcement in order
type recorder struct {
	sync.Mutex
	actions []game.Action
}

func (r *recorder) Announce(action game.Action) {
	r.Lock()
	defer r.Unlock()
	r.actions = append(r.actions, action)
}

func (r *recorder) last() game.Action {
	r.Lock()
	defer r.Unlock()
	return r.actions[len(r.actions)-1]
}

func place(x, y int) game.Move {
	return game.Move{Kind: game.PlaceMove, Value: game.Cell(x, y)}
}

// midgame plays a fixed opening so both pieces are on the board
func midgame() game.State {
	var state game.State = game.NewIsolation()
	for _, action := range []game.Action{place(5, 4), place(2, 2)} {
		state = state.Result(action)
	}
	return state
}

func decide(t *testing.T, a Agent, state game.State, limit time.Duration) (*recorder, Memo) {
	ctx, cancel := context.WithTimeout(context.Background(), limit)
	defer cancel()
	out := &recorder{}

	memo, _ := a.Decide(ctx, state, out, Memo{})

	require.NotEmpty(t, out.actions, "Agent should announce at least once")
	return out, memo
}

func TestSearchAgentDecide(t *testing.T) {
	t.Run("announcing a legal fallback first", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			state := midgame()
			a := NewSearchAgent(nil, rand.New(rand.NewSource(seed)))

			out, _ := decide(t, a, state, 20*time.Millisecond)

			require.Contains(t, state.Actions(), out.actions[0], "First announcement should be legal")
		}
	})

	t.Run("deepening until cut off", func(t *testing.T) {
		state := midgame()
		a := NewSearchAgent(nil, rand.New(rand.NewSource(1)))

		out, memo := decide(t, a, state, 100*time.Millisecond)

		require.Greater(t, len(out.actions), 2, "Agent should announce once per completed depth")
		for _, action := range out.actions {
			require.Contains(t, state.Actions(), action)
		}
		require.Equal(t, 1, memo.Decisions)
		require.Equal(t, len(out.actions)-1, memo.Deepest, "Every announcement after the fallback is one depth")
	})

	t.Run("playing the book move in the opening", func(t *testing.T) {
		initial := game.NewIsolation()
		openings := book.New()
		openings.Set(initial, place(3, 3))
		a := NewSearchAgent(openings, rand.New(rand.NewSource(1)))

		out, memo := decide(t, a, initial, time.Second)

		require.Equal(t, place(3, 3), out.last(), "Book move should be final")
		require.Len(t, out.actions, 2, "Agent should stop after the book move")
		require.Equal(t, 1, memo.BookHits)
	})

	t.Run("ignoring the book after the opening", func(t *testing.T) {
		var state game.State = game.NewIsolation()
		for _, action := range []game.Action{place(5, 4), place(2, 2)} {
			state = state.Result(action)
		}
		for state.PlyCount() < 6 {
			state = state.Result(state.Actions()[0])
		}
		openings := book.New()
		bookMove := state.Actions()[len(state.Actions())-1]
		openings.Set(state, bookMove)
		a := NewSearchAgent(openings, rand.New(rand.NewSource(1)))

		_, memo := decide(t, a, state, 30*time.Millisecond)

		require.Zero(t, memo.BookHits, "Book should not be consulted from ply 6")
	})

	t.Run("falling through on a book miss", func(t *testing.T) {
		openings := book.New()
		openings.Set(game.NewIsolation(), place(3, 3))
		a := NewSearchAgent(openings, rand.New(rand.NewSource(1)))

		_, memo := decide(t, a, midgame(), 30*time.Millisecond)

		require.Zero(t, memo.BookHits)
		require.Positive(t, memo.Deepest, "Agent should search on a miss")
	})

	t.Run("same state gives the same search result", func(t *testing.T) {
		state := midgame()

		first, _ := decide(t, NewSearchAgent(nil, rand.New(rand.NewSource(1))), state, 50*time.Millisecond)
		second, _ := decide(t, NewSearchAgent(nil, rand.New(rand.NewSource(2))), state, 50*time.Millisecond)

		shared := min(len(first.actions), len(second.actions))
		require.Equal(t, first.actions[1:shared], second.actions[1:shared],
			"Announcements at the same depth should match")
	})
}

func TestBaselineAgents(t *testing.T) {
	t.Run("random agent", func(t *testing.T) {
		state := midgame()

		out, memo := decide(t, NewRandomAgent(rand.New(rand.NewSource(1))), state, time.Second)

		require.Len(t, out.actions, 1)
		require.Contains(t, state.Actions(), out.actions[0])
		require.Equal(t, 1, memo.Decisions)
	})

	t.Run("greedy agent", func(t *testing.T) {
		state := midgame()

		out, _ := decide(t, NewGreedyAgent(nil), state, time.Second)

		require.Len(t, out.actions, 1)
		player := state.Player()
		chosen := game.EvaluateLiberties(state.Result(out.actions[0]), player)
		for _, action := range state.Actions() {
			require.GreaterOrEqual(t, chosen, game.EvaluateLiberties(state.Result(action), player),
				"Greedy move should score at least as well as any other move")
		}
	})
}

func TestMailbox(t *testing.T) {
	m := NewMailbox()
	_, ok := m.Last()
	require.False(t, ok, "Empty mailbox should have no announcement")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Announce(place(0, 0))
		}()
	}
	wg.Wait()
	m.Announce(place(1, 1))

	last, ok := m.Last()
	require.True(t, ok)
	require.Equal(t, place(1, 1), last, "Mailbox should keep the last announcement")
	require.Equal(t, 11, m.Count())
}
