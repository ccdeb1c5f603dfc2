package engine

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher/agent"
	"isolation/utils"
	"time"

	"github.com/rs/zerolog/log"
)

const NoWinner = -1

// Agents that ignore the deadline are abandoned after this grace period
const gracePeriod = 50 * time.Millisecond

type Local struct {
	State     game.State
	Agents    []agent.Agent
	timeLimit time.Duration
	memos     []agent.Memo
}

type decision struct {
	memo   agent.Memo
	metric metrics.SearchMetric
}

func NewLocal(agents []agent.Agent, timeLimit time.Duration) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if timeLimit <= 0 {
		timeLimit = meta.TIME_LIMIT
	}
	return &Local{
		State:     game.NewIsolation(),
		Agents:    agents,
		timeLimit: timeLimit,
		memos:     make([]agent.Memo, len(agents)),
	}
}

// Run executes the entire game loop until a winner is found. A player that
// announces nothing or an illegal action before the time limit forfeits.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		Winner:         NoWinner,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.State.Player())

	step := 1
	for !e.State.TerminalTest() && step <= meta.MAX_TURNS {
		player := e.State.Player()

		move, metric := e.turn(player)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: metric,
		})

		if move == nil || !utils.Contains(e.State.Actions(), move) {
			log.Warn().Msgf("player %d forfeits at step %d with move %v", player, step, move)
			gameMetric.Winner = 1 - player
			gameMetric.Forfeit = true
			break
		}

		e.State = e.State.Result(move)
		step++
	}

	if e.State.TerminalTest() {
		// The player to move without liberties loses
		gameMetric.Winner = 1 - e.State.Player()
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1

	if gameMetric.Winner == NoWinner {
		log.Warn().Msgf("stopped after %d moves without a winner", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("player %d won after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}

// turn lets the player's agent decide under the time limit and returns its
// last announcement, nil if it announced nothing
func (e *Local) turn(player int) (game.Action, metrics.SearchMetric) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeLimit)
	defer cancel()

	mailbox := agent.NewMailbox()
	done := make(chan decision, 1)
	state, memo := e.State, e.memos[player]
	go func() {
		memo, metric := e.Agents[player].Decide(ctx, state, mailbox, memo)
		done <- decision{memo: memo, metric: metric}
	}()

	var result decision
	select {
	case result = <-done:
	case <-ctx.Done():
		select {
		case result = <-done:
		case <-time.After(gracePeriod):
			log.Warn().Msgf("player %d did not stop after the time limit", player)
			move, _ := mailbox.Last()
			return move, metrics.SearchMetric{Duration: e.timeLimit}
		}
	}
	e.memos[player] = result.memo

	move, _ := mailbox.Last()
	return move, result.metric
}

// Memo returns the memo carried for the given player
func (e *Local) Memo(player int) agent.Memo {
	return e.memos[player]
}
