package experiments

import (
	"fmt"
	"isolation/book"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Series plays every matchup a number of times, alternating which agent
// moves first, and records the results.
type Series struct {
	Name      string
	Dir       string // Root directory for CSV records, nothing is written if empty
	NumGames  int    // Per matchup
	TimeLimit time.Duration
	Openings  *book.Book
	Seed      uint64
}

type Summary struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // By AgentConfig.ID
}

// Baseline matchups pit the book and search agent against the sample agents
func Baseline() ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	custom := metrics.AgentConfig{ID: 1, Kind: "search", Heuristic: "liberties", UseBook: true}
	aggressive := metrics.AgentConfig{ID: 2, Kind: "search", Heuristic: "aggressive"}
	greedy := metrics.AgentConfig{ID: 3, Kind: "greedy", Heuristic: "liberties"}
	random := metrics.AgentConfig{ID: 4, Kind: "random"}

	configs := []metrics.AgentConfig{custom, aggressive, greedy, random}
	matchUps := [][]metrics.AgentConfig{
		{custom, random},
		{custom, greedy},
		{custom, aggressive},
	}
	return configs, matchUps
}

func (s Series) Run(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Summary, error) {
	rng := rand.New(rand.NewSource(s.Seed))
	summary := Summary{Wins: make(map[int]int)}

	log.Info().Msgf("starting %s series...", s.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.NumGames; i++ {
			// Alternate the starting agent
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			agents := []agent.Agent{s.createAgent(first, rng), s.createAgent(second, rng)}
			winner, gameMetric, moveMetrics := engine.NewLocal(agents, s.TimeLimit).Run()

			id := len(summary.Games) + 1
			summary.Games = append(summary.Games, metrics.GameRecord{
				ID:         id,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				summary.Moves = append(summary.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
			}
			if winner != engine.NoWinner {
				summary.Wins[[]int{first.ID, second.ID}[winner]]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: player %d", mi+1, len(matchUps), i+1, s.NumGames, winner)
		}
	}

	log.Info().Msgf("completed %s series", s.Name)

	if s.Dir == "" {
		return summary, nil
	}
	return summary, s.store(configs, summary)
}

func (s Series) store(configs []metrics.AgentConfig, summary Summary) error {
	writer, err := metrics.NewWriter(s.Dir, s.Name)
	if err != nil {
		return fmt.Errorf("failed to create series writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored series records in %s", writer.Dir())
	return nil
}

func (s Series) createAgent(config metrics.AgentConfig, rng *rand.Rand) agent.Agent {
	evaluate := Heuristic(config.Heuristic)
	switch config.Kind {
	case "search":
		var openings *book.Book
		if config.UseBook {
			openings = s.Openings
		}
		return agent.NewSearchAgent(openings, rand.New(rand.NewSource(rng.Uint64())), searcher.WithEvaluationFn(evaluate))
	case "greedy":
		return agent.NewGreedyAgent(evaluate)
	case "random":
		return agent.NewRandomAgent(rand.New(rand.NewSource(rng.Uint64())))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

// Heuristic resolves a heuristic by name, the liberties heuristic by default
func Heuristic(name string) game.Evaluate {
	if name == "aggressive" {
		return game.EvaluateAggressive
	}
	return game.EvaluateLiberties
}
