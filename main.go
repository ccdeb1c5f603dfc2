package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"isolation/book"
	"isolation/builder"
	"isolation/experiments"
	"isolation/game"
	"isolation/meta"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: isolation <command> [flags]

commands:
  build    build an opening book by random self-play sampling
  play     play a series of matches between the search agent and baselines
  inspect  show the book's opening move and reply`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msgf("%s failed", os.Args[1])
		os.Exit(1)
	}
}

func setVerbosity(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func runBuild(args []string) error {
	flags := flag.NewFlagSet("build", flag.ExitOnError)
	rounds := flags.Int("rounds", meta.BOOK_ROUNDS, "Number of rollouts from the initial state")
	depth := flags.Int("depth", meta.BOOK_DEPTH, "Plies explored before each rollout")
	seed := flags.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	out := flags.String("out", "data/opening_book.parquet", "Output book file")
	verbose := flags.Bool("verbose", false, "Log debug output")
	flags.Parse(args)
	setVerbosity(*verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := builder.New(
		builder.WithRounds(*rounds),
		builder.WithDepth(*depth),
		builder.WithSeed(*seed),
		builder.WithProgress(max(*rounds/20, 1)),
	)
	openings, err := b.Build(ctx, game.NewIsolation())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := book.NewParquetStore(*out).Save(openings); err != nil {
		return fmt.Errorf("failed to store opening book: %w", err)
	}
	log.Info().Msgf("stored %d book entries in %s", openings.Len(), *out)
	return nil
}

func runPlay(args []string) error {
	flags := flag.NewFlagSet("play", flag.ExitOnError)
	path := flags.String("book", "", "Opening book file, no book if empty")
	games := flags.Int("games", 10, "Games per matchup")
	limit := flags.Duration("time", meta.TIME_LIMIT, "Time limit per move")
	seed := flags.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	dir := flags.String("records", "experiments", "Directory for CSV records, none if empty")
	verbose := flags.Bool("verbose", false, "Log debug output")
	flags.Parse(args)
	setVerbosity(*verbose)

	var openings *book.Book
	if *path != "" {
		var err error
		openings, err = book.NewParquetStore(*path).Load()
		if err != nil {
			return fmt.Errorf("failed to load opening book: %w", err)
		}
		log.Info().Msgf("loaded %d book entries from %s", openings.Len(), *path)
	}

	series := experiments.Series{
		Name:      "baseline",
		Dir:       *dir,
		NumGames:  *games,
		TimeLimit: *limit,
		Openings:  openings,
		Seed:      *seed,
	}
	configs, matchUps := experiments.Baseline()
	summary, err := series.Run(configs, matchUps)
	if err != nil {
		return err
	}
	for _, config := range configs {
		log.Info().Msgf("agent %d (%s %s) won %d games", config.ID, config.Kind, config.Heuristic, summary.Wins[config.ID])
	}
	return nil
}

func runInspect(args []string) error {
	flags := flag.NewFlagSet("inspect", flag.ExitOnError)
	path := flags.String("book", "data/opening_book.parquet", "Opening book file")
	flags.Parse(args)

	openings, err := book.NewParquetStore(*path).Load()
	if err != nil {
		return fmt.Errorf("failed to load opening book: %w", err)
	}

	var state game.State = game.NewIsolation()
	for _, label := range []string{"opening move for player 1", "best reply by player 2"} {
		action, ok := openings.Get(state)
		if !ok {
			log.Warn().Msgf("no book entry for the %s", label)
			return nil
		}
		state = state.Result(action)
		x, y := game.Coordinates(state.Loc(1 - state.Player()))
		log.Info().Msgf("%s: %v lands on column %d row %d", label, action, x, y)
	}
	return nil
}
