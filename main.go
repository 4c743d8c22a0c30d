package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/searcher"
	"othello/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second signal terminates a search that is still running.
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("othello failed")
	}
}

// run executes the configured mode. An interrupt is a normal exit.
func run(ctx context.Context, cfg *config.Config) error {
	err := runMode(ctx, cfg)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted")
		return nil
	}
	return err
}

func runMode(ctx context.Context, cfg *config.Config) error {
	var recorder engine.Recorder
	if cfg.DBPath != "" {
		store, err := storage.Open(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
		if cfg.Mode == config.ModeHistory {
			return printHistory(ctx, os.Stdout, store, cfg.HistoryLimit)
		}
	}

	switch cfg.Mode {
	case config.ModeSelfPlay:
		dir, err := experiments.RunDepthExperiment(ctx, experiments.Settings{
			Games:      cfg.SelfPlayGames,
			Depths:     cfg.SelfPlayDepth,
			Seed:       cfg.Seed,
			ResultsDir: cfg.ResultsDir,
			Recorder:   recorder,
		})
		if err != nil {
			return err
		}
		log.Info().Str("dir", dir).Msg("wrote experiment results")
		return nil

	default:
		searchOptions := []searcher.Option{}
		if cfg.Seed != 0 {
			searchOptions = append(searchOptions, searcher.WithSeed(cfg.Seed))
		}
		options := []engine.ConsoleOption{}
		if cfg.Difficulty > 0 {
			options = append(options, engine.WithDifficulty(cfg.Difficulty))
		}
		if recorder != nil {
			options = append(options, engine.WithRecorder(recorder))
		}
		if cfg.SVGPath != "" {
			options = append(options, engine.WithSVGSnapshot(cfg.SVGPath))
		}
		console := engine.NewConsole(os.Stdin, os.Stdout, searcher.NewSearcher(searchOptions...), options...)
		return console.Run(ctx)
	}
}

// printHistory lists the most recently finished games.
func printHistory(ctx context.Context, w io.Writer, store *storage.Store, limit int) error {
	records, err := store.RecentGames(ctx, limit)
	if err != nil {
		return err
	}
	for _, r := range records {
		winner := r.Winner
		if winner == "" {
			winner = "Tie"
		}
		fmt.Fprintf(w, "%s  %-8s depth %d  %2d:%-2d  %-5s  %s\n",
			r.EndedAt.Local().Format(time.DateTime), r.Mode, r.Difficulty,
			r.BlackDiscs, r.WhiteDiscs, winner, r.Transcript)
	}
	return nil
}
