package experiments

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/searcher"
	"othello/storage"

	"github.com/rs/zerolog/log"
)

// Settings configures a depth experiment.
type Settings struct {
	Games      int   // Per match up
	Depths     []int // The first depth is the baseline
	Seed       uint64
	ResultsDir string
	Recorder   engine.Recorder // Optional
}

type matchUp struct {
	black metrics.AgentConfig
	white metrics.AgentConfig
}

type gameResult struct {
	matchUp matchUp
	game    metrics.GameMetric
	moves   []metrics.MoveMetric
	record  storage.Record
}

// RunDepthExperiment pairs the baseline depth against every configured depth,
// alternating colours between games, and writes the results as CSV files.
// It returns the directory holding the results.
func RunDepthExperiment(ctx context.Context, settings Settings) (string, error) {
	if len(settings.Depths) == 0 {
		return "", fmt.Errorf("no depths to compare")
	}
	if settings.Games < 1 {
		return "", fmt.Errorf("invalid number of games %d", settings.Games)
	}

	configs := make([]metrics.AgentConfig, len(settings.Depths))
	for i, depth := range settings.Depths {
		configs[i] = metrics.AgentConfig{ID: i, Depth: depth}
	}
	baseline := configs[0]

	matchUps := []matchUp{}
	for _, config := range configs {
		for i := 0; i < settings.Games; i++ {
			if i%2 == 0 {
				matchUps = append(matchUps, matchUp{black: baseline, white: config})
			} else {
				matchUps = append(matchUps, matchUp{black: config, white: baseline})
			}
		}
	}

	log.Info().Msgf("starting depth experiment with %d games...", len(matchUps))

	// Games are handed to a fixed pool of workers so that cancellation stops the games
	// that have not started yet. A game in progress runs to the end.
	results := make([]gameResult, len(matchUps))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(runtime.GOMAXPROCS(0), len(matchUps)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runGame(matchUps[i], settings.Seed, i)
				log.Info().Msgf("completed game %d of %d with winner: %q", i+1, len(matchUps), results[i].game.Winner)
			}
		}()
	}
feed:
	for i := range matchUps {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Msg("depth experiment interrupted")
		return "", err
	}
	log.Info().Msg("completed depth experiment")

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, result := range results {
		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Black:      result.matchUp.black.ID,
			White:      result.matchUp.white.ID,
			GameMetric: result.game,
		})
		for _, mm := range result.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
		if settings.Recorder != nil {
			if err := settings.Recorder.SaveGame(ctx, result.record); err != nil {
				return "", fmt.Errorf("failed to save game %d: %w", id, err)
			}
		}
	}

	writer, err := metrics.NewWriter(settings.ResultsDir, "depth")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one game on its own session and searchers.
func runGame(m matchUp, seed uint64, index int) gameResult {
	e := engine.LocalEngine(
		createAgent(m.black, seed, 2*index),
		createAgent(m.white, seed, 2*index+1),
	)
	gameMetric, moveMetrics := e.Run()

	// Deeper agent's depth is recorded as the game's difficulty
	difficulty := max(m.black.Depth, m.white.Depth)
	record := storage.NewRecord(e.Session, config.ModeSelfPlay, difficulty, gameMetric.StartTime)

	return gameResult{
		matchUp: m,
		game:    gameMetric,
		moves:   moveMetrics,
		record:  record,
	}
}

func createAgent(config metrics.AgentConfig, seed uint64, offset int) *engine.ComputerAgent {
	options := []searcher.Option{searcher.WithMetrics()}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed+uint64(offset)))
	}
	if config.UniformTies {
		options = append(options, searcher.WithUniformTies())
	}
	return engine.NewComputerAgent(config.Depth, options...)
}
