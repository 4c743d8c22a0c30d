package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"othello/config"
	"othello/game"
	"othello/storage"

	"github.com/stretchr/testify/require"
)

func TestPrintHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("lists recorded games", func(t *testing.T) {
		store, err := storage.Open(ctx, filepath.Join(t.TempDir(), "games.db"))
		require.NoError(t, err, "Store should open")
		defer store.Close()

		s := game.NewSession()
		s.ApplyMove(2, 3, game.Black)
		require.NoError(t, store.SaveGame(ctx, storage.NewRecord(s, "play", 2, time.Now())), "Game should save")

		var out bytes.Buffer
		require.NoError(t, printHistory(ctx, &out, store, 5), "History should print")

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1, "One game recorded")
		require.Contains(t, lines[0], "depth 2", "Line shows the difficulty")
		require.Contains(t, lines[0], "Black", "Black leads 4:1")
		require.True(t, strings.HasSuffix(lines[0], "B:C4"), "Line ends with the transcript")
	})
}

func TestRun(t *testing.T) {
	t.Run("interrupted self-play exits cleanly", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := run(ctx, &config.Config{
			Mode:          config.ModeSelfPlay,
			SelfPlayGames: 2,
			SelfPlayDepth: []int{1, 2},
			ResultsDir:    t.TempDir(),
		})

		require.NoError(t, err, "Cancellation is not a failure")
	})
}
