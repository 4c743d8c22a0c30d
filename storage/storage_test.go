package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and lists games", func(t *testing.T) {
		store, err := Open(ctx, filepath.Join(t.TempDir(), "data", "games.db"))
		require.NoError(t, err, "Store should open in a fresh directory")
		defer store.Close()

		s := game.NewSession()
		s.ApplyMove(2, 3, game.Black)
		s.ApplyMove(2, 2, game.White)
		started := time.Now().Add(-time.Minute)
		first := NewRecord(s, "play", 2, started)
		first.EndedAt = started.Add(10 * time.Second)
		second := NewRecord(s, "selfplay", 3, started)

		require.NoError(t, store.SaveGame(ctx, first), "First game should save")
		require.NoError(t, store.SaveGame(ctx, second), "Second game should save")

		records, err := store.RecentGames(ctx, 10)
		require.NoError(t, err, "Listing should succeed")
		require.Len(t, records, 2, "Both games should be stored")
		require.Equal(t, second.ID, records[0].ID, "Latest game comes first")
		require.Equal(t, "B:C4 W:C3", records[0].Transcript, "Transcript should round-trip")
		require.Equal(t, 3, records[0].Difficulty, "Difficulty should round-trip")
		require.Equal(t, first.ID, records[1].ID, "Older game comes second")
	})

	t.Run("limits the listing", func(t *testing.T) {
		store, err := Open(ctx, filepath.Join(t.TempDir(), "games.db"))
		require.NoError(t, err, "Store should open")
		defer store.Close()

		for i := 0; i < 3; i++ {
			require.NoError(t, store.SaveGame(ctx, NewRecord(game.NewSession(), "play", 1, time.Now())), "Game should save")
		}

		records, err := store.RecentGames(ctx, 2)
		require.NoError(t, err, "Listing should succeed")
		require.Len(t, records, 2, "Listing should respect the limit")
	})
}

func TestNewRecord(t *testing.T) {
	t.Run("scores the final position", func(t *testing.T) {
		s := game.NewSession()
		s.ApplyMove(2, 3, game.Black)

		r := NewRecord(s, "play", 1, time.Now())

		require.Equal(t, 4, r.BlackDiscs, "Black has four discs after C4")
		require.Equal(t, 1, r.WhiteDiscs, "White has one disc after C4")
		require.Equal(t, "Black", r.Winner, "Black leads")
		require.Equal(t, "B:C4", r.Transcript, "Transcript lists the move")
	})

	t.Run("tie has no winner", func(t *testing.T) {
		require.Empty(t, Winner(32, 32), "Equal counts are a tie")
		require.Equal(t, "White", Winner(20, 44), "More white discs")
	})
}
