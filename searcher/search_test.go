package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

var openingMoves = []game.Move{{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 5}, {X: 5, Y: 4}}

// endgameBoard has ten empty cells and a single white disc that every black move
// captures, after which neither side can move.
func endgameBoard() game.Board {
	var b game.Board
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			b[x][y] = game.CellBlack
		}
	}
	for y := 0; y < game.BoardSize; y++ {
		b[0][y] = game.CellEmpty
	}
	b[1][0] = game.CellEmpty
	b[1][1] = game.CellEmpty
	b[1][2] = game.CellWhite
	return b
}

func TestScoreMove(t *testing.T) {
	t.Run("depth 0 sums the weights of the changed cells", func(t *testing.T) {
		s := game.NewSession()
		searcher := NewSearcher(WithSeed(1))

		require.Equal(t, 34, searcher.ScoreMove(s, game.Move{X: 2, Y: 3}, game.Black, 0, Add),
			"C4 places on a 32 cell and flips a 2 cell")
		require.Equal(t, -34, searcher.ScoreMove(s, game.Move{X: 2, Y: 3}, game.Black, 0, Subtract),
			"Subtracting negates the weight")
	})

	t.Run("depth 1 adds the worst opponent reply", func(t *testing.T) {
		s := game.NewSession()
		searcher := NewSearcher(WithSeed(1))

		// White's replies to C4 are C3 (-66), C5 (-34) and E3 (-34).
		require.Equal(t, 34-66, searcher.ScoreMove(s, game.Move{X: 2, Y: 3}, game.Black, 1, Add),
			"Score should include the minimum reply")
	})

	t.Run("no reply contributes nothing", func(t *testing.T) {
		s := game.NewSessionFrom(endgameBoard())
		searcher := NewSearcher(WithSeed(1))

		// A2 on weight 4 captures the white disc on B3 (weight 8).
		require.Equal(t, 12, searcher.ScoreMove(s, game.Move{X: 0, Y: 1}, game.Black, 5, Add),
			"White has no reply, so only the immediate weight counts")
	})

	t.Run("leaves the session untouched", func(t *testing.T) {
		s := game.NewSession()
		s.ApplyMove(2, 3, game.Black)
		board, moves, flips := s.Board(), s.MoveLogSize(), s.FlipLogSize()
		searcher := NewSearcher(WithSeed(1))

		searcher.ScoreMove(s, game.Move{X: 2, Y: 2}, game.White, 3, Add)

		require.Equal(t, board, s.Board(), "Board should be identical after scoring")
		require.Equal(t, moves, s.MoveLogSize(), "Move log should be unchanged")
		require.Equal(t, flips, s.FlipLogSize(), "Flip log should be unchanged")
	})
}

func TestSuggestMove(t *testing.T) {
	t.Run("depth 0 still returns a legal opening move", func(t *testing.T) {
		s := game.NewSession()
		searcher := NewSearcher(WithSeed(7))

		move, ok := searcher.SuggestMove(s, game.Black, 0)

		require.True(t, ok, "Black can move at the start")
		require.Contains(t, openingMoves, move, "Suggestion should be legal")
	})

	t.Run("depth 3 returns a legal opening move and restores the session", func(t *testing.T) {
		s := game.NewSession()
		searcher := NewSearcher(WithSeed(7))

		move, ok := searcher.SuggestMove(s, game.Black, 3)

		require.True(t, ok, "Black can move at the start")
		require.Contains(t, openingMoves, move, "Suggestion should be legal")
		require.Equal(t, game.InitialBoard(), s.Board(), "Search should not change the board")
		require.Zero(t, s.MoveLogSize(), "Move log should be empty again")
		require.Zero(t, s.FlipLogSize(), "Flip log should be empty again")
	})

	t.Run("full board has no suggestion", func(t *testing.T) {
		var b game.Board
		for x := 0; x < game.BoardSize; x++ {
			for y := 0; y < game.BoardSize; y++ {
				b[x][y] = game.CellWhite
			}
		}
		searcher := NewSearcher(WithSeed(7))

		_, ok := searcher.SuggestMove(game.NewSessionFrom(b), game.Black, 3)

		require.False(t, ok, "Nothing can be played on a full board")
	})

	t.Run("no legal move has no suggestion", func(t *testing.T) {
		s := game.NewSessionFrom(endgameBoard())
		searcher := NewSearcher(WithSeed(7))

		_, ok := searcher.SuggestMove(s, game.White, 2)

		require.False(t, ok, "White has nothing to capture")
		require.Zero(t, s.MoveLogSize(), "Enumeration should be released")
	})

	t.Run("prefers the higher score", func(t *testing.T) {
		var b game.Board
		b[0][1] = game.CellWhite
		b[0][2] = game.CellBlack
		b[3][3] = game.CellWhite
		b[3][4] = game.CellBlack
		s := game.NewSessionFrom(b)
		searcher := NewSearcher(WithSeed(7))

		// A1 (512 + 4) beats D3 (32 + 2).
		move, ok := searcher.SuggestMove(s, game.Black, 0)

		require.True(t, ok, "Black has two captures")
		require.Equal(t, game.Move{X: 0, Y: 0}, move, "Corner capture should win")
	})
}

func TestEndgameDepth(t *testing.T) {
	t.Run("ten empties force a full-depth search", func(t *testing.T) {
		s := game.NewSessionFrom(endgameBoard())
		searcher := NewSearcher(WithSeed(3), WithMetrics())

		move, ok, metric := searcher.FindMove(s, game.Black, 1)

		require.True(t, ok, "Black can capture")
		require.True(t, s.IsValidMove(move.X, move.Y, game.Black), "Suggestion should be legal")
		require.Equal(t, 10, metric.Depth, "Depth 1 should be raised to 10")
		require.Equal(t, 4, metric.Candidates, "Four moves capture the white disc")
	})

	t.Run("eleven empties keep the configured depth", func(t *testing.T) {
		b := endgameBoard()
		b[7][7] = game.CellEmpty
		s := game.NewSessionFrom(b)
		searcher := NewSearcher(WithSeed(3), WithMetrics())

		_, ok, metric := searcher.FindMove(s, game.Black, 1)

		require.True(t, ok, "Black can capture")
		require.Equal(t, 1, metric.Depth, "Depth should stay as configured")
	})

	t.Run("depth 0 is never raised", func(t *testing.T) {
		s := game.NewSessionFrom(endgameBoard())
		searcher := NewSearcher(WithSeed(3), WithMetrics())

		_, _, metric := searcher.FindMove(s, game.Black, 0)

		require.Equal(t, 0, metric.Depth, "Hint searches stay at depth 0")
		require.Equal(t, 1, metric.MaxPly, "Only root candidates are played")
	})

	t.Run("search depth is bounded by the configured depth", func(t *testing.T) {
		s := game.NewSession()
		searcher := NewSearcher(WithSeed(3), WithMetrics())

		_, _, metric := searcher.FindMove(s, game.Black, 2)

		require.Equal(t, 3, metric.MaxPly, "Root move plus two replies")
		require.Greater(t, metric.Nodes, 4, "Replies should be explored")
	})
}

func TestTieBreak(t *testing.T) {
	const trials = 2000

	count := func(searcher *Searcher) map[game.Move]int {
		picks := map[game.Move]int{}
		s := game.NewSession()
		for i := 0; i < trials; i++ {
			move, ok := searcher.SuggestMove(s, game.Black, 0)
			require.True(t, ok, "Black can move at the start")
			picks[move]++
		}
		return picks
	}

	t.Run("coin flip favours later moves", func(t *testing.T) {
		picks := count(NewSearcher(WithSeed(11)))

		require.Len(t, picks, 4, "Every tied move should be picked sometimes")
		require.Greater(t, picks[game.Move{X: 5, Y: 4}], trials*2/5, "Last tied move wins about half the time")
		require.Less(t, picks[game.Move{X: 2, Y: 3}], trials/5, "First tied move wins about an eighth of the time")
	})

	t.Run("uniform ties spread evenly", func(t *testing.T) {
		picks := count(NewSearcher(WithSeed(11), WithUniformTies()))

		for _, m := range openingMoves {
			require.InDelta(t, trials/4, picks[m], trials/10, "%s should win about a quarter of the time", m)
		}
	})
}
