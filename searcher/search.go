package searcher

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Sign selects whether the weights flipped by a move count for or against the player
// being evaluated.
type Sign int

const (
	Add      Sign = 1
	Subtract Sign = -1
)

func (s Sign) Flip() Sign {
	return -s
}

type Option func(s *Searcher)

// Searcher picks moves by a depth-limited worst-case search. It is not safe for
// concurrent use; give each goroutine its own Searcher and Session.
type Searcher struct {
	rng         *rand.Rand
	uniformTies bool
	metrics     metrics.Collector
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// WithUniformTies picks uniformly among equally scored moves instead of flipping a
// coin for each later tie.
func WithUniformTies() Option {
	return func(s *Searcher) {
		s.uniformTies = true
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ScoreMove plays m for who, then assumes the opponent answers with the reply that is
// worst for the evaluated player, down to depth further plies. The session is left
// exactly as it was found.
func (s *Searcher) ScoreMove(sess *game.Session, m game.Move, who game.Player, depth int, sign Sign) int {
	return s.scoreMove(sess, m, who, depth, sign, 1)
}

func (s *Searcher) scoreMove(sess *game.Session, m game.Move, who game.Player, depth int, sign Sign, ply int) int {
	applied := sess.ApplyMove(m.X, m.Y, who)
	defer applied.Undo()
	s.metrics.AddNode(ply)

	weight := 0
	for _, c := range applied.Changes() {
		weight += game.Weight(c.X, c.Y)
	}
	weight *= int(sign)

	worst := 0
	if depth > 0 && sess.CountEmpty() > 0 {
		replies := sess.EnumerateMoves(who.Opponent())
		defer replies.Release()
		for _, reply := range replies.Moves() {
			score := s.scoreMove(sess, reply, who.Opponent(), depth-1, sign.Flip(), ply+1)
			if score < worst {
				worst = score
			}
		}
	}
	return weight + worst
}

// SuggestMove returns the best scoring move for who, or false when the board is full or
// who has no legal move. A maxDepth of 0 scores only the immediate flips; any other
// depth is raised to a full search once the endgame is reached.
func (s *Searcher) SuggestMove(sess *game.Session, who game.Player, maxDepth int) (game.Move, bool) {
	move, ok, _ := s.FindMove(sess, who, maxDepth)
	return move, ok
}

// FindMove is SuggestMove that also reports search metrics.
func (s *Searcher) FindMove(sess *game.Session, who game.Player, maxDepth int) (game.Move, bool, metrics.SearchMetric) {
	empties := sess.CountEmpty()
	if empties == 0 {
		return game.Move{}, false, metrics.SearchMetric{}
	}
	if empties < meta.EndgameEmpties && maxDepth != 0 {
		maxDepth = meta.EndgameDepth
	}

	s.metrics.Start(maxDepth)
	candidates := sess.EnumerateMoves(who)
	defer candidates.Release()
	moves := candidates.Moves()
	if len(moves) == 0 {
		return game.Move{}, false, s.metrics.Complete()
	}

	best := moves[0]
	bestScore := s.ScoreMove(sess, best, who, maxDepth, Add)
	ties := 1
	for _, m := range moves[1:] {
		score := s.ScoreMove(sess, m, who, maxDepth, Add)
		switch {
		case score > bestScore:
			best, bestScore, ties = m, score, 1
		case score == bestScore:
			ties++
			if s.replaceTie(ties) {
				best = m
			}
		}
	}

	s.metrics.SetResult(len(moves), bestScore)
	metric := s.metrics.Complete()
	log.Debug().
		Str("player", who.String()).
		Int("depth", maxDepth).
		Int("candidates", len(moves)).
		Int("score", bestScore).
		Str("move", best.String()).
		Msg("suggest-move")
	return best, true, metric
}

// replaceTie decides whether the k-th equally scored move replaces the current best.
func (s *Searcher) replaceTie(k int) bool {
	if s.uniformTies {
		return s.rng.Intn(k) == 0
	}
	return s.rng.Intn(2) == 1
}
