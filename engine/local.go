package engine

import (
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/storage"
	"othello/utils"

	"github.com/rs/zerolog/log"
)

// Local plays a game between two agents on its own session.
type Local struct {
	Session *game.Session
	Agents  [2]Agent // indexed by player: Black, White
}

var _ Engine = (*Local)(nil)

func LocalEngine(black, white Agent) *Local {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	return &Local{
		Session: game.NewSession(),
		Agents:  [2]Agent{black, white},
	}
}

func (e *Local) agent(who game.Player) Agent {
	return e.Agents[int(who)-1]
}

// Run executes the entire game loop from the starting position.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	e.Session.NewGame()
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(game.Black),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", game.Black)

	who := game.Black
	passes := 0
	for step := 1; passes < 2 && e.Session.CountEmpty() > 0; step++ {
		move, ok, searchMetric := e.agent(who).FindMove(e.Session, who)
		moveMetric := metrics.MoveMetric{
			Step:         step,
			Player:       int(who),
			Passed:       !ok,
			SearchMetric: searchMetric,
		}

		if ok {
			if !e.isLegal(move, who) {
				panic(fmt.Sprintf("agent for %s returned illegal move %s", who, move))
			}
			e.Session.ApplyMove(move.X, move.Y, who)
			moveMetric.Move = move.String()
			gameMetric.TotalMoves++
			passes = 0
		} else {
			gameMetric.Passes++
			passes++
		}
		moveMetrics = append(moveMetrics, moveMetric)
		who = who.Opponent()
	}

	black, white := e.Session.Score()
	gameMetric.BlackDiscs = black
	gameMetric.WhiteDiscs = white
	gameMetric.Winner = storage.Winner(black, white)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return gameMetric, moveMetrics
}

func (e *Local) isLegal(move game.Move, who game.Player) bool {
	legal := e.Session.EnumerateMoves(who)
	defer legal.Release()
	return utils.Contains(legal.Moves(), move)
}
