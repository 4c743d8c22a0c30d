package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"othello/config"
	"othello/game"
	"othello/meta"
	"othello/render"
	"othello/searcher"
	"othello/storage"

	"github.com/rs/zerolog/log"
)

// State is a step of the console game.
type State int

const (
	SelectDifficulty State = iota
	AwaitBlackMove
	AwaitWhiteMove
	GameOver
	Done
)

func (s State) String() string {
	switch s {
	case SelectDifficulty:
		return "SelectDifficulty"
	case AwaitBlackMove:
		return "AwaitBlackMove"
	case AwaitWhiteMove:
		return "AwaitWhiteMove"
	case GameOver:
		return "GameOver"
	default:
		return "Done"
	}
}

// Recorder stores finished games.
type Recorder interface {
	SaveGame(ctx context.Context, r storage.Record) error
}

type ConsoleOption func(c *Console)

// WithDifficulty skips the difficulty prompt and plays a single game at depth.
func WithDifficulty(depth int) ConsoleOption {
	return func(c *Console) {
		if depth > 0 && depth <= meta.MaxDifficulty {
			c.fixedDepth = depth
		}
	}
}

func WithRecorder(r Recorder) ConsoleOption {
	return func(c *Console) {
		c.recorder = r
	}
}

// WithSVGSnapshot writes the board to path after every change.
func WithSVGSnapshot(path string) ConsoleOption {
	return func(c *Console) {
		c.svgPath = path
	}
}

// Console plays a human (Black) against the computer (White) over text streams.
type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	session    *game.Session
	searcher   *searcher.Searcher
	recorder   Recorder
	svgPath    string
	fixedDepth int

	depth      int
	blackMoved bool
	whiteMoved bool
	startedAt  time.Time

	lines   chan string // fed by the input reader once the first line is requested
	readErr error       // set before lines is closed
}

func NewConsole(in io.Reader, out io.Writer, s *searcher.Searcher, options ...ConsoleOption) *Console {
	c := &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		session:  game.NewSession(),
		searcher: s,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Run drives the state machine until the player quits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	state := SelectDifficulty
	for state != Done {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := c.step(ctx, state)
		if err != nil {
			return err
		}
		if next != state {
			log.Debug().Str("from", state.String()).Str("to", next.String()).Msg("console-state")
		}
		state = next
	}
	return nil
}

func (c *Console) step(ctx context.Context, state State) (State, error) {
	switch state {
	case SelectDifficulty:
		return c.selectDifficulty(ctx)
	case AwaitBlackMove:
		return c.awaitBlackMove(ctx)
	case AwaitWhiteMove:
		return c.awaitWhiteMove()
	case GameOver:
		return c.gameOver(ctx)
	default:
		return Done, nil
	}
}

// readLine waits for the next input line. It returns false at the end of input, with the
// read error if any, or as soon as ctx is cancelled, with ctx's error.
func (c *Console) readLine(ctx context.Context) (string, bool, error) {
	if c.lines == nil {
		c.lines = make(chan string)
		go c.readInput(ctx)
	}
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", false, c.readErr
		}
		return strings.TrimSpace(line), true, nil
	}
}

// readInput scans lines until the input ends or ctx is cancelled. A Scan blocked on
// the input is abandoned on cancellation.
func (c *Console) readInput(ctx context.Context) {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- c.in.Text():
		case <-ctx.Done():
			return
		}
	}
	c.readErr = c.in.Err()
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) newGame(depth int) State {
	c.session.NewGame()
	c.depth = depth
	c.blackMoved, c.whiteMoved = false, false
	c.startedAt = time.Now()
	log.Info().Int("difficulty", depth).Msg("starting game")
	c.showBoard()
	return AwaitBlackMove
}

// selectDifficulty reads only the first character of the answer, so "3 please" selects 3.
func (c *Console) selectDifficulty(ctx context.Context) (State, error) {
	if c.fixedDepth > 0 {
		return c.newGame(c.fixedDepth), nil
	}

	c.printf("AI: Select difficulty: 1-%d, or (Q)uit? ", meta.MaxDifficulty)
	line, ok, err := c.readLine(ctx)
	if !ok {
		return Done, err
	}
	if line == "" {
		return SelectDifficulty, nil
	}
	switch first := line[0]; {
	case first >= '1' && first <= byte('0'+meta.MaxDifficulty):
		return c.newGame(int(first - '0')), nil
	case first == 'q' || first == 'Q':
		c.printf("Quit!\n")
		return Done, nil
	}
	return SelectDifficulty, nil
}

func (c *Console) awaitBlackMove(ctx context.Context) (State, error) {
	c.printf("Black... ")
	hint, ok := c.searcher.SuggestMove(c.session, game.Black, 0)
	if !ok {
		c.printf("Cannot move.  Pass!  [press <enter> to continue]")
		if _, ok, err := c.readLine(ctx); !ok {
			return Done, err
		}
		c.blackMoved = false
		return c.afterHalfMove(AwaitWhiteMove), nil
	}

	for {
		c.printf("Specify move (like %s; or LIST, UNDO or QUIT): ", hint)
		line, ok, err := c.readLine(ctx)
		if !ok {
			return Done, err
		}

		switch command(line) {
		case "QU":
			c.printf("Quit!\n\n")
			return c.nextGame(), nil
		case "LI":
			c.listMoves()
			continue
		case "UN":
			if len(c.session.History()) == 0 {
				c.printf("No moves to undo.\n")
				continue
			}
			c.undoToBlack()
			return AwaitBlackMove, nil
		}

		move, ok := parseMove(line)
		if !ok || !c.session.IsValidMove(move.X, move.Y, game.Black) {
			c.printf("That is not a valid move.\n")
			continue
		}
		c.session.ApplyMove(move.X, move.Y, game.Black)
		log.Debug().Str("move", move.String()).Msg("black played")
		c.blackMoved = true
		c.showBoard()
		return c.afterHalfMove(AwaitWhiteMove), nil
	}
}

// command returns the upper-cased first two letters of a console command.
func command(line string) string {
	if len(line) < 2 {
		return ""
	}
	return strings.ToUpper(line[:2])
}

// parseMove reads a coordinate from the first two characters of line; anything after
// them is ignored, so "C4X" plays C4.
func parseMove(line string) (game.Move, bool) {
	if len(line) < 2 {
		return game.Move{}, false
	}
	move, err := game.ParseMove(line[:2])
	return move, err == nil
}

func (c *Console) listMoves() {
	block := c.session.EnumerateMoves(game.Black)
	defer block.Release()

	c.printf("Possible moves: ")
	for _, m := range block.Moves() {
		c.printf("%s ", m)
	}
	c.printf("\n")
}

// undoToBlack takes back moves until the last black move has been undone.
func (c *Console) undoToBlack() {
	for len(c.session.History()) > 0 {
		turn := c.session.UndoMove()
		c.printf("Undid: %s %s\n", strings.ToUpper(turn.Player.String()), turn.Move)
		if turn.Player == game.Black {
			break
		}
	}
	c.showBoard()
}

func (c *Console) awaitWhiteMove() (State, error) {
	c.printf("White... ")
	move, ok := c.searcher.SuggestMove(c.session, game.White, c.depth)
	if ok {
		c.printf("Playing %s\n", move)
		c.session.ApplyMove(move.X, move.Y, game.White)
		c.whiteMoved = true
		c.showBoard()
	} else {
		c.printf("Cannot move.  Pass!\n")
		c.whiteMoved = false
	}
	return c.afterHalfMove(AwaitBlackMove), nil
}

// afterHalfMove ends the game on a full board or when both sides have just passed.
func (c *Console) afterHalfMove(next State) State {
	if (!c.blackMoved && !c.whiteMoved) || c.session.CountEmpty() == 0 {
		return GameOver
	}
	return next
}

func (c *Console) gameOver(ctx context.Context) (State, error) {
	black, white := c.session.Score()
	switch {
	case black > white:
		c.printf("BLACK WINS! %d:%d (%f%%)\n\n", black, white, percent(black, black+white))
	case white > black:
		c.printf("WHITE WINS! %d:%d (%f%%)\n\n", white, black, percent(white, black+white))
	default:
		c.printf("TIE, NOBODY WINS!\n\n")
	}
	log.Info().Int("black", black).Int("white", white).Msg("game over")

	if c.recorder != nil {
		record := storage.NewRecord(c.session, config.ModePlay, c.depth, c.startedAt)
		if err := c.recorder.SaveGame(ctx, record); err != nil {
			log.Error().Err(err).Msg("failed to save game")
		}
	}
	return c.nextGame(), nil
}

func (c *Console) nextGame() State {
	if c.fixedDepth > 0 {
		return Done
	}
	return SelectDifficulty
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func (c *Console) showBoard() {
	board := c.session.Board()
	if err := render.ASCII(c.out, board); err != nil {
		log.Warn().Err(err).Msg("failed to print board")
	}
	if c.svgPath != "" {
		if err := render.WriteSVGFile(c.svgPath, board); err != nil {
			log.Warn().Err(err).Msg("failed to write board snapshot")
		}
	}
}
