package game

import (
	"fmt"

	"othello/meta"
)

type flipBlock struct {
	logBlock
	who Player
}

func (b flipBlock) turn(coords []Move) Turn {
	return Turn{Player: b.who, Move: coords[b.start], Flips: b.end - b.start - 1}
}

// flipLog records, per applied move, the placed cell followed by every flipped cell.
type flipLog struct {
	coords []Move
	blocks []flipBlock
}

func (l *flipLog) reset() {
	l.coords = l.coords[:0]
	l.blocks = l.blocks[:0]
}

// AppliedMove is the flip-log block written by one ApplyMove call.
type AppliedMove struct {
	s     *Session
	index int
}

// Changes returns the placed cell followed by the flipped cells. The slice is only valid
// until Undo.
func (a AppliedMove) Changes() []Move {
	blk := a.s.flips.blocks[a.index]
	return a.s.flips.coords[blk.start:blk.end]
}

// Undo reverts the move. It panics if a later move is still applied.
func (a AppliedMove) Undo() {
	if top := len(a.s.flips.blocks) - 1; top != a.index {
		panic(fmt.Sprintf("applied move %d undone out of order (top is %d)", a.index, top))
	}
	a.s.UndoMove()
}

// ApplyMove places a disc for who at (x, y) and flips every bracketed opponent run. The
// move must be legal; only an off-board or occupied target is detected.
func (s *Session) ApplyMove(x, y int, who Player) AppliedMove {
	if !InBounds(x, y) || s.board[x][y] != CellEmpty {
		panic(fmt.Sprintf("cannot apply %s for %s: cell is not an empty board cell", Move{X: x, Y: y}, who))
	}
	if len(s.flips.blocks) >= meta.MaxPlies {
		panic(fmt.Sprintf("flip log exceeded %d blocks", meta.MaxPlies))
	}

	own := who.Cell()
	start := len(s.flips.coords)
	s.board[x][y] = own
	s.flips.coords = append(s.flips.coords, Move{X: x, Y: y})
	for _, d := range directions {
		run := s.bracketed(x, y, d[0], d[1], who)
		i, j := x, y
		for k := 0; k < run; k++ {
			i += d[0]
			j += d[1]
			s.board[i][j] = own
			s.flips.coords = append(s.flips.coords, Move{X: i, Y: j})
		}
	}
	s.flips.blocks = append(s.flips.blocks, flipBlock{
		logBlock: logBlock{start: start, end: len(s.flips.coords)},
		who:      who,
	})
	return AppliedMove{s: s, index: len(s.flips.blocks) - 1}
}

// UndoMove reverts the most recent applied move and returns it.
func (s *Session) UndoMove() Turn {
	n := len(s.flips.blocks)
	if n == 0 {
		panic("undo without an applied move")
	}
	top := s.flips.blocks[n-1]
	placed := s.flips.coords[top.start]
	s.board[placed.X][placed.Y] = CellEmpty
	restored := top.who.Opponent().Cell()
	for _, c := range s.flips.coords[top.start+1 : top.end] {
		s.board[c.X][c.Y] = restored
	}
	turn := top.turn(s.flips.coords)
	s.flips.coords = s.flips.coords[:top.start]
	s.flips.blocks = s.flips.blocks[:n-1]
	return turn
}
