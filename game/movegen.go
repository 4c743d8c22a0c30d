package game

import (
	"fmt"

	"othello/meta"
)

type logBlock struct {
	start int
	end   int
}

// moveLog stacks the results of nested move enumerations.
type moveLog struct {
	coords []Move
	blocks []logBlock
}

func (l *moveLog) reset() {
	l.coords = l.coords[:0]
	l.blocks = l.blocks[:0]
}

// MoveBlock is the set of moves found by one EnumerateMoves call. Release must be called
// exactly once, after any block enumerated later has been released.
type MoveBlock struct {
	s     *Session
	index int
}

// Moves returns the moves in row-major order. The slice is only valid until Release.
func (b MoveBlock) Moves() []Move {
	blk := b.s.moves.blocks[b.index]
	return b.s.moves.coords[blk.start:blk.end]
}

func (b MoveBlock) Len() int {
	blk := b.s.moves.blocks[b.index]
	return blk.end - blk.start
}

// Release discards the block from the move log.
func (b MoveBlock) Release() {
	if top := len(b.s.moves.blocks) - 1; top != b.index {
		panic(fmt.Sprintf("move block %d released out of order (top is %d)", b.index, top))
	}
	b.s.DiscardMoves()
}

// EnumerateMoves pushes every legal move for who onto the move log, scanning rows 0..7
// and columns 0..7 within each row.
func (s *Session) EnumerateMoves(who Player) MoveBlock {
	if len(s.moves.blocks) >= meta.MaxPlies {
		panic(fmt.Sprintf("move log exceeded %d blocks", meta.MaxPlies))
	}
	start := len(s.moves.coords)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if s.IsValidMove(x, y, who) {
				s.moves.coords = append(s.moves.coords, Move{X: x, Y: y})
			}
		}
	}
	s.moves.blocks = append(s.moves.blocks, logBlock{start: start, end: len(s.moves.coords)})
	return MoveBlock{s: s, index: len(s.moves.blocks) - 1}
}

// DiscardMoves pops the most recent enumeration.
func (s *Session) DiscardMoves() {
	n := len(s.moves.blocks)
	if n == 0 {
		panic("discard without a matching enumerate")
	}
	top := s.moves.blocks[n-1]
	s.moves.coords = s.moves.coords[:top.start]
	s.moves.blocks = s.moves.blocks[:n-1]
}
