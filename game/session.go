package game

import "othello/meta"

// Session owns a board together with the move log and the flip log that search uses to
// explore positions in place. A Session must not be mutated from more than one goroutine;
// separate sessions are independent.
type Session struct {
	board Board
	moves moveLog
	flips flipLog
}

// NewSession returns a session set up for a new game.
func NewSession() *Session {
	s := &Session{
		moves: moveLog{
			coords: make([]Move, 0, meta.MoveLogCapacity),
			blocks: make([]logBlock, 0, meta.MaxPlies),
		},
		flips: flipLog{
			coords: make([]Move, 0, meta.FlipLogCapacity),
			blocks: make([]flipBlock, 0, meta.MaxPlies),
		},
	}
	s.NewGame()
	return s
}

// NewSessionFrom returns a session positioned at b with empty logs. Moves played before
// b cannot be undone.
func NewSessionFrom(b Board) *Session {
	s := NewSession()
	s.board = b
	return s
}

// NewGame resets the board to the starting position and clears both logs.
func (s *Session) NewGame() {
	s.board = InitialBoard()
	s.moves.reset()
	s.flips.reset()
}

func (s *Session) CellAt(x, y int) Cell {
	return s.board.At(x, y)
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

func (s *Session) CountEmpty() int {
	return s.board.CountEmpty()
}

// Score returns the disc count of each side.
func (s *Session) Score() (black, white int) {
	return s.board.Count(CellBlack), s.board.Count(CellWhite)
}

func (s *Session) HasMoves(who Player) bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if s.IsValidMove(x, y, who) {
				return true
			}
		}
	}
	return false
}

// IsOver reports whether the board is full or neither side can move.
func (s *Session) IsOver() bool {
	return s.CountEmpty() == 0 || (!s.HasMoves(Black) && !s.HasMoves(White))
}

// History lists the applied moves still on the flip log, oldest first.
func (s *Session) History() []Turn {
	turns := make([]Turn, 0, len(s.flips.blocks))
	for _, b := range s.flips.blocks {
		turns = append(turns, b.turn(s.flips.coords))
	}
	return turns
}

func (s *Session) MoveLogSize() int {
	return len(s.moves.coords)
}

func (s *Session) FlipLogSize() int {
	return len(s.flips.coords)
}
