package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid move notation")

// Move is a (row, col) coordinate pair.
type Move struct {
	X int
	Y int
}

// String renders the move as a row letter A-H followed by a column digit 1-8.
func (m Move) String() string {
	if !InBounds(m.X, m.Y) {
		return "??"
	}
	return string([]byte{byte('A' + m.X), byte('1' + m.Y)})
}

// ParseMove reads moves written like "C4" or "c4".
func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	m := Move{X: int(s[0]) - 'A', Y: int(s[1]) - '1'}
	if !InBounds(m.X, m.Y) {
		return Move{}, fmt.Errorf("%w: %q is off the board", ErrInvalidNotation, s)
	}
	return m, nil
}

// Turn is one applied move as recorded in the flip log.
type Turn struct {
	Player Player
	Move   Move
	Flips  int
}

func (t Turn) String() string {
	return fmt.Sprintf("%c:%s", t.Player.String()[0], t.Move)
}
