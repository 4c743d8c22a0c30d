package render

import (
	"io"
	"strings"

	"othello/game"
)

// ASCII prints the board as a grid with column digits 1-8 across the top and row letters
// A-H down the side. Black is drawn as *X*, White as O.
func ASCII(w io.Writer, b game.Board) error {
	var sb strings.Builder
	sb.WriteString("\n   1   2   3   4   5   6   7   8\n")
	for x := 0; x < game.BoardSize; x++ {
		sb.WriteByte(byte('A' + x))
		sb.WriteByte(' ')
		for y := 0; y < game.BoardSize; y++ {
			sb.WriteString(glyph(b.At(x, y)))
			if y < game.BoardSize-1 {
				sb.WriteByte('|')
			}
		}
		if x < game.BoardSize-1 {
			sb.WriteString("\n  ---+---+---+---+---+---+---+---\n")
		} else {
			sb.WriteString("\n\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func glyph(c game.Cell) string {
	switch c {
	case game.CellBlack:
		return "*X*"
	case game.CellWhite:
		return " O "
	default:
		return "   "
	}
}
