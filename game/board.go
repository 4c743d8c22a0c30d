package game

const BoardSize = 8

// Board holds cell states indexed by (row, col).
type Board [BoardSize][BoardSize]Cell

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	var b Board
	b[3][3], b[4][4] = CellWhite, CellWhite
	b[3][4], b[4][3] = CellBlack, CellBlack
	return b
}

func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

func (b *Board) At(x, y int) Cell {
	return b[x][y]
}

func (b *Board) CountEmpty() int {
	return b.Count(CellEmpty)
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	count := 0
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b[x][y] == c {
				count++
			}
		}
	}
	return count
}
