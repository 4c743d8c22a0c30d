package game

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsValidMove reports whether who may place a disc at (x, y). Off-board and occupied
// cells are never valid.
func (s *Session) IsValidMove(x, y int, who Player) bool {
	if !InBounds(x, y) || s.board[x][y] != CellEmpty {
		return false
	}
	for _, d := range directions {
		if s.bracketed(x, y, d[0], d[1], who) > 0 {
			return true
		}
	}
	return false
}

// bracketed returns how many opponent discs lie between (x, y) and a disc of who in
// direction (dx, dy), or 0 when the run is not closed by who.
func (s *Session) bracketed(x, y, dx, dy int, who Player) int {
	own, opp := who.Cell(), who.Opponent().Cell()
	i, j := x+dx, y+dy
	run := 0
	for InBounds(i, j) && s.board[i][j] == opp {
		i += dx
		j += dy
		run++
	}
	if run == 0 || !InBounds(i, j) || s.board[i][j] != own {
		return 0
	}
	return run
}
