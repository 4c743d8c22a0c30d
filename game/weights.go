package game

// Weights is the positional value of each cell. Corners are worth the most and the
// cells diagonally next to a corner the least.
var Weights = [BoardSize][BoardSize]int{
	{512, 4, 128, 256, 256, 128, 4, 512},
	{4, 2, 8, 16, 16, 8, 2, 4},
	{128, 8, 64, 32, 32, 64, 8, 128},
	{256, 16, 32, 2, 2, 32, 16, 256},
	{256, 16, 32, 2, 2, 32, 16, 256},
	{128, 8, 64, 32, 32, 64, 8, 128},
	{4, 2, 8, 16, 16, 8, 2, 4},
	{512, 4, 128, 256, 256, 128, 4, 512},
}

func Weight(x, y int) int {
	return Weights[x][y]
}
