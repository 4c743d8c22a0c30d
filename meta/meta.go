// meta/meta.go
package meta

// MaxDifficulty is the deepest search a player can select.
const MaxDifficulty = 5

// EndgameEmpties is the empty-cell count below which a search looks ahead to the end.
const EndgameEmpties = 11

// EndgameDepth is the search depth used once the endgame is reached.
const EndgameDepth = 10

// MaxPlies bounds the number of moves in a game, and so the live blocks on each log.
const MaxPlies = 60

// Initial capacities of the move log and the flip log.
const (
	MoveLogCapacity = 1830
	FlipLogCapacity = 1520
)
