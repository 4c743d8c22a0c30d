package game

// Cell is the content of one board square.
type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

// Player is one of the two sides.
type Player int

const (
	Black Player = iota + 1
	White
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("unexpected player")
	}
}

// Cell returns the disc colour placed by the player.
func (p Player) Cell() Cell {
	switch p {
	case Black:
		return CellBlack
	case White:
		return CellWhite
	default:
		panic("unexpected player")
	}
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}
