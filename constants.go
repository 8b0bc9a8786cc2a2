package main

// Disc is the occupant of a cell. It carries no behaviour, only identity.
type Disc int

const (
	Blank Disc = iota
	White
	Black
)

const (
	BoardSize = 8

	MinLevel     = 1
	MaxLevel     = 10
	DefaultLevel = 3
)

// Directions for checking valid moves
var directions = [...]struct{ x, y int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Opponent returns the opponent of the given player
func Opponent(player Disc) Disc {
	switch player {
	case White:
		return Black
	case Black:
		return White
	}

	return Blank
}

func (d Disc) String() string {
	switch d {
	case White:
		return "White"
	case Black:
		return "Black"
	}

	return "Blank"
}

// InBounds reports whether (x, y) names a cell of the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}
