// board.go
package main

import "fmt"

// CellListener is told about every occupant change of the cell it watches,
// synchronously, from inside the mutation that caused it.
type CellListener func(x, y int, occupant Disc)

type Board struct {
	cells     [BoardSize][BoardSize]Disc
	listeners [BoardSize][BoardSize]CellListener
}

type Move struct {
	X, Y int
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+m.X, m.Y+1)
}

// NewBoard initializes the board with starting positions
func NewBoard() *Board {
	b := &Board{}
	b.Reset(White, Black)

	return b
}

// Reset clears the board and places the four starting discs. first owns the
// (3,3)-(4,4) diagonal, second the other one.
func (b *Board) Reset(first, second Disc) {
	var start [BoardSize][BoardSize]Disc

	mid := BoardSize / 2
	start[mid-1][mid-1] = first
	start[mid-1][mid] = second
	start[mid][mid-1] = second
	start[mid][mid] = first

	// Cells that keep their occupant stay quiet.
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			b.set(x, y, start[x][y])
		}
	}
}

// Watch registers the listener of a single cell, replacing any previous one.
// Copies made with CopyFrom or Copy never carry listeners.
func (b *Board) Watch(x, y int, fn CellListener) {
	mustInBounds(x, y)
	b.listeners[x][y] = fn
}

// At returns the occupant of (x, y).
func (b *Board) At(x, y int) Disc {
	mustInBounds(x, y)

	return b.cells[x][y]
}

// CopyFrom overwrites the occupancy of b with that of src. Listeners of b
// are fired for the cells that change.
func (b *Board) CopyFrom(src *Board) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			b.set(x, y, src.cells[x][y])
		}
	}
}

// Copy creates a deep copy of the board (used in AI to simulate moves)
func (b *Board) Copy() *Board {
	return &Board{cells: b.cells}
}

// Equal compares occupancy only.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// LegalMove reports whether player may place a disc at (x, y). The board is
// not modified.
func (b *Board) LegalMove(player Disc, x, y int) bool {
	mustInBounds(x, y)

	if player == Blank || b.cells[x][y] != Blank {
		return false
	}

	for _, dir := range directions {
		if b.flipCount(player, x, y, dir.x, dir.y) > 0 {
			return true
		}
	}

	return false
}

// ApplyMove places a disc for player at (x, y) and flips every captured run.
// It returns false, leaving the board untouched, when the move is illegal.
func (b *Board) ApplyMove(player Disc, x, y int) bool {
	mustInBounds(x, y)

	if player == Blank || b.cells[x][y] != Blank {
		return false
	}

	var runs [len(directions)]int
	moved := false

	for i, dir := range directions {
		runs[i] = b.flipCount(player, x, y, dir.x, dir.y)
		if runs[i] > 0 {
			moved = true
		}
	}

	if !moved {
		return false
	}

	b.set(x, y, player)

	for i, dir := range directions {
		for n := 1; n <= runs[i]; n++ {
			b.set(x+n*dir.x, y+n*dir.y, player)
		}
	}

	return true
}

// Flips returns the list of pieces that would be flipped if a piece is placed at (x, y)
func (b *Board) Flips(player Disc, x, y int) [][2]int {
	mustInBounds(x, y)

	var totalFlips [][2]int

	if player == Blank || b.cells[x][y] != Blank {
		return nil
	}

	for _, dir := range directions {
		run := b.flipCount(player, x, y, dir.x, dir.y)
		for n := 1; n <= run; n++ {
			totalFlips = append(totalFlips, [2]int{x + n*dir.x, y + n*dir.y})
		}
	}

	return totalFlips
}

// ValidMoves returns a list of valid moves for the specified player
func (b *Board) ValidMoves(player Disc) []Move {
	var moves []Move

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.LegalMove(player, x, y) {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}

	return moves
}

// HasMoves is ValidMoves without the allocation.
func (b *Board) HasMoves(player Disc) bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.LegalMove(player, x, y) {
				return true
			}
		}
	}

	return false
}

// Count returns the number of cells occupied by player.
func (b *Board) Count(player Disc) int {
	count := 0

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.cells[x][y] == player {
				count++
			}
		}
	}

	return count
}

// Occupied returns the number of non-blank cells.
func (b *Board) Occupied() int {
	return BoardSize*BoardSize - b.Count(Blank)
}

// flipCount walks from (x, y) in direction (dx, dy) over opponent discs. The
// run counts only if it is closed by one of player's discs on the board.
func (b *Board) flipCount(player Disc, x, y, dx, dy int) int {
	opponent := Opponent(player)
	run := 0
	nx, ny := x+dx, y+dy

	for InBounds(nx, ny) && b.cells[nx][ny] == opponent {
		run++
		nx += dx
		ny += dy
	}

	if run > 0 && InBounds(nx, ny) && b.cells[nx][ny] == player {
		return run
	}

	return 0
}

func (b *Board) set(x, y int, occupant Disc) {
	if b.cells[x][y] == occupant {
		return
	}

	b.cells[x][y] = occupant

	if fn := b.listeners[x][y]; fn != nil {
		fn(x, y, occupant)
	}
}

func mustInBounds(x, y int) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("othello: cell (%d, %d) is off the board", x, y))
	}
}
